// Package metrics defines and registers all custom Prometheus metrics for the
// towtrack API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto; the router exposes them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "towtrack"

// ── OTP metrics ───────────────────────────────────────────────────────────────

// OtpIssuedTotal counts successfully stored OTP challenges.
var OtpIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of OTP challenges issued.",
	},
)

// OtpVerifyTotal counts verification outcomes.
// Label:
//   - result: "success", "invalid", "expired", or "no_challenge"
var OtpVerifyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verify_total",
		Help:      "Total number of OTP verification attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// SmsDispatchTotal counts outbound SMS dispatch outcomes.
// Label:
//   - result: "sent", "failed" (gateway error or unconfigured), or
//     "dropped" (queue full)
var SmsDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sms_dispatch_total",
		Help:      "Total number of SMS dispatch attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Towing record metrics ─────────────────────────────────────────────────────

// RecordsCreatedTotal counts towing records created by admins.
var RecordsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "towing_records_created_total",
		Help:      "Total number of towing records created.",
	},
)

// PaymentUpdatesTotal counts payment-status transitions.
// Label:
//   - status: the new payment status ("unpaid", "processing", "paid")
var PaymentUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_updates_total",
		Help:      "Total number of payment status updates, by new status.",
	},
	[]string{"status"},
)
