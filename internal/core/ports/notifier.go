package ports

// MessageVars are the named placeholders substituted into an SMS template.
// Missing values render as empty strings, except OwnerName which defaults
// to "Owner".
type MessageVars struct {
	OwnerName     string
	VehicleNumber string
	Model         string
	TowedFrom     string
	TowedTo       string
	Fine          float64
	Reason        string
}

// Notifier dispatches SMS messages through the external gateway.
//
// Send renders a template (override > configured template > built-in towing
// notice) and delivers it. It returns false on any failure, including an
// unconfigured gateway, and never returns an error: SMS delivery is
// best-effort and callers must not block core flows on it.
type Notifier interface {
	Send(to string, vars MessageVars, override string) bool
}

// Notification is one queued outbound SMS.
type Notification struct {
	To       string
	Vars     MessageVars
	Override string
}

// NotificationDispatcher accepts notifications for background delivery.
// Enqueue returns immediately; delivery outcome is observable only in logs
// and metrics.
type NotificationDispatcher interface {
	Enqueue(n Notification)
}
