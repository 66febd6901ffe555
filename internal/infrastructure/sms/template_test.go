package sms

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

func TestRenderTemplate_AllPlaceholders(t *testing.T) {
	vars := ports.MessageVars{
		OwnerName:     "Asha",
		VehicleNumber: "MH12AB1234",
		Model:         "Swift",
		TowedFrom:     "MG Road",
		TowedTo:       "City Depot",
		Fine:          1500,
		Reason:        "no parking",
	}
	template := "{ownerName}|{vehicleNumber}|{model}|{towedFrom}|{towedTo}|{fine}|{reason}|{appLink}"

	got := RenderTemplate(template, vars, "www.towingbuddy.in")
	want := "Asha|MH12AB1234|Swift|MG Road|City Depot|1500|no parking|www.towingbuddy.in"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderTemplate_MissingValues(t *testing.T) {
	got := RenderTemplate("{ownerName}:{model}:{fine}", ports.MessageVars{}, "")
	if got != "Owner::" {
		t.Fatalf("got %q, want %q", got, "Owner::")
	}
}

func TestRenderTemplate_DefaultTowingNotice(t *testing.T) {
	vars := ports.MessageVars{
		OwnerName:     "Ravi",
		VehicleNumber: "KA01XY9999",
		Model:         "Thar",
		TowedFrom:     "Brigade Road",
	}
	body := RenderTemplate(defaultTowingTemplate, vars, "www.towingbuddy.in")

	for _, want := range []string{"Dear Ravi", "KA01XY9999 (Thar)", "Brigade Road", "www.towingbuddy.in"} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered notice missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "{") {
		t.Errorf("unsubstituted placeholder left in body:\n%s", body)
	}
}

func TestTwilioNotifier_DisabledWithoutCredentials(t *testing.T) {
	n := NewTwilioNotifier(Config{From: "+10000000000"}, zerolog.Nop())

	if n.Enabled() {
		t.Fatal("notifier must be disabled without credentials")
	}
	if n.Send("+919876543210", ports.MessageVars{}, "hello") {
		t.Fatal("disabled notifier must report delivery failure")
	}
}
