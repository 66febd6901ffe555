package sms

import (
	"strconv"
	"strings"

	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// defaultTowingTemplate is the built-in towing-notice message, used when no
// override and no configured template is present.
const defaultTowingTemplate = "Dear {ownerName},\n\n" +
	"Your vehicle {vehicleNumber} ({model}) has been reported for illegal parking at {towedFrom}.\n" +
	"Please remove your vehicle immediately to avoid towing.\n" +
	"If already towed, check your vehicle location on the Towing Buddy app or visit: {appLink}\n\n" +
	"— Towing Buddy Team"

// RenderTemplate substitutes the named placeholders in a message template.
// Precedence for the template itself is decided by the caller (override >
// configured > default). Missing values render as empty strings; the owner
// name falls back to "Owner".
func RenderTemplate(template string, vars ports.MessageVars, appLink string) string {
	name := vars.OwnerName
	if name == "" {
		name = "Owner"
	}

	fine := ""
	if vars.Fine != 0 {
		fine = strconv.FormatFloat(vars.Fine, 'f', -1, 64)
	}

	r := strings.NewReplacer(
		"{ownerName}", name,
		"{vehicleNumber}", vars.VehicleNumber,
		"{model}", vars.Model,
		"{towedFrom}", vars.TowedFrom,
		"{towedTo}", vars.TowedTo,
		"{fine}", fine,
		"{reason}", vars.Reason,
		"{appLink}", appLink,
	)
	return r.Replace(template)
}
