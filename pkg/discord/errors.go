package discord

import "raidbot/internal/domain"

// MessageKey maps a domain error to the i18n message key used for the
// user-facing reply. Unknown errors fall back to a generic message.
func MessageKey(err error) string {
	switch domain.Code(err) {
	case "event_not_found":
		return "error.event_not_found"
	case "event_cancelled":
		return "error.event_cancelled"
	case "already_signed_up":
		return "error.already_signed_up"
	case "invalid_time":
		return "error.invalid_time"
	case "invalid_value":
		return "error.invalid_value"
	case "unknown_template":
		return "error.unknown_template"
	case "no_participants":
		return "error.no_participants"
	case "split_not_found":
		return "error.split_not_found"
	case "not_participant":
		return "error.not_participant"
	case "role_not_configured":
		return "error.role_not_configured"
	default:
		return "error.generic"
	}
}
