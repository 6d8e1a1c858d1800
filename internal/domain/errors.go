package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventCancelled    = errors.New("event has been cancelled")
	ErrAlreadySignedUp   = errors.New("user already signed up for a role")
	ErrInvalidTime       = errors.New("invalid time format")
	ErrInvalidValue      = errors.New("invalid value format")
	ErrUnknownTemplate   = errors.New("unknown event template")
	ErrNoParticipants    = errors.New("no participants tagged")
	ErrSplitNotFound     = errors.New("no active loot split")
	ErrNotParticipant    = errors.New("user is not a split participant")
	ErrRoleNotConfigured = errors.New("permission role is not configured")
)

// Code maps a domain error to a stable code used by the presentation layer
// to pick a user-facing message. Unknown errors map to "".
func Code(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrEventCancelled):
		return "event_cancelled"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrInvalidTime):
		return "invalid_time"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, ErrUnknownTemplate):
		return "unknown_template"
	case errors.Is(err, ErrNoParticipants):
		return "no_participants"
	case errors.Is(err, ErrSplitNotFound):
		return "split_not_found"
	case errors.Is(err, ErrNotParticipant):
		return "not_participant"
	case errors.Is(err, ErrRoleNotConfigured):
		return "role_not_configured"
	default:
		return ""
	}
}
