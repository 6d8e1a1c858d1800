package discord

import (
	"time"

	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases. The two event
// registries are instances of the same coordinator, differing only in the
// role template their commands pass in.
type Handler struct {
	raidEvents      input.EventUseCase
	customEvents    input.EventUseCase
	raidCountdown   input.CountdownUseCase
	customCountdown input.CountdownUseCase
	splits          input.SplitUseCase
	ledger          input.LedgerUseCase
	translator      output.T
	now             func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(
	raidEvents input.EventUseCase,
	customEvents input.EventUseCase,
	raidCountdown input.CountdownUseCase,
	customCountdown input.CountdownUseCase,
	splits input.SplitUseCase,
	ledger input.LedgerUseCase,
	translator output.T,
) *Handler {
	return &Handler{
		raidEvents:      raidEvents,
		customEvents:    customEvents,
		raidCountdown:   raidCountdown,
		customCountdown: customCountdown,
		splits:          splits,
		ledger:          ledger,
		translator:      translator,
		now:             time.Now,
	}
}

// t renders a message key in the default locale.
func (h *Handler) t(key string, data map[string]any) string {
	return h.translator.T("", key, data)
}

// registryFor resolves which registry an announcement message belongs to.
func (h *Handler) registryFor(messageID string) (input.EventUseCase, input.EventInfo, bool) {
	for _, registry := range []input.EventUseCase{h.raidEvents, h.customEvents} {
		if info, err := registry.LookupByMessageID(messageID); err == nil {
			return registry, info, true
		}
	}
	return nil, input.EventInfo{}, false
}
