package application

import (
	"context"
	"log"
	"time"

	"raidbot/internal/ports/input"
	"raidbot/internal/ports/output"
)

var _ input.CountdownUseCase = (*Countdown)(nil)

// Countdown polls an event's remaining time and emits a single five-minute
// reminder and a single start notification to the event's origin channel.
// Cancellation is cooperative: each poll checks the registry and the loop
// exits silently once the event is gone.
type Countdown struct {
	registry   *EventRegistry
	notifier   output.Notifier
	translator output.T

	pollInterval time.Duration
	now          func() time.Time
}

func NewCountdown(registry *EventRegistry, notifier output.Notifier, translator output.T) *Countdown {
	return &Countdown{
		registry:     registry,
		notifier:     notifier,
		translator:   translator,
		pollInterval: time.Minute,
		now:          time.Now,
	}
}

const reminderThreshold = 5 * time.Minute

// Track blocks until the event starts or is cancelled; run it in its own
// goroutine. When the start notification fires the event is removed from its
// registry. Delivery failures are logged and never retried.
func (c *Countdown) Track(ctx context.Context, event input.EventInfo) {
	reminderSent := false

	for {
		if !c.registry.Active(event.ID) {
			return
		}

		remaining := event.StartTime.Sub(c.now())
		if remaining <= 0 {
			c.send(event.ChannelID, "countdown.start")
			c.registry.Remove(event.ID)
			return
		}
		if remaining <= reminderThreshold && !reminderSent {
			c.send(event.ChannelID, "countdown.reminder")
			reminderSent = true
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Countdown) send(channelID, key string) {
	content := c.translator.T("", key, nil)
	if err := c.notifier.SendChannelMessage(channelID, content); err != nil {
		log.Printf("⚠️ countdown: send %s to %s: %v", key, channelID, err)
	}
}
