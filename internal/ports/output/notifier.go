package output

// Notifier delivers countdown notifications to an event's origin channel.
// Delivery is best-effort; the countdown never retries a failed send.
type Notifier interface {
	SendChannelMessage(channelID, content string) error
}
