// Package notification separates what kind of notice is sent (Service) from the
// channel that delivers it (Sender), so either side can change independently.
//
// Delivery is simulated: senders render the message they would have sent.
package notification

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/logger"
	"github.com/ajitpratap0/patternlab/pkg/metrics"
)

// Sender is the delivery channel.
type Sender interface {
	Channel() string
	Send(message, recipient string) string
}

// Email renders email deliveries.
type Email struct{}

// Channel returns "email".
func (Email) Channel() string { return "email" }

// Send renders an email to recipient.
func (Email) Send(message, recipient string) string {
	return fmt.Sprintf("Email sent to %s: %s", recipient, message)
}

// SMS renders text message deliveries.
type SMS struct{}

// Channel returns "sms".
func (SMS) Channel() string { return "sms" }

// Send renders a text message to recipient.
func (SMS) Send(message, recipient string) string {
	return fmt.Sprintf("SMS sent to %s: %s", recipient, message)
}

// Slack renders chat deliveries.
type Slack struct{}

// Channel returns "slack".
func (Slack) Channel() string { return "slack" }

// Send renders a chat message to recipient.
func (Slack) Send(message, recipient string) string {
	return fmt.Sprintf("Slack message sent to %s: %s", recipient, message)
}

// SenderFor maps a channel name to its Sender.
func SenderFor(channel string) (Sender, error) {
	switch channel {
	case "email":
		return Email{}, nil
	case "sms":
		return SMS{}, nil
	case "slack":
		return Slack{}, nil
	default:
		return nil, errors.NotFound("notification channel", channel)
	}
}

// Service is the kind of notice being sent.
type Service interface {
	Kind() string
	Send(message, recipient string) string
	SetSender(s Sender)
	Sender() Sender
}

type base struct {
	mu     sync.RWMutex
	sender Sender
	logger *zap.Logger
}

func (b *base) init(sender Sender, log *zap.Logger) {
	b.sender = sender
	b.logger = logger.OrNop(log)
}

// SetSender switches the delivery channel for later sends.
func (b *base) SetSender(s Sender) {
	b.mu.Lock()
	b.sender = s
	b.mu.Unlock()
}

// Sender returns the current delivery channel.
func (b *base) Sender() Sender {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sender
}

func (b *base) deliver(kind, message, recipient string) string {
	s := b.Sender()
	out := s.Send(message, recipient)
	metrics.NotificationsSent.WithLabelValues(s.Channel(), kind).Inc()
	b.logger.Debug("notification sent",
		zap.String("service", kind),
		zap.String("channel", s.Channel()),
		zap.String("recipient", recipient))
	return out
}

// Standard sends messages unchanged.
type Standard struct {
	base
}

// NewStandard creates a standard service on sender.
func NewStandard(sender Sender, logger *zap.Logger) *Standard {
	s := &Standard{}
	s.init(sender, logger)
	return s
}

// Kind returns "standard".
func (s *Standard) Kind() string { return "standard" }

// Send delivers message unchanged through the current sender.
func (s *Standard) Send(message, recipient string) string {
	return s.deliver(s.Kind(), message, recipient)
}

// Urgent prefixes every message with "URGENT: ".
type Urgent struct {
	base
}

// NewUrgent creates an urgent service on sender.
func NewUrgent(sender Sender, logger *zap.Logger) *Urgent {
	u := &Urgent{}
	u.init(sender, logger)
	return u
}

// Kind returns "urgent".
func (u *Urgent) Kind() string { return "urgent" }

// Send delivers message with the urgent prefix.
func (u *Urgent) Send(message, recipient string) string {
	return u.deliver(u.Kind(), "URGENT: "+message, recipient)
}

// Broadcast sends to a list of recipients with a "[BROADCAST] " prefix.
type Broadcast struct {
	base
	recipients []string
}

// NewBroadcast creates a broadcast service; duplicate recipients are dropped.
func NewBroadcast(sender Sender, logger *zap.Logger, recipients ...string) *Broadcast {
	b := &Broadcast{}
	b.init(sender, logger)
	for _, r := range recipients {
		b.AddRecipient(r)
	}
	return b
}

// Kind returns "broadcast".
func (b *Broadcast) Kind() string { return "broadcast" }

// Send delivers to recipient when it is non-empty, otherwise to every
// registered recipient. Results are joined with newlines.
func (b *Broadcast) Send(message, recipient string) string {
	return strings.Join(b.SendAll(message, recipient), "\n")
}

// SendAll is Send without joining the results.
func (b *Broadcast) SendAll(message, recipient string) []string {
	targets := b.Recipients()
	if recipient != "" {
		targets = []string{recipient}
	}
	out := make([]string, 0, len(targets))
	for _, target := range targets {
		out = append(out, b.deliver(b.Kind(), "[BROADCAST] "+message, target))
	}
	return out
}

// AddRecipient registers recipient once.
func (b *Broadcast) AddRecipient(recipient string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !slices.Contains(b.recipients, recipient) {
		b.recipients = append(b.recipients, recipient)
	}
}

// Recipients returns a copy of the registered recipients.
func (b *Broadcast) Recipients() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.recipients)
}
