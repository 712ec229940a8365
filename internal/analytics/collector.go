// Package analytics counts page activations reported by client pages and
// forwards them as events to a NATS subject.
package analytics

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Publisher sends a payload to a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// PageView is the event published for each client-side page activation.
type PageView struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Collector records page views.
type Collector struct {
	accountID string
	subject   string
	pub       Publisher
	views     prom.Counter
	now       func() time.Time
}

// Option customizes a Collector.
type Option func(*Collector)

// WithPublisher forwards events to pub on subject.
func WithPublisher(pub Publisher, subject string) Option {
	return func(c *Collector) {
		c.pub = pub
		c.subject = subject
	}
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) Option { return func(c *Collector) { c.now = now } }

// NewCollector registers the page view counter on reg. A nil reg uses a
// private registry.
func NewCollector(accountID string, reg prom.Registerer, opts ...Option) *Collector {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	c := &Collector{
		accountID: accountID,
		now:       time.Now,
		views: prom.NewCounter(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "page_views_total",
			Help:      "Client-side page activations reported by the mount beacon",
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := reg.Register(c.views); err != nil {
		var are prom.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prom.Counter); ok {
				c.views = existing
			}
		} else {
			slog.Warn("Failed to register page view counter", logfields.Error(err))
		}
	}
	return c
}

// Inject records one page view. It never fails: publish errors are logged
// and dropped so page activation is unaffected.
func (c *Collector) Inject() {
	if c == nil {
		return
	}
	c.views.Inc()
	if c.pub == nil || c.subject == "" {
		return
	}

	ev := PageView{ID: uuid.NewString(), AccountID: c.accountID, Timestamp: c.now().UTC()}
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Debug("Failed to marshal page view", logfields.Error(err))
		return
	}
	if err := c.pub.Publish(c.subject, data); err != nil {
		slog.Debug("Failed to publish page view", logfields.EventID(ev.ID), logfields.Error(err))
		return
	}
	slog.Debug("Published page view", logfields.EventID(ev.ID))
}
