// Package handoff carries an inquiry from a property page to the home page contact
// form across a full navigation, and remembers the home page scroll offset.
package handoff

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"prestige-properties/pkg/logger"
	"prestige-properties/pkg/metrics"
)

type Kind string

const (
	KindBooking     Kind = "booking"
	KindInformation Kind = "information"
)

// ParseKind accepts the wire names case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindBooking:
		return KindBooking, true
	case KindInformation:
		return KindInformation, true
	}
	return "", false
}

// Intent is the persisted inquiry record.
type Intent struct {
	PropertyName string `json:"propertyName"`
	Kind         Kind   `json:"type"`
}

type ScrollKind int

const (
	// ScrollToContact smooth-scrolls to an element after a delay.
	ScrollToContact ScrollKind = iota + 1
	// ScrollToOffset jumps straight to a vertical offset.
	ScrollToOffset
)

// ScrollAction is a directive for the rendered page.
type ScrollAction struct {
	Kind   ScrollKind
	Target string
	Offset int
	Delay  time.Duration
	Smooth bool
}

// MountResult is what the home page applies when it becomes active. A zero value
// means nothing to do.
type MountResult struct {
	// Pending is true when a contact handoff was consumed by this mount.
	Pending bool
	Prefill string
	Scroll  *ScrollAction
}

// MessageFunc renders the prefill text for an inquiry.
type MessageFunc func(kind Kind, propertyName string) string

// EnglishMessage is the built-in MessageFunc.
func EnglishMessage(kind Kind, propertyName string) string {
	if kind == KindBooking {
		return fmt.Sprintf("I'm interested in booking %s. Could you please provide more information about availability and booking details?", propertyName)
	}
	return fmt.Sprintf("I would like to request information about %s. Please contact me with more details about this property.", propertyName)
}

type Coordinator struct {
	store    Store
	messages MessageFunc
	delay    time.Duration
}

type Option func(*Coordinator)

// WithScrollDelay overrides DefaultScrollDelay.
func WithScrollDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.delay = d }
}

func NewCoordinator(store Store, messages MessageFunc, opts ...Option) *Coordinator {
	if messages == nil {
		messages = EnglishMessage
	}
	c := &Coordinator{store: store, messages: messages, delay: DefaultScrollDelay}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignalInquiry records an intent for the next home page mount. The caller must
// follow it with a full navigation to the home page.
func (c *Coordinator) SignalInquiry(ctx context.Context, propertyName string, kind Kind) error {
	if _, ok := ParseKind(string(kind)); !ok {
		return fmt.Errorf("unknown inquiry kind %q", kind)
	}
	payload, err := json.Marshal(Intent{PropertyName: propertyName, Kind: kind})
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}
	if err := c.store.Set(ctx, KeyPropertyInquiry, string(payload)); err != nil {
		return fmt.Errorf("failed to store inquiry: %w", err)
	}
	if err := c.store.Set(ctx, KeyScrollToContact, flagSet); err != nil {
		return fmt.Errorf("failed to store contact flag: %w", err)
	}
	return nil
}

// ConsumeOnMount delivers a pending handoff at most once: the flag is taken
// atomically, so only one of several concurrent mounts sees it. Without a pending
// flag it returns the zero MountResult and leaves the other keys alone. Storage
// errors and malformed intents degrade to a bare contact scroll.
func (c *Coordinator) ConsumeOnMount(ctx context.Context) MountResult {
	flag, ok, err := c.store.Take(ctx, KeyScrollToContact)
	if err != nil {
		logger.GlobalLogger.Warnf("handoff: taking contact flag: %v", err)
		return MountResult{}
	}
	if !ok || flag != flagSet {
		return MountResult{}
	}

	result := MountResult{
		Pending: true,
		Scroll: &ScrollAction{
			Kind:   ScrollToContact,
			Target: ContactSectionID,
			Delay:  c.delay,
			Smooth: true,
		},
	}

	intent, outcome := c.takeIntent(ctx)
	if intent != nil {
		result.Prefill = c.messages(intent.Kind, intent.PropertyName)
	}
	metrics.HandoffConsumedTotal.WithLabelValues(outcome).Inc()
	return result
}

func (c *Coordinator) takeIntent(ctx context.Context) (*Intent, string) {
	raw, ok, err := c.store.Take(ctx, KeyPropertyInquiry)
	if err != nil {
		logger.GlobalLogger.Warnf("handoff: taking inquiry: %v", err)
		return nil, "store_error"
	}
	if !ok {
		return nil, "no_intent"
	}

	var intent Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		logger.GlobalLogger.Debugf("handoff: discarding malformed inquiry: %v", err)
		return nil, "malformed"
	}
	kind, valid := ParseKind(string(intent.Kind))
	if !valid || intent.PropertyName == "" {
		logger.GlobalLogger.Debugf("handoff: discarding inquiry with kind %q", intent.Kind)
		return nil, "malformed"
	}
	intent.Kind = kind
	return &intent, "prefilled"
}

// SaveScrollPosition remembers the home page offset. Negative offsets are stored as 0.
func (c *Coordinator) SaveScrollPosition(ctx context.Context, y int) error {
	if y < 0 {
		y = 0
	}
	if err := c.store.Set(ctx, KeyHomeScrollPosition, strconv.Itoa(y)); err != nil {
		return fmt.Errorf("failed to store scroll position: %w", err)
	}
	return nil
}

// RestoreScrollPosition returns the saved offset once and forgets it. Unparsable
// values are dropped.
func (c *Coordinator) RestoreScrollPosition(ctx context.Context) (ScrollAction, bool) {
	raw, ok, err := c.store.Take(ctx, KeyHomeScrollPosition)
	if err != nil {
		logger.GlobalLogger.Warnf("handoff: taking scroll position: %v", err)
		return ScrollAction{}, false
	}
	if !ok {
		return ScrollAction{}, false
	}

	y, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || y < 0 {
		return ScrollAction{}, false
	}
	return ScrollAction{Kind: ScrollToOffset, Offset: y}, true
}

// Mount runs on every home page render: a pending contact handoff wins, otherwise
// the saved scroll offset is restored.
func (c *Coordinator) Mount(ctx context.Context) MountResult {
	if result := c.ConsumeOnMount(ctx); result.Pending {
		return result
	}
	if action, ok := c.RestoreScrollPosition(ctx); ok {
		return MountResult{Scroll: &action}
	}
	return MountResult{}
}
