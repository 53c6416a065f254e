package dove

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/casualjim/dove/internal/queue"
	"github.com/casualjim/dove/internal/registry"
	"github.com/casualjim/dove/pkg/callsite"
	"github.com/casualjim/dove/pkg/contract"
	"github.com/casualjim/dove/pkg/slogx"
	"github.com/fogfish/opts"
)

// Listener handles a message of a type it was registered for. It receives the
// handle it was registered with and reports whether it claimed the message.
type Listener[K comparable, D any] func(who Handle, typ K, data D) bool

// Message is a posted message waiting to be drained.
type Message[K comparable, D any] struct {
	Type K
	Data D
	// Site is where the message was posted from.
	Site callsite.Site
}

// Stats counts what a broker has done since it was created.
type Stats struct {
	Posted    uint64 `json:"posted"`
	Delivered uint64 `json:"delivered"`
	Dropped   uint64 `json:"dropped"`
	Unclaimed uint64 `json:"unclaimed"`
}

// Broker queues typed messages and delivers them synchronously to the
// listeners registered for their type when Drain is called.
//
// A Broker is not safe for concurrent use.
type Broker[K comparable, D any] struct {
	cfg       Config
	logger    *slog.Logger
	checker   *contract.Checker
	listeners *registry.Registry[K, Listener[K, D]]
	messages  queue.FIFO[Message[K, D]]
	draining  bool
	stats     Stats
}

// New creates an empty broker. It panics when an option fails to apply.
func New[K comparable, D any](options ...opts.Option[Config]) *Broker[K, D] {
	cfg, err := newConfig(options)
	if err != nil {
		panic(err)
	}
	logger := cfg.Logger.With(slogx.LoggerName("dove"))
	return &Broker[K, D]{
		cfg:       cfg,
		logger:    logger,
		checker:   contract.New(logger, cfg.Exit),
		listeners: registry.New[K, Listener[K, D]](),
	}
}

// Config returns the configuration the broker was created with.
func (b *Broker[K, D]) Config() Config {
	return b.cfg
}

// Register appends listener to the listeners for typ. Registering the same
// handle and listener twice results in two deliveries per message.
func (b *Broker[K, D]) Register(typ K, who Handle, listener Listener[K, D]) {
	b.register(typ, who, listener, callsite.Caller(1))
}

// RegisterMany registers listener once for every distinct type in types.
func (b *Broker[K, D]) RegisterMany(types []K, who Handle, listener Listener[K, D]) {
	site := callsite.Caller(1)
	seen := make([]K, 0, len(types))
	for _, typ := range types {
		if slices.Contains(seen, typ) {
			continue
		}
		seen = append(seen, typ)
		b.register(typ, who, listener, site)
	}
}

func (b *Broker[K, D]) register(typ K, who Handle, listener Listener[K, D], site callsite.Site) {
	if listener == nil {
		b.logger.Warn("ignoring nil listener",
			slogx.Value("type", typ),
			slogx.Stringer("handle", who),
			slogx.Site("site", site),
		)
		return
	}
	b.listeners.Add(typ, string(who), listener, site)

	if b.cfg.Trace {
		b.logger.Debug("registered listener",
			slogx.Value("type", typ),
			slogx.Stringer("handle", who),
			slogx.Site("site", site),
		)
	}
}

// UnregisterAll removes every listener registered with who, for every type.
// Removing a handle without registrations is a no-op.
func (b *Broker[K, D]) UnregisterAll(who Handle) {
	removed := b.listeners.Remove(string(who))
	if b.cfg.Trace && removed > 0 {
		b.logger.Debug("unregistered listeners",
			slogx.Stringer("handle", who),
			slog.Int("count", removed),
		)
	}
}

// Post appends a message to the queue. No listener runs until Drain.
func (b *Broker[K, D]) Post(typ K, data D) {
	b.post(typ, data, callsite.Caller(1))
}

// Notify posts a message of type typ with the zero payload.
func (b *Broker[K, D]) Notify(typ K) {
	var data D
	b.post(typ, data, callsite.Caller(1))
}

func (b *Broker[K, D]) post(typ K, data D, site callsite.Site) {
	b.messages.Push(Message[K, D]{Type: typ, Data: data, Site: site})
	b.stats.Posted++

	if b.cfg.Trace {
		b.logger.Debug("received message",
			slogx.Value("type", typ),
			slogx.Site("from", site),
			slog.String("data", b.cfg.Formatter(data)),
		)
	}
}

// Drain delivers queued messages until the queue is empty, including messages
// posted by listeners while draining. Each message goes to the listeners
// registered for its type at the moment it is dequeued, in registration order.
// A listener unregistered while a message is being dispatched is skipped for
// that message; listeners registered meanwhile start with the next message.
//
// Calling Drain from inside a listener does nothing: the outer call keeps
// going until the queue is empty. When MaxDrainSteps is set and reached, the
// remaining messages stay queued; in strict mode that is a contract violation.
func (b *Broker[K, D]) Drain() {
	if b.draining {
		if b.cfg.Trace {
			b.logger.Debug("drain already in progress", slogx.Site("from", callsite.Caller(1)))
		}
		return
	}
	b.draining = true
	defer func() { b.draining = false }()

	steps := 0
	for b.messages.Len() > 0 {
		if b.cfg.MaxDrainSteps > 0 && steps >= b.cfg.MaxDrainSteps {
			b.budgetExhausted(callsite.Caller(1))
			return
		}
		msg, _ := b.messages.Pop()
		steps++
		b.dispatch(msg)
	}
}

func (b *Broker[K, D]) dispatch(msg Message[K, D]) {
	regs := b.listeners.Listeners(msg.Type)
	if len(regs) == 0 {
		b.stats.Dropped++
		if b.cfg.Trace {
			b.logger.Debug("dropped message without listeners",
				slogx.Value("type", msg.Type),
				slogx.Site("from", msg.Site),
			)
		}
		return
	}

	for _, reg := range regs {
		if reg.Removed() {
			continue
		}
		b.stats.Delivered++
		if reg.Listener(Handle(reg.Handle), msg.Type, msg.Data) {
			continue
		}
		b.stats.Unclaimed++
		b.unclaimed(reg, msg)
	}
}

func (b *Broker[K, D]) unclaimed(reg *registry.Registration[Listener[K, D]], msg Message[K, D]) {
	switch {
	case b.cfg.Strict:
		b.checker.Fail(reg.Site, "listener (%s) has not processed registered message: %v", reg.Site.Short(), msg.Type)
	case b.cfg.Trace:
		b.logger.Warn("listener has not processed registered message",
			slogx.Value("type", msg.Type),
			slogx.Stringer("handle", Handle(reg.Handle)),
			slogx.Site("site", reg.Site),
		)
	}
}

func (b *Broker[K, D]) budgetExhausted(site callsite.Site) {
	msg := fmt.Sprintf("drain stopped after %d messages with %d still queued", b.cfg.MaxDrainSteps, b.messages.Len())
	if b.cfg.Strict {
		b.checker.Fail(site, "%s", msg)
		return
	}
	b.logger.Warn(msg, slogx.Site("from", site))
}

// Pending returns the number of queued messages.
func (b *Broker[K, D]) Pending() int {
	return b.messages.Len()
}

// Registrations returns the number of registered listeners across all types.
func (b *Broker[K, D]) Registrations() int {
	return b.listeners.Len()
}

// Stats returns a copy of the broker's counters.
func (b *Broker[K, D]) Stats() Stats {
	return b.stats
}
