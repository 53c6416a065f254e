/*
Package dove provides an in-process, synchronous publish/subscribe broker: a
typed mailbox that decouples the code producing messages from the code
consuming them.

A Broker is parameterized by a message type K, any comparable value such as a
string or an enum, and a payload type D that the broker forwards without
inspecting. Listeners register for a type under a Handle, messages are posted
to a FIFO queue, and nothing is delivered until Drain is called.

# Basic Usage

	type Event int

	const (
		Resized Event = iota
		Closed
	)

	b := dove.New[Event, Size]()
	who := dove.NewHandle()

	b.Register(Resized, who, func(_ dove.Handle, _ Event, s Size) bool {
		layout(s)
		return true
	})

	b.Post(Resized, Size{W: 800, H: 600})
	b.Drain()

	b.UnregisterAll(who)

# Delivery

Drain pops messages in the order they were posted and hands each one to the
listeners registered for its type, in the order they registered. Messages of a
type nobody listens to are dropped silently. Messages posted by listeners are
appended to the queue and delivered by the same Drain, which returns only when
the queue is empty.

# Claiming

A listener returns true when it has processed the message. What happens when
it returns false depends on the Config:

  - default: nothing
  - WithTrace(true): a warning naming the registration site and the type
  - WithStrict(true): a contract violation; the process logs the registration
    site and the type, then exits

Strict mode is meant for development builds, where every listener registered
for a type is expected to handle every message of that type.

# Configuration

Options are applied with github.com/fogfish/opts:

	b := dove.New[string, Payload](
		dove.WithStrict(true),
		dove.WithLogger(logger),
		dove.FromEnv(),
	)

FromEnv reads DOVE_TRACE, DOVE_STRICT and DOVE_MAX_DRAIN_STEPS so diagnostics
can be switched on without rebuilding.
*/
package dove
