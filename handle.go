package dove

import "github.com/google/uuid"

// Handle is an opaque identity naming who registered a listener. It is only
// ever compared for equality; the broker attaches no meaning to its value.
//
// Any string works as a handle, which lets integrators use stable names for
// long-lived components. NewHandle mints unique handles for everything else.
type Handle string

// NoHandle is the anonymous identity. Listeners registered with it can only be
// removed together with every other anonymous listener.
const NoHandle Handle = ""

// NewHandle returns a unique handle backed by a version 7 UUID.
// It panics if the UUID generation fails.
func NewHandle() Handle {
	return Handle(uuid.Must(uuid.NewV7()).String())
}

func (h Handle) String() string {
	if h == NoHandle {
		return "<anonymous>"
	}
	return string(h)
}
