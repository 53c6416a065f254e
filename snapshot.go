package dove

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/tidwall/sjson"
)

var snapshotJSON = []byte(`{"types":[],"queue":[]}`)

// Snapshot renders the broker's registrations, queued messages, counters and
// diagnostic settings as JSON. Message types are rendered with %v; payloads
// are left out.
//
// The document looks like:
//
//	{
//	  "taken_at": "2024-01-02T15:04:05.000Z",
//	  "trace": false,
//	  "strict": true,
//	  "pending": 2,
//	  "registrations": 3,
//	  "handles": 2,
//	  "stats": {"posted": 5, "delivered": 4, "dropped": 1, "unclaimed": 0},
//	  "types": [
//	    {"type": "ping", "listeners": [{"handle": "<anonymous>", "site": "file: main.go (12)"}]}
//	  ],
//	  "queue": [{"type": "ping", "from": "file: main.go (20)"}]
//	}
func (b *Broker[K, D]) Snapshot() ([]byte, error) {
	result := slices.Clone(snapshotJSON)

	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		result, err = sjson.SetBytes(result, path, value)
	}

	set("taken_at", strfmt.DateTime(time.Now()).String())
	set("trace", b.cfg.Trace)
	set("strict", b.cfg.Strict)
	set("pending", b.messages.Len())
	set("registrations", b.listeners.Len())
	set("handles", b.listeners.Handles())
	set("stats", b.stats)

	for i, typ := range b.listeners.Types() {
		set(fmt.Sprintf("types.%d.type", i), fmt.Sprintf("%v", typ))
		set(fmt.Sprintf("types.%d.listeners", i), []any{})
		for j, reg := range b.listeners.Listeners(typ) {
			set(fmt.Sprintf("types.%d.listeners.%d.handle", i, j), Handle(reg.Handle).String())
			set(fmt.Sprintf("types.%d.listeners.%d.site", i, j), reg.Site.String())
		}
	}

	i := 0
	b.messages.Each(func(msg Message[K, D]) bool {
		set(fmt.Sprintf("queue.%d.type", i), fmt.Sprintf("%v", msg.Type))
		set(fmt.Sprintf("queue.%d.from", i), msg.Site.String())
		i++
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("render snapshot: %w", err)
	}
	return result, nil
}
