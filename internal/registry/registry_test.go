package registry

import (
	"testing"

	"github.com/casualjim/dove/pkg/callsite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handles[L any](regs []*Registration[L]) []string {
	out := make([]string, 0, len(regs))
	for _, reg := range regs {
		out = append(out, reg.Handle)
	}
	return out
}

func TestRegistry_Add(t *testing.T) {
	t.Run("keeps insertion order per type", func(t *testing.T) {
		r := New[string, int]()
		r.Add("ping", "a", 1, callsite.Site{})
		r.Add("ping", "b", 2, callsite.Site{})
		r.Add("pong", "c", 3, callsite.Site{})
		r.Add("ping", "c", 4, callsite.Site{})

		assert.Equal(t, []string{"a", "b", "c"}, handles(r.Listeners("ping")))
		assert.Equal(t, []string{"c"}, handles(r.Listeners("pong")))
		assert.Equal(t, []string{"ping", "pong"}, r.Types())
		assert.Equal(t, 4, r.Len())
		assert.Equal(t, 3, r.Handles())
	})

	t.Run("allows duplicate registrations", func(t *testing.T) {
		r := New[string, int]()
		r.Add("ping", "a", 1, callsite.Site{})
		r.Add("ping", "a", 1, callsite.Site{})

		assert.Len(t, r.Listeners("ping"), 2)
		assert.Equal(t, 1, r.Handles())
	})

	t.Run("records the site", func(t *testing.T) {
		r := New[int, string]()
		site := callsite.Site{File: "x.go", Line: 9}
		r.Add(1, "a", "fn", site)

		regs := r.Listeners(1)
		require.Len(t, regs, 1)
		assert.Equal(t, site, regs[0].Site)
		assert.Equal(t, "fn", regs[0].Listener)
	})

	t.Run("unknown type has no listeners", func(t *testing.T) {
		r := New[string, int]()
		assert.Nil(t, r.Listeners("nothing"))
	})
}

func TestRegistry_Remove(t *testing.T) {
	t.Run("removes across types and keeps order", func(t *testing.T) {
		r := New[string, int]()
		r.Add("ping", "a", 1, callsite.Site{})
		r.Add("ping", "b", 2, callsite.Site{})
		r.Add("ping", "c", 3, callsite.Site{})
		r.Add("pong", "b", 4, callsite.Site{})
		r.Add("ping", "b", 5, callsite.Site{})

		assert.Equal(t, 3, r.Remove("b"))
		assert.Equal(t, []string{"a", "c"}, handles(r.Listeners("ping")))
		assert.Nil(t, r.Listeners("pong"))
		assert.Equal(t, []string{"ping"}, r.Types())
		assert.Equal(t, 2, r.Len())
	})

	t.Run("is idempotent", func(t *testing.T) {
		r := New[string, int]()
		r.Add("ping", "a", 1, callsite.Site{})

		assert.Equal(t, 1, r.Remove("a"))
		assert.Equal(t, 0, r.Remove("a"))
		assert.Equal(t, 0, r.Remove("never"))
		assert.Equal(t, 0, r.Len())
		assert.Equal(t, 0, r.Handles())
	})

	t.Run("keeps slices already handed out and marks removals", func(t *testing.T) {
		r := New[string, int]()
		r.Add("ping", "a", 1, callsite.Site{})
		r.Add("ping", "b", 2, callsite.Site{})

		inFlight := r.Listeners("ping")
		r.Remove("a")
		r.Add("ping", "c", 3, callsite.Site{})

		assert.Equal(t, []string{"a", "b"}, handles(inFlight))
		assert.True(t, inFlight[0].Removed())
		assert.False(t, inFlight[1].Removed())
		assert.Equal(t, []string{"b", "c"}, handles(r.Listeners("ping")))
		for _, reg := range r.Listeners("ping") {
			assert.False(t, reg.Removed())
		}
	})
}
