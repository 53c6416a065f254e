// Package registry keeps listener registrations per message type.
package registry

import (
	"slices"

	"github.com/alphadose/haxmap"
	"github.com/casualjim/dove/pkg/callsite"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registration binds a listener to the handle that registered it and the
// place it was registered from.
type Registration[L any] struct {
	Handle   string
	Listener L
	Site     callsite.Site

	removed bool
}

// Removed reports whether the registration was removed after it was handed
// out by Listeners.
func (r *Registration[L]) Removed() bool {
	return r.removed
}

// Registry maps message types to their registrations in insertion order.
//
// Slices handed out by Listeners are never modified afterwards: removal
// builds new slices and marks the removed registrations, so a dispatch that
// is iterating a previously returned slice keeps its order and sees removals
// immediately through Removed.
type Registry[K comparable, L any] struct {
	byType   *orderedmap.OrderedMap[K, []*Registration[L]]
	byHandle *haxmap.Map[string, []K]
	size     int
}

func New[K comparable, L any]() *Registry[K, L] {
	return &Registry[K, L]{
		byType:   orderedmap.New[K, []*Registration[L]](),
		byHandle: haxmap.New[string, []K](),
	}
}

// Add appends a registration for typ. Duplicate registrations are kept.
func (r *Registry[K, L]) Add(typ K, handle string, listener L, site callsite.Site) {
	regs, _ := r.byType.Get(typ)
	r.byType.Set(typ, append(regs, &Registration[L]{
		Handle:   handle,
		Listener: listener,
		Site:     site,
	}))
	r.size++

	types, _ := r.byHandle.Get(handle)
	if !slices.Contains(types, typ) {
		r.byHandle.Set(handle, append(types, typ))
	}
}

// Remove drops every registration made with handle and returns how many were
// removed. The relative order of the remaining registrations is preserved.
func (r *Registry[K, L]) Remove(handle string) int {
	types, ok := r.byHandle.Get(handle)
	if !ok {
		return 0
	}
	r.byHandle.Del(handle)

	removed := 0
	for _, typ := range types {
		regs, ok := r.byType.Get(typ)
		if !ok {
			continue
		}
		kept := make([]*Registration[L], 0, len(regs))
		for _, reg := range regs {
			if reg.Handle == handle {
				reg.removed = true
				removed++
				continue
			}
			kept = append(kept, reg)
		}
		if len(kept) == 0 {
			r.byType.Delete(typ)
			continue
		}
		r.byType.Set(typ, kept)
	}
	r.size -= removed
	return removed
}

// Listeners returns the registrations for typ in registration order, or nil
// when there are none. The result must not be modified.
func (r *Registry[K, L]) Listeners(typ K) []*Registration[L] {
	regs, _ := r.byType.Get(typ)
	return slices.Clip(regs)
}

// Types returns the message types that have registrations, ordered by when
// each type was first registered.
func (r *Registry[K, L]) Types() []K {
	types := make([]K, 0, r.byType.Len())
	for pair := r.byType.Oldest(); pair != nil; pair = pair.Next() {
		types = append(types, pair.Key)
	}
	return types
}

// Handles returns the number of distinct handles with live registrations.
func (r *Registry[K, L]) Handles() int {
	return int(r.byHandle.Len())
}

// Len returns the total number of registrations across all types.
func (r *Registry[K, L]) Len() int {
	return r.size
}
