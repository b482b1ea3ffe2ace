package handler

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Distances returned by Distance.
const (
	distanceExact = iota
	distanceIndirect
	distanceInterface
	distancePointerInterface
	noMatch = -1
)

// Distance returns how far t is from a registration for registered, or -1
// when the registration does not apply to t. An exact type is 0, one
// pointer indirection in either direction is 1, an interface implemented
// by t is 2 and an interface implemented only by *t is 3.
func Distance(t, registered reflect.Type) int {
	switch {
	case t == registered:
		return distanceExact
	case t.Kind() == reflect.Pointer && t.Elem() == registered,
		registered.Kind() == reflect.Pointer && registered.Elem() == t:
		return distanceIndirect
	case registered.Kind() != reflect.Interface:
		return noMatch
	case t.Implements(registered):
		return distanceInterface
	case t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(registered):
		return distancePointerInterface
	default:
		return noMatch
	}
}

type entry[H any] struct {
	t reflect.Type
	h H
}

// Registry is an ordered list of (type, handler) registrations. Lookups
// read an immutable snapshot and never lock.
type Registry[H any] struct {
	mu      sync.Mutex
	entries atomic.Pointer[[]entry[H]]
}

// NewRegistry returns an empty registry.
func NewRegistry[H any]() *Registry[H] {
	r := &Registry[H]{} //nolint:exhaustruct
	r.entries.Store(&[]entry[H]{})

	return r
}

// Add registers h for t. A later registration for the same exact type
// replaces the earlier one in place.
func (r *Registry[H]) Add(t reflect.Type, h H) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.entries.Load()
	next := make([]entry[H], len(current), len(current)+1)
	copy(next, current)

	for i := range next {
		if next[i].t == t {
			next[i].h = h
			r.entries.Store(&next)

			return
		}
	}

	next = append(next, entry[H]{t: t, h: h})
	r.entries.Store(&next)
}

// Match is the result of a registry lookup.
type Match[H any] struct {
	Handler H
	// Type is the registered type that matched.
	Type reflect.Type
}

// Closest returns the registration nearest to t. Ties go to the earliest
// registration.
func (r *Registry[H]) Closest(t reflect.Type) (Match[H], bool) {
	var (
		best     Match[H]
		bestDist = noMatch
	)

	if t == nil {
		return best, false
	}

	for _, e := range *r.entries.Load() {
		d := Distance(t, e.t)
		if d == noMatch {
			continue
		}

		if d == distanceExact {
			return Match[H]{Handler: e.h, Type: e.t}, true
		}

		if bestDist == noMatch || d < bestDist {
			best = Match[H]{Handler: e.h, Type: e.t}
			bestDist = d
		}
	}

	return best, bestDist != noMatch
}

// Len returns the number of registrations.
func (r *Registry[H]) Len() int {
	return len(*r.entries.Load())
}
