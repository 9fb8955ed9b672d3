// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry collects classified resources per category in input
// order.
package registry

import "github.com/pdiddy/zotero-notes/pkg/types"

// Registry holds one append-only sequence per category. It is filled during
// classification and only read afterwards.
type Registry struct {
	lists map[types.Category][]types.Resource
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{lists: make(map[types.Category][]types.Resource)}
}

// Add appends r to its category's sequence.
func (r *Registry) Add(res types.Resource) {
	c := res.Category()
	r.lists[c] = append(r.lists[c], res)
}

// All returns the resources of category c in insertion order. The slice must
// not be modified.
func (r *Registry) All(c types.Category) []types.Resource {
	return r.lists[c]
}

// Len returns the number of resources in category c.
func (r *Registry) Len(c types.Category) int {
	return len(r.lists[c])
}

// Total returns the number of resources across all categories.
func (r *Registry) Total() int {
	n := 0
	for _, l := range r.lists {
		n += len(l)
	}
	return n
}

// Each calls fn for every resource, category by category in
// types.Categories order.
func (r *Registry) Each(fn func(types.Resource)) {
	for _, c := range types.Categories {
		for _, res := range r.lists[c] {
			fn(res)
		}
	}
}
