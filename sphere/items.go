// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

// Item is anything registered on a sphere: nodes, sockets, edges.
// Identity is immutable for the lifetime of the item except when a
// serialized id is restored, which goes through [Items.Rekey].
type Item interface {

	// ID returns the unique id of the item.
	ID() string

	// Type returns the serializable type tag ("node", "socket", "edge").
	Type() string
}

// Items is an ordered, id-keyed collection of scene items. The order is
// insertion order, which is also draw order. The zero value is ready to use.
type Items struct {
	list  []Item
	index map[string]int
}

// Add registers the item. An item with an id already present replaces the
// existing entry in place, keeping its order.
func (it *Items) Add(item Item) {
	if it.index == nil {
		it.index = map[string]int{}
	}
	if i, ok := it.index[item.ID()]; ok {
		it.list[i] = item
		return
	}
	it.index[item.ID()] = len(it.list)
	it.list = append(it.list, item)
}

// ByID returns the item with the given id.
func (it *Items) ByID(id string) (Item, bool) {
	i, ok := it.index[id]
	if !ok {
		return nil, false
	}
	return it.list[i], true
}

// Delete removes the item with the given id, keeping the order of the
// remaining items. Reports whether anything was removed.
func (it *Items) Delete(id string) bool {
	i, ok := it.index[id]
	if !ok {
		return false
	}
	it.list = append(it.list[:i], it.list[i+1:]...)
	delete(it.index, id)
	for j := i; j < len(it.list); j++ {
		it.index[it.list[j].ID()] = j
	}
	return true
}

// Rekey moves the entry under the id from to the id to, preserving order.
// Used when deserialization restores an item's persisted id.
func (it *Items) Rekey(from, to string) bool {
	i, ok := it.index[from]
	if !ok || from == to {
		return ok
	}
	delete(it.index, from)
	it.index[to] = i
	return true
}

// Len returns the number of registered items.
func (it *Items) Len() int { return len(it.list) }

// At returns the item at the given position in draw order.
func (it *Items) At(i int) Item { return it.list[i] }
