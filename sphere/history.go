// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

// DefaultHistoryLimit bounds the undo log length.
const DefaultHistoryLimit = 32

// HistoryEntry is one undo log record.
type HistoryEntry struct {
	Label    string
	Modified bool
}

// History is the bounded undo log of a sphere. Interactive operations that
// change the scene (node drags, edge moves, removals) store an entry when
// they complete.
type History struct {
	Limit    int
	entries  []HistoryEntry
	modified bool
}

// NewHistory returns an empty history with the default limit.
func NewHistory() *History {
	return &History{Limit: DefaultHistoryLimit}
}

// Store appends an entry, dropping the oldest when over the limit.
// modified marks the scene as having unsaved changes.
func (hs *History) Store(label string, modified bool) {
	hs.entries = append(hs.entries, HistoryEntry{Label: label, Modified: modified})
	if hs.Limit > 0 && len(hs.entries) > hs.Limit {
		hs.entries = hs.entries[len(hs.entries)-hs.Limit:]
	}
	if modified {
		hs.modified = true
	}
}

// Len returns the number of stored entries.
func (hs *History) Len() int { return len(hs.entries) }

// Last returns the most recent entry.
func (hs *History) Last() (HistoryEntry, bool) {
	if len(hs.entries) == 0 {
		return HistoryEntry{}, false
	}
	return hs.entries[len(hs.entries)-1], true
}

// Modified reports whether any stored entry marked the scene modified.
func (hs *History) Modified() bool { return hs.modified }
