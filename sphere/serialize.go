// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"encoding/json"
	"fmt"
)

// EdgeRecord is the serialized form of a [SurfaceEdge]. Socket endpoints
// are stored by id and resolved through the owning sphere's item registry
// on restore. Field-set compatibility across versions is the caller's
// responsibility.
type EdgeRecord struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	EdgeType      int    `json:"edge_type"`
	StartSocketID string `json:"start_socket_id"`
	EndSocketID   string `json:"end_socket_id"`
	Scene         string `json:"scene"`
}

// Serialize returns the edge's persistent record. Both endpoints must be
// set; a half-built edge is not serializable.
func (ed *SurfaceEdge) Serialize() (EdgeRecord, error) {
	if ed.start == nil || ed.end == nil {
		return EdgeRecord{}, fmt.Errorf("edge %s: serialize with unset endpoint", ed.id)
	}
	return EdgeRecord{
		ID:            ed.id,
		Type:          ed.Type(),
		EdgeType:      ed.EdgeType,
		StartSocketID: ed.start.ID(),
		EndSocketID:   ed.end.ID(),
		Scene:         ed.SceneDetail,
	}, nil
}

// MarshalJSON encodes the edge as its [EdgeRecord].
func (ed *SurfaceEdge) MarshalJSON() ([]byte, error) {
	rec, err := ed.Serialize()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// Deserialize restores the edge from a record: the persisted id is adopted
// (when restoreID is set), the socket ids are resolved through the sphere
// registry, and the polyline is recomputed.
func (ed *SurfaceEdge) Deserialize(rec EdgeRecord, restoreID bool) error {
	if restoreID && rec.ID != "" && rec.ID != ed.id {
		ed.sphere.items.Rekey(ed.id, rec.ID)
		ed.id = rec.ID
	}
	ed.EdgeType = rec.EdgeType
	ed.SceneDetail = rec.Scene

	start, err := ed.sphere.socketByID(rec.StartSocketID)
	if err != nil {
		return fmt.Errorf("edge %s: start: %w", ed.id, err)
	}
	end, err := ed.sphere.socketByID(rec.EndSocketID)
	if err != nil {
		return fmt.Errorf("edge %s: end: %w", ed.id, err)
	}
	ed.SetStartSocket(start)
	ed.SetEndSocket(end)
	ed.UpdatePosition()
	return nil
}

func (sp *Sphere) socketByID(id string) (*Socket, error) {
	item, ok := sp.ItemByID(id)
	if !ok {
		return nil, fmt.Errorf("no item with id %q", id)
	}
	sk, ok := item.(*Socket)
	if !ok {
		return nil, fmt.Errorf("item %q is a %s, not a socket", id, item.Type())
	}
	return sk, nil
}
