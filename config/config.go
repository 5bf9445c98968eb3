// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the user-tunable settings of a sphere universe,
// loaded from a TOML file over built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RGBA is a straight-alpha color as four floats in 0..1.
type RGBA [4]float32

// Settings are the tunables of a universe session.
type Settings struct {

	// UnitLength is the target arc length per edge polyline segment:
	// larger socket separation yields proportionally more points.
	UnitLength float32 `toml:"unit_length"`

	// MouseSensitivity scales raw mouse deltas into camera orbit degrees.
	MouseSensitivity float32 `toml:"mouse_sensitivity"`

	// MinRadius is the closest the camera may orbit to a sphere center.
	MinRadius float32 `toml:"min_radius"`

	// CamMovementSteps is the number of frames a camera flight between
	// spheres is spread over.
	CamMovementSteps int `toml:"cam_movement_steps"`

	// EdgeColor is the default edge color.
	EdgeColor RGBA `toml:"edge_color"`

	// EdgeColorSelected is the edge color while selected.
	EdgeColorSelected RGBA `toml:"edge_color_selected"`

	// EdgeColorHovered is the edge color while hovered.
	EdgeColorHovered RGBA `toml:"edge_color_hovered"`

	// EdgeWidth is the fat-line width in pixels.
	EdgeWidth float32 `toml:"edge_width"`

	// WinWidth and WinHeight are the initial window size.
	WinWidth  int `toml:"win_width"`
	WinHeight int `toml:"win_height"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		UnitLength:        0.1,
		MouseSensitivity:  0.1,
		MinRadius:         1.5,
		CamMovementSteps:  25,
		EdgeColor:         RGBA{0, 0, 0, 0.5},
		EdgeColorSelected: RGBA{0.9, 0.4, 0.1, 1},
		EdgeColorHovered:  RGBA{0.2, 0.6, 0.9, 1},
		EdgeWidth:         1.5,
		WinWidth:          1280,
		WinHeight:         720,
	}
}

// Open loads settings from the TOML file at path, merged over defaults.
// A missing file is not an error: the defaults are returned.
func Open(path string) (*Settings, error) {
	st := Defaults()
	if path == "" {
		return st, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return st, nil
}
