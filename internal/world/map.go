// Copyright 2026 The Kartoffels Authors
// This file is part of Kartoffels.
//
// Kartoffels is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kartoffels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kartoffels. If not, see <http://www.gnu.org/licenses/>.

// Package world implements Core B: the tick-driven simulation that owns the
// map, bots, objects, queued spawns, and scoring for one arena, and
// publishes versioned snapshots to subscribers (spec.md §2, §4.3-§4.5).
package world

import "github.com/kartoffels/kartoffels/internal/ids"

// TileKind classifies a single map cell (spec.md §3.4).
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileBot
	TileBotChevron
	TileObjectFlag
	TileObjectCrate
)

// Tile is one map cell: a kind plus three bytes of kind-specific metadata
// (e.g. which bot/object owns a BOT/OBJECT_* tile).
type Tile struct {
	Kind TileKind
	Meta [3]byte
}

// IVec2 is an integer grid coordinate.
type IVec2 struct {
	X, Y int
}

// Map is a rectangular tile grid. Tiles are stored row-major.
type Map struct {
	Width, Height int
	Tiles         []Tile
}

// NewMap returns a w x h map of floor tiles.
func NewMap(w, h int) *Map {
	return &Map{Width: w, Height: h, Tiles: make([]Tile, w*h)}
}

func (m *Map) InBounds(p IVec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height
}

func (m *Map) At(p IVec2) Tile {
	if !m.InBounds(p) {
		return Tile{Kind: TileWall}
	}
	return m.Tiles[p.Y*m.Width+p.X]
}

func (m *Map) Set(p IVec2, t Tile) {
	if m.InBounds(p) {
		m.Tiles[p.Y*m.Width+p.X] = t
	}
}

// Clone returns a deep copy, used to build each snapshot's bot-rendered
// overlay without mutating the authoritative map (spec.md §4.4).
func (m *Map) Clone() *Map {
	out := &Map{Width: m.Width, Height: m.Height, Tiles: make([]Tile, len(m.Tiles))}
	copy(out.Tiles, m.Tiles)
	return out
}

// Passable reports whether a bot may step onto this tile.
func (t Tile) Passable() bool {
	return t.Kind == TileFloor || t.Kind == TileObjectFlag || t.Kind == TileObjectCrate
}

// encodeBotMeta packs the low 24 bits of a BotId, little-endian, into a BOT
// tile's meta bytes. This package has no decoder for them.
func encodeBotMeta(id ids.BotId) [3]byte {
	v := uint64(id)
	return [3]byte{byte(v), byte(v >> 8), byte(v >> 16)}
}
