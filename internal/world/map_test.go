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

package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapOutOfBoundsIsWall(t *testing.T) {
	m := NewMap(4, 4)
	assert.Equal(t, TileWall, m.At(IVec2{X: -1, Y: 0}).Kind)
	assert.Equal(t, TileWall, m.At(IVec2{X: 4, Y: 0}).Kind)
	assert.Equal(t, TileFloor, m.At(IVec2{X: 0, Y: 0}).Kind)
}

func TestMapSetIgnoresOutOfBounds(t *testing.T) {
	m := NewMap(2, 2)
	m.Set(IVec2{X: 5, Y: 5}, Tile{Kind: TileWall})
	assert.Equal(t, TileFloor, m.At(IVec2{X: 0, Y: 0}).Kind)
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := NewMap(2, 2)
	clone := m.Clone()
	clone.Set(IVec2{X: 0, Y: 0}, Tile{Kind: TileWall})
	assert.Equal(t, TileFloor, m.At(IVec2{X: 0, Y: 0}).Kind)
	assert.Equal(t, TileWall, clone.At(IVec2{X: 0, Y: 0}).Kind)
}

func TestTilePassable(t *testing.T) {
	assert.True(t, Tile{Kind: TileFloor}.Passable())
	assert.True(t, Tile{Kind: TileObjectFlag}.Passable())
	assert.False(t, Tile{Kind: TileWall}.Passable())
	assert.False(t, Tile{Kind: TileBot}.Passable())
}
