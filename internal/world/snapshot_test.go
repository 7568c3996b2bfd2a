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

	"github.com/kartoffels/kartoffels/internal/ids"
)

func TestBuildRankingOrdersByScoreThenAgeThenId(t *testing.T) {
	alive := []*AliveBot{
		{Id: ids.BotId(3), Score: 10, Age: 5},
		{Id: ids.BotId(1), Score: 10, Age: 5},
		{Id: ids.BotId(2), Score: 20, Age: 1},
		{Id: ids.BotId(4), Score: 10, Age: 9},
	}
	ranking := buildRanking(alive)
	assert.Equal(t, []ids.BotId{2, 4, 1, 3}, ranking)
}

func TestNewSnapshotStampsBotsOntoRenderedMap(t *testing.T) {
	m := NewMap(3, 3)
	alive := []*AliveBot{{Id: ids.BotId(1), Pos: IVec2{X: 1, Y: 1}}}
	snap := newSnapshot(1, 1, m, alive, nil, nil, nil, ClockNormal)

	assert.Equal(t, TileFloor, snap.Map.At(IVec2{X: 1, Y: 1}).Kind, "raw map is untouched")
	assert.Equal(t, TileBot, snap.Rendered.At(IVec2{X: 1, Y: 1}).Kind)
	assert.Equal(t, []ids.BotId{1}, snap.Ranking)
}

func TestNewSnapshotStampsPlacedObjects(t *testing.T) {
	m := NewMap(3, 3)
	pos := IVec2{X: 0, Y: 0}
	objects := []*Object{{Id: ids.ObjectId(1), Kind: ObjectFlag, Pos: &pos}, {Id: ids.ObjectId(2), Kind: ObjectCrate}}
	snap := newSnapshot(1, 1, m, nil, nil, nil, objects, ClockNormal)

	assert.Equal(t, TileObjectFlag, snap.Rendered.At(pos).Kind)
}
