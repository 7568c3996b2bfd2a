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
	"sort"

	"github.com/kartoffels/kartoffels/internal/ids"
)

// Snapshot is an immutable, versioned view of a world at one tick, the unit
// published by the Snapshotter and consumed by every external reader
// (spec.md §4.4). Readers never see a Snapshot being mutated; the tick loop
// builds a fresh one each publish.
type Snapshot struct {
	Version uint64
	Tick    uint64

	// Map is the raw tile grid, without any per-tick bot overlay.
	Map *Map

	// Rendered is Map with alive bots stamped onto their current tiles, the
	// view external clients actually read (spec.md §4.4 "bot-rendered map
	// overlay").
	Rendered *Map

	Alive  []*AliveBot
	Dead   []*DeadBot
	Queued []*QueuedBot

	Objects []*Object

	ClockMode ClockMode

	// Ranking is Alive sorted by (Reverse(score), Reverse(age), id), the
	// order leaderboards and the admin surface display (spec.md §4.4).
	Ranking []ids.BotId
}

// buildRanking sorts alive by descending score, then descending age, then
// ascending id as the final deterministic tie-break (spec.md §4.4, §5).
func buildRanking(alive []*AliveBot) []ids.BotId {
	sorted := make([]*AliveBot, len(alive))
	copy(sorted, alive)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Age != b.Age {
			return a.Age > b.Age
		}
		return a.Id < b.Id
	})
	out := make([]ids.BotId, len(sorted))
	for i, b := range sorted {
		out[i] = b.Id
	}
	return out
}

// newSnapshot assembles a Snapshot from the live tick-loop state. The
// returned value shares no mutable state with the loop: Map/Rendered are
// cloned and Alive/Dead/Queued/Objects are fresh slices of pointers the loop
// no longer mutates in place once published (each tick replaces a bot's
// entry rather than editing a previously-published one).
func newSnapshot(version, tick uint64, m *Map, alive []*AliveBot, dead []*DeadBot, queued []*QueuedBot, objects []*Object, mode ClockMode) *Snapshot {
	rendered := m.Clone()
	for _, b := range alive {
		kind := TileBot
		rendered.Set(b.Pos, Tile{Kind: kind, Meta: encodeBotMeta(b.Id)})
	}
	for _, o := range objects {
		if o.Pos == nil {
			continue
		}
		kind := TileObjectFlag
		if o.Kind == ObjectCrate {
			kind = TileObjectCrate
		}
		rendered.Set(*o.Pos, Tile{Kind: kind})
	}
	return &Snapshot{
		Version:   version,
		Tick:      tick,
		Map:       m,
		Rendered:  rendered,
		Alive:     alive,
		Dead:      dead,
		Queued:    queued,
		Objects:   objects,
		ClockMode: mode,
		Ranking:   buildRanking(alive),
	}
}
