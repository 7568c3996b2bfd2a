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

import "github.com/kartoffels/kartoffels/internal/ids"

// Scores accumulates total score per bot id across all of that id's
// incarnations, surviving bot death and respawn (spec.md §3.4 "score is
// keyed by bot id, not by life").
type Scores struct {
	byBot map[ids.BotId]uint64
}

// NewScores returns an empty score table.
func NewScores() *Scores {
	return &Scores{byBot: make(map[ids.BotId]uint64)}
}

// Add credits delta points to id's running total.
func (s *Scores) Add(id ids.BotId, delta uint64) {
	s.byBot[id] += delta
}

// Get returns id's running total, 0 if id has never scored.
func (s *Scores) Get(id ids.BotId) uint64 {
	return s.byBot[id]
}

// Forget drops id's score. World itself never calls it: destroyed and dead
// bots keep their score.
func (s *Scores) Forget(id ids.BotId) {
	delete(s.byBot, id)
}
