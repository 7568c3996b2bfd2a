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
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/kartoffels/kartoffels/internal/ids"
)

// LifeRecord is one incarnation of a bot (spec.md §3.4).
type LifeRecord struct {
	BornAt time.Time
	DiedAt time.Time
	Age    uint64
	Score  uint64
}

// Lives tracks the last MaxPerBot incarnations of every bot the world has
// ever seen, capped overall by an LRU eviction policy so a world that churns
// through many distinct bot ids over a long run does not grow unbounded
// (spec.md §5 "resource limits", §8 "lives.len() <= MAX_LIVES_PER_BOT").
type Lives struct {
	cache     *lru.Cache
	maxPerBot int
}

// NewLives returns a Lives tracker retaining history for at most maxBots
// distinct bot ids, each capped at maxPerBot incarnations.
func NewLives(maxBots, maxPerBot int) *Lives {
	c, err := lru.New(maxBots)
	if err != nil {
		// Only returns an error for a non-positive size, which callers never
		// pass (spec.md's MAX_LIVES_PER_BOT and world capacity are always
		// positive); a negative/zero size here is a configuration bug.
		panic(err)
	}
	return &Lives{cache: c, maxPerBot: maxPerBot}
}

// Record appends rec to id's history, evicting the oldest entry first once
// maxPerBot is reached.
func (l *Lives) Record(id ids.BotId, rec LifeRecord) {
	var history []LifeRecord
	if v, ok := l.cache.Get(id); ok {
		history = v.([]LifeRecord)
	}
	history = append(history, rec)
	if len(history) > l.maxPerBot {
		history = history[len(history)-l.maxPerBot:]
	}
	l.cache.Add(id, history)
}

// Get returns id's recorded incarnations, oldest first.
func (l *Lives) Get(id ids.BotId) []LifeRecord {
	v, ok := l.cache.Get(id)
	if !ok {
		return nil
	}
	return v.([]LifeRecord)
}
