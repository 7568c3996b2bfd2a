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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kartoffels/kartoffels/internal/ids"
)

func TestLivesCapsPerBotHistory(t *testing.T) {
	l := NewLives(8, 3)
	id := ids.BotId(1)
	base := time.Now()
	for i := 0; i < 5; i++ {
		l.Record(id, LifeRecord{BornAt: base, Age: uint64(i)})
	}
	history := l.Get(id)
	assert.Len(t, history, 3)
	// oldest two incarnations (age 0, 1) were evicted; the most recent three remain.
	assert.Equal(t, []uint64{2, 3, 4}, []uint64{history[0].Age, history[1].Age, history[2].Age})
}

func TestLivesUnknownBotReturnsNil(t *testing.T) {
	l := NewLives(4, 4)
	assert.Nil(t, l.Get(ids.BotId(99)))
}

func TestLivesEvictsLeastRecentlyUsedBot(t *testing.T) {
	l := NewLives(2, 4)
	l.Record(ids.BotId(1), LifeRecord{Age: 1})
	l.Record(ids.BotId(2), LifeRecord{Age: 1})
	l.Record(ids.BotId(3), LifeRecord{Age: 1}) // evicts bot 1, the LRU entry

	assert.Nil(t, l.Get(ids.BotId(1)))
	assert.NotNil(t, l.Get(ids.BotId(2)))
	assert.NotNil(t, l.Get(ids.BotId(3)))
}
