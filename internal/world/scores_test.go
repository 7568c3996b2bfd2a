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

func TestScoresAccumulateAcrossIncarnations(t *testing.T) {
	s := NewScores()
	id := ids.BotId(7)
	s.Add(id, 3)
	s.Add(id, 4) // a respawned life still credits the same id's running total
	assert.Equal(t, uint64(7), s.Get(id))
}

func TestScoresForgetClearsTotal(t *testing.T) {
	s := NewScores()
	id := ids.BotId(1)
	s.Add(id, 5)
	s.Forget(id)
	assert.Equal(t, uint64(0), s.Get(id))
}
