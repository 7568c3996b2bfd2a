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
	"github.com/stretchr/testify/require"

	"github.com/kartoffels/kartoffels/internal/ids"
	"github.com/kartoffels/kartoffels/internal/vm"
)

func testWorld(t *testing.T) *World {
	t.Helper()
	return New(Config{
		Id:     ids.WorldId(1),
		Name:   "test",
		Map:    NewMap(8, 8),
		Spawn:  IVec2{X: 4, Y: 4},
		Policy: Policy{MaxAliveBots: 4, MaxQueuedBots: 4, TickBudgetSteps: 8, AutoRespawn: false},
		ISA:    vm.RV64,
		IdSrc:  ids.NewMonotonic(),
	})
}

func TestCreateBotRejectsOversizedFirmware(t *testing.T) {
	w := testWorld(t)
	_, err := w.createBot(make([]byte, vm.DefaultRamSize+1), nil)
	assert.ErrorIs(t, err, ErrBotTooLarge)
}

func TestCreateBotRejectsWhenQueueFull(t *testing.T) {
	w := testWorld(t)
	for i := 0; i < w.policy.MaxQueuedBots; i++ {
		_, err := w.createBot(nil, nil)
		require.NoError(t, err)
	}
	_, err := w.createBot(nil, nil)
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestTickPromotesQueuedBotToAlive(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, nil)
	require.NoError(t, err)

	w.tick()

	_, alive := w.alive[id]
	assert.True(t, alive)
	assert.Empty(t, w.queued)
}

func TestTickKillsBotOnIllegalInstruction(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, nil) // zeroed RAM decodes as an illegal instruction
	require.NoError(t, err)

	w.tick() // promote
	w.tick() // run: faults immediately

	_, alive := w.alive[id]
	assert.False(t, alive)
	dead, ok := w.dead.Get(id)
	require.True(t, ok)
	assert.Contains(t, dead.Events[len(dead.Events)-1], "fault")
}

func TestTickAutoRespawnsOnDeath(t *testing.T) {
	w := testWorld(t)
	w.policy.AutoRespawn = true
	_, err := w.createBot(nil, nil)
	require.NoError(t, err)

	w.tick() // promote
	w.tick() // faults and dies; auto-respawn re-queues and immediately reclaims the freed slot

	assert.Empty(t, w.queued)
	assert.Len(t, w.alive, 1)
}

func TestResolveEffectsStepsBotForward(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, nil)
	require.NoError(t, err)
	w.tick() // promote

	b := w.alive[id]
	start := b.Pos
	require.NoError(t, b.Bus.Motor.Store(4, 1)) // request a step

	w.resolveEffects()

	dx, dy := b.Dir.Delta()
	assert.Equal(t, IVec2{X: start.X + dx, Y: start.Y + dy}, b.Pos)
}

func TestResolveEffectsBlocksMovementIntoWall(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, &IVec2{X: 0, Y: 0})
	require.NoError(t, err)
	w.tick() // promote at (0,0), facing North by default

	b := w.alive[id]
	require.NoError(t, b.Bus.Motor.Store(4, 1))

	w.resolveEffects() // North from (0,0) is out of bounds -> wall

	assert.Equal(t, IVec2{X: 0, Y: 0}, b.Pos)
}

func TestResolveEffectsTurnUpdatesCompass(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, nil)
	require.NoError(t, err)
	w.tick()

	b := w.alive[id]
	before := b.Dir
	require.NoError(t, b.Bus.Motor.Store(12, 1)) // turn right

	w.resolveEffects()

	assert.Equal(t, before.Turn(true), b.Dir)
	assert.Equal(t, b.Dir, b.Bus.Compass.Heading)
}

func TestDestroyBotRemovesAliveBot(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, nil)
	require.NoError(t, err)
	w.tick()

	require.NoError(t, w.destroyBot(id))
	_, alive := w.alive[id]
	assert.False(t, alive)
}

func TestDestroyBotRemovesQueuedBot(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, nil)
	require.NoError(t, err)

	require.NoError(t, w.destroyBot(id))
	assert.Empty(t, w.queued)
}

func TestDestroyBotUnknownIdErrors(t *testing.T) {
	w := testWorld(t)
	assert.ErrorIs(t, w.destroyBot(ids.BotId(999)), ErrBotNotFound)
}

func TestRestartBotReusesOriginalFirmwareAndClearsDeadEntry(t *testing.T) {
	w := testWorld(t)
	src := make([]byte, 64)
	src[0] = 0xab
	id, err := w.createBot(src, nil)
	require.NoError(t, err)

	w.tick() // promote
	w.tick() // first word 0x000000ab is an illegal opcode; faults and dies

	_, ok := w.dead.Get(id)
	require.True(t, ok)

	require.NoError(t, w.restartBot(id))

	_, stillDead := w.dead.Get(id)
	assert.False(t, stillDead, "restart removes the bot from the dead pool")
	require.Len(t, w.queued, 1)
	assert.Equal(t, src, w.queued[0].Src)

	w.tick() // re-promote

	b, alive := w.alive[id]
	require.True(t, alive)
	assert.Equal(t, src, b.Src)
}

func TestRestartBotUnknownIdErrors(t *testing.T) {
	w := testWorld(t)
	assert.ErrorIs(t, w.restartBot(ids.BotId(999)), ErrBotNotFound)
}

func TestAdvanceBotsDrainsSerialOutput(t *testing.T) {
	w := testWorld(t)
	id, err := w.createBot(nil, nil)
	require.NoError(t, err)
	w.tick() // promote

	b := w.alive[id]
	require.NoError(t, b.Bus.Serial.Store(0, 'h'))
	require.NoError(t, b.Bus.Serial.Store(0, 'i'))

	w.advanceBots()

	assert.Equal(t, []byte("hi"), b.Serial)
}

func TestPublishIncrementsVersionAndRanking(t *testing.T) {
	w := testWorld(t)
	_, err := w.createBot(nil, nil)
	require.NoError(t, err)
	w.tick()

	snap := w.snapshotter.Latest()
	require.NotNil(t, snap)
	assert.Equal(t, uint64(1), snap.Version)
	assert.Len(t, snap.Ranking, 1)
}
