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

package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoffels/kartoffels/internal/ids"
	"github.com/kartoffels/kartoffels/internal/world"
)

func testCfg(t *testing.T) world.Config {
	t.Helper()
	return world.Config{
		Map:    world.NewMap(4, 4),
		Policy: world.DefaultPolicy(),
	}
}

func TestCreatePublicThenGetAndPublic(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	h, err := r.Create(Public, "arena-one", testCfg(t))
	require.NoError(t, err)
	defer h.Close()

	entry, ok := r.Get(h.Id())
	require.True(t, ok)
	assert.Equal(t, "arena-one", entry.Name)
	assert.Equal(t, Public, entry.Type)

	pub := r.Public()
	require.Len(t, pub, 1)
	assert.Equal(t, "arena-one", pub[0].Name)
}

func TestCreateDuplicatePublicNameConflicts(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	h1, err := r.Create(Public, "dup", testCfg(t))
	require.NoError(t, err)
	defer h1.Close()

	_, err = r.Create(Public, "dup", testCfg(t))
	assert.ErrorIs(t, err, ErrNameConflict)
}

func TestCreatePrivateWorldsCanShareNames(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	h1, err := r.Create(Private, "same", testCfg(t))
	require.NoError(t, err)
	defer h1.Close()

	h2, err := r.Create(Private, "same", testCfg(t))
	require.NoError(t, err)
	defer h2.Close()

	assert.Empty(t, r.Public(), "private worlds never appear in the public index")
	assert.Len(t, r.All(), 2)
}

func TestCreateRejectsAtCapacity(t *testing.T) {
	r, err := New(t.TempDir(), 1, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	h, err := r.Create(Public, "only", testCfg(t))
	require.NoError(t, err)
	defer h.Close()

	_, err = r.Create(Public, "second", testCfg(t))
	assert.ErrorIs(t, err, ErrCapacityExhausted)
}

func TestDeleteUnknownIdErrors(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	assert.ErrorIs(t, r.Delete(ids.WorldId(999)), ErrNotFound)
}

func TestDeleteRemovesFromAllAndPublic(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	h, err := r.Create(Public, "temp", testCfg(t))
	require.NoError(t, err)
	id := h.Id()

	require.NoError(t, r.Delete(id))

	_, ok := r.Get(id)
	assert.False(t, ok)
	assert.Empty(t, r.Public())
}

func TestPrivateWorldAutoEvictsOnLastHandleClose(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	h, err := r.Create(Private, "ephemeral", testCfg(t))
	require.NoError(t, err)
	id := h.Id()

	_, ok := r.Get(id)
	require.True(t, ok)

	h.Close()

	require.Eventually(t, func() bool {
		_, ok := r.Get(id)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestPublicIdxStaysSortedByName(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	names := []string{"charlie", "alpha", "bravo"}
	var handles []*world.Handle
	for _, n := range names {
		h, err := r.Create(Public, n, testCfg(t))
		require.NoError(t, err)
		handles = append(handles, h)
	}
	defer func() {
		for _, h := range handles {
			h.Close()
		}
	}()

	pub := r.Public()
	require.Len(t, pub, 3)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, []string{pub[0].Name, pub[1].Name, pub[2].Name})
}

func TestCreateAppliesRegistryDefaultPolicyWhenUnset(t *testing.T) {
	policy := world.Policy{MaxAliveBots: 3, MaxQueuedBots: 8, TickBudgetSteps: 100, AutoRespawn: true}
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, policy)
	require.NoError(t, err)

	h, err := r.Create(Public, "defaulted", world.Config{Map: world.NewMap(4, 4)})
	require.NoError(t, err)
	defer h.Close()

	for i := 0; i < 4; i++ {
		_, err := h.CreateBot(context.Background(), nil, nil)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		snap := h.Latest()
		return snap != nil && len(snap.Alive) == 3
	}, time.Second, 5*time.Millisecond, "registry default policy caps alive bots at 3")
}

func TestShutdownClosesEveryPublicWorld(t *testing.T) {
	r, err := New(t.TempDir(), 0, ids.NewMonotonic(), nil, world.Policy{})
	require.NoError(t, err)
	h, err := r.Create(Public, "shutdown-me", testCfg(t))
	require.NoError(t, err)
	id := h.Id()

	r.Shutdown()

	require.Eventually(t, func() bool {
		return errors.Is(h.Pause(context.Background()), world.ErrClosed)
	}, time.Second, 5*time.Millisecond, "the world's tick loop stopped accepting commands")

	// Shutdown only closes handles; the entry itself remains until an
	// explicit Delete (spec.md §6.3 "shutdown() — for each public world:
	// flush and close").
	_, ok := r.Get(id)
	assert.True(t, ok)
}
