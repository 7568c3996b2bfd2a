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

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	w := New(Config{
		Id:     ids.WorldId(42),
		Name:   "persisted",
		Map:    NewMap(5, 5),
		Spawn:  IVec2{X: 2, Y: 2},
		Policy: Policy{MaxAliveBots: 3, MaxQueuedBots: 3, TickBudgetSteps: 10, AutoRespawn: true},
		ISA:    vm.RV64,
		IdSrc:  ids.NewMonotonic(),
	})

	require.NoError(t, store.Save(w))

	cfg, err := store.Load(ids.WorldId(42))
	require.NoError(t, err)
	assert.Equal(t, "persisted", cfg.Name)
	assert.Equal(t, 5, cfg.Map.Width)
	assert.Equal(t, IVec2{X: 2, Y: 2}, cfg.Spawn)
	assert.Equal(t, w.policy, cfg.Policy)
}

func TestStoreLoadUnknownWorldErrors(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(ids.WorldId(999))
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestStoreDeleteThenLoadErrors(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	w := New(Config{Id: ids.WorldId(1), Name: "x", Map: NewMap(2, 2), IdSrc: ids.NewMonotonic()})
	require.NoError(t, store.Save(w))
	require.NoError(t, store.Delete(ids.WorldId(1)))

	_, err = store.Load(ids.WorldId(1))
	assert.Error(t, err)
}
