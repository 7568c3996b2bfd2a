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

// Package ids provides the opaque, sortable 64-bit identifiers shared by the
// world engine and the registry: BotId, WorldId, ObjectId and SessionId.
package ids

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/google/uuid"
)

// BotId identifies a bot across its queued/alive/dead lifecycle.
type BotId uint64

// WorldId identifies a world for the lifetime of the process; a public
// world's persisted record is keyed by it.
type WorldId uint64

// ObjectId identifies a map object (an item dropped or spawned on the grid).
type ObjectId uint64

// SessionId identifies an external (frontend/admin) connection to a world.
type SessionId uint64

// String renders an id as a fixed-width, sortable, printable hex string.
func (id BotId) String() string    { return formatId(uint64(id)) }
func (id WorldId) String() string  { return formatId(uint64(id)) }
func (id ObjectId) String() string { return formatId(uint64(id)) }
func (id SessionId) String() string { return formatId(uint64(id)) }

func formatId(v uint64) string {
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[v&0xf]
		v >>= 4
	}
	return string(buf[:])
}

// Source generates ids. Two implementations exist: a random source for
// production use, and a monotonic counter for tests, so that world
// snapshots and registry listings are reproducible (spec.md §3.1).
type Source interface {
	NextBot() BotId
	NextWorld() WorldId
	NextObject() ObjectId
	NextSession() SessionId
}

// randomSource draws ids from a UUID-backed random generator. Collisions are
// astronomically unlikely and are not otherwise guarded against, matching
// the teacher's use of google/uuid for account/transaction ids.
type randomSource struct{}

// NewRandom returns the production id Source.
func NewRandom() Source { return randomSource{} }

func randomUint64() uint64 {
	u := uuid.New()
	return binary.BigEndian.Uint64(u[:8])
}

func (randomSource) NextBot() BotId         { return BotId(randomUint64()) }
func (randomSource) NextWorld() WorldId     { return WorldId(randomUint64()) }
func (randomSource) NextObject() ObjectId   { return ObjectId(randomUint64()) }
func (randomSource) NextSession() SessionId { return SessionId(randomUint64()) }

// monotonicSource hands out sequential ids starting at 1, for deterministic
// tests (spec.md §3.1).
type monotonicSource struct {
	bots     uint64
	worlds   uint64
	objects  uint64
	sessions uint64
}

// NewMonotonic returns a test-mode id Source.
func NewMonotonic() Source { return &monotonicSource{} }

func (s *monotonicSource) NextBot() BotId {
	return BotId(atomic.AddUint64(&s.bots, 1))
}

func (s *monotonicSource) NextWorld() WorldId {
	return WorldId(atomic.AddUint64(&s.worlds, 1))
}

func (s *monotonicSource) NextObject() ObjectId {
	return ObjectId(atomic.AddUint64(&s.objects, 1))
}

func (s *monotonicSource) NextSession() SessionId {
	return SessionId(atomic.AddUint64(&s.sessions, 1))
}
