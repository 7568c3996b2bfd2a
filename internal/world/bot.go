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

	"github.com/kartoffels/kartoffels/internal/ids"
	"github.com/kartoffels/kartoffels/internal/peripherals"
	"github.com/kartoffels/kartoffels/internal/vm"
)

// AliveBot owns a running Cpu, its peripheral bus, serial log, event log,
// and age/score bookkeeping (spec.md §3.4).
type AliveBot struct {
	Id    ids.BotId
	Pos   IVec2
	Dir   peripherals.Direction
	Cpu   *vm.Cpu
	Bus   *peripherals.Bus
	Age   uint64
	Score uint64

	Src      []byte
	Events   []string
	Serial   []byte
	Requeued int

	BornAt time.Time
}

// DeadBot is retained briefly so its final event log can be surfaced in the
// next snapshot before it is swept (spec.md §3.4, §3.6). Src is kept so
// restart_bot can re-queue the same firmware the bot died running.
type DeadBot struct {
	Id       ids.BotId
	Src      []byte
	Events   []string
	Serial   []byte
	DiedAt   time.Time
	Age      uint64
	Score    uint64
	Requeued int
	Surfaced bool
}

// QueuedBot is waiting for a spawn slot to open (spec.md §3.4).
type QueuedBot struct {
	Id        ids.BotId
	Src       []byte
	Place     *IVec2 // nil: world chooses a spawn tile
	Requeued  int
}
