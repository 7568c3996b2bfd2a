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

// MaxLivesPerBot bounds how many incarnations Lives retains for a single bot
// id (spec.md §3.4, §8).
const MaxLivesPerBot = 8

// Policy holds the per-world resource limits enforced by the tick loop and
// Handle, sourced from config.WorldDefaults (or overridden per-world by the
// registry at creation time).
type Policy struct {
	MaxAliveBots    int
	MaxQueuedBots   int
	TickBudgetSteps int
	AutoRespawn     bool
}

// DefaultPolicy returns the conservative defaults used when a world is
// created without explicit overrides.
func DefaultPolicy() Policy {
	return Policy{
		MaxAliveBots:    16,
		MaxQueuedBots:   16,
		TickBudgetSteps: 64_000,
		AutoRespawn:     true,
	}
}
