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

package peripherals

const armCooldownTicks = 8

// Arm exposes a single strike command register plus a busy/cooldown
// register (spec.md §4.3). The world resolves a strike against the facing
// tile, collecting any object there; a bot on that tile is not affected.
// Arm itself only tracks the request and its cooldown.
type Arm struct {
	cooldown uint32
	queued   bool
}

func (a *Arm) Load(offset uint32) (uint32, error) {
	if offset == 0 {
		return a.cooldown, nil
	}
	return 0, nil
}

func (a *Arm) Store(offset uint32, value uint32) error {
	if offset != 4 || value == 0 || a.cooldown != 0 {
		return nil
	}
	a.queued = true
	a.cooldown = armCooldownTicks
	return nil
}

// TakeStrike reports whether a strike was requested this tick, clearing the
// request.
func (a *Arm) TakeStrike() bool {
	if a.cooldown != armCooldownTicks || !a.queued {
		return false
	}
	a.queued = false
	return true
}

func (a *Arm) Tick() {
	if a.cooldown > 0 {
		a.cooldown--
	}
}
