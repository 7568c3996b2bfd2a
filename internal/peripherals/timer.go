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

// Timer implements the register contract confirmed by
// backend/crates/kartoffel/src/timer.rs: register 0 is read-only (the PRNG
// seed set at (re)spawn; writes are silently ignored), register 1 is
// read-only ticks-since-spawn (writes are silently ignored too).
type Timer struct {
	Seed  uint64
	Ticks uint32
}

func NewTimer(seed uint64) *Timer {
	return &Timer{Seed: seed}
}

func (t *Timer) Load(offset uint32) (uint32, error) {
	switch offset {
	case 0:
		return uint32(t.Seed), nil
	case 4:
		return t.Ticks, nil
	default:
		return 0, nil
	}
}

func (t *Timer) Store(offset uint32, value uint32) error {
	// offsets 0 (seed) and 4 (ticks): read-only, writes ignored.
	return nil
}

func (t *Timer) Tick() {
	t.Ticks++
}
