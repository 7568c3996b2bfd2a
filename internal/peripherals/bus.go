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

// Package peripherals implements the Mmio adapters a bot's firmware talks to
// (spec.md §4.2, §6.1): motor, radar, serial, timer, battery, compass, and
// arm, each owning a disjoint word-addressed register window, composed by a
// Bus into the single vm.Mmio the world hands a bot's Cpu for one tick.
package peripherals

import (
	"fmt"

	"github.com/kartoffels/kartoffels/internal/vm"
)

// windowSize is the number of bytes reserved per peripheral in the MMIO
// address space. Peripherals use only a handful of word registers, but
// leaving headroom between windows keeps the layout stable if a register is
// added later (spec.md §4.2 lists the registers as per-peripheral, not a
// single flat table, so windows rather than a packed struct is the
// grounded shape).
const windowSize = 0x40

// Windows, in MMIO-offset order. Firmware addresses them as
// vm.MmioBase + offset.
const (
	OffsetTimer    = 0 * windowSize
	OffsetMotor    = 1 * windowSize
	OffsetRadar    = 2 * windowSize
	OffsetSerial   = 3 * windowSize
	OffsetBattery  = 4 * windowSize
	OffsetCompass  = 5 * windowSize
	OffsetArm      = 6 * windowSize
)

// Bus composes the fixed set of peripherals a bot has into one vm.Mmio,
// dispatching each word access to whichever window it falls inside.
type Bus struct {
	Timer   *Timer
	Motor   *Motor
	Radar   *Radar
	Serial  *Serial
	Battery *Battery
	Compass *Compass
	Arm     *Arm
}

// NewBus wires up a fresh peripheral set for a just-spawned bot.
func NewBus(seed uint64, heading Direction) *Bus {
	return &Bus{
		Timer:   NewTimer(seed),
		Motor:   &Motor{},
		Radar:   &Radar{},
		Serial:  &Serial{},
		Battery: &Battery{Level: 100},
		Compass: &Compass{Heading: heading},
		Arm:     &Arm{},
	}
}

var _ vm.Mmio = (*Bus)(nil)

func (b *Bus) Load(offset uint32) (uint32, error) {
	win, rel := offset/windowSize*windowSize, offset%windowSize
	switch win {
	case OffsetTimer:
		return b.Timer.Load(rel)
	case OffsetMotor:
		return b.Motor.Load(rel)
	case OffsetRadar:
		return b.Radar.Load(rel)
	case OffsetSerial:
		return b.Serial.Load(rel)
	case OffsetBattery:
		return b.Battery.Load(rel)
	case OffsetCompass:
		return b.Compass.Load(rel)
	case OffsetArm:
		return b.Arm.Load(rel)
	default:
		return 0, fmt.Errorf("%w: offset 0x%x", vm.ErrMmioOutOfBounds, offset)
	}
}

func (b *Bus) Store(offset uint32, value uint32) error {
	win, rel := offset/windowSize*windowSize, offset%windowSize
	switch win {
	case OffsetTimer:
		return b.Timer.Store(rel, value)
	case OffsetMotor:
		return b.Motor.Store(rel, value)
	case OffsetRadar:
		return b.Radar.Store(rel, value)
	case OffsetSerial:
		return b.Serial.Store(rel, value)
	case OffsetBattery:
		return b.Battery.Store(rel, value)
	case OffsetCompass:
		return b.Compass.Store(rel, value)
	case OffsetArm:
		return b.Arm.Store(rel, value)
	default:
		return fmt.Errorf("%w: offset 0x%x", vm.ErrMmioOutOfBounds, offset)
	}
}

// Tick advances every peripheral's internal state machine by one world tick
// (cooldowns, busy flags), called once per alive bot per tick before its Cpu
// is stepped.
func (b *Bus) Tick() {
	b.Timer.Tick()
	b.Motor.Tick()
	b.Radar.Tick()
	b.Arm.Tick()
}
