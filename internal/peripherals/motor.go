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

// MotorCommand is the move the bot's firmware requested this tick.
type MotorCommand int

const (
	MotorNone MotorCommand = iota
	MotorStep
	MotorTurnLeft
	MotorTurnRight
)

// motorCooldownTicks is how long the motor stays busy after accepting a
// command, rejecting any command that arrives in the meantime (spec.md
// §4.2: "commands that arrive while busy are ignored").
const motorCooldownTicks = 4

// Motor exposes a status register, one command register per action, and a
// cooldown register (spec.md §4.2, §6.1). World.resolveEffects drains
// TakeCommand once per alive bot per tick.
type Motor struct {
	cooldown uint32
	pending  MotorCommand
	taken    bool
}

func (m *Motor) Load(offset uint32) (uint32, error) {
	switch offset {
	case 0: // status: bit0 stepping busy, bit1 turning busy
		if m.cooldown == 0 {
			return 0, nil
		}
		if m.pending == MotorStep {
			return 1, nil
		}
		return 2, nil
	case 16: // cooldown ticks remaining
		return m.cooldown, nil
	default:
		return 0, nil
	}
}

func (m *Motor) Store(offset uint32, value uint32) error {
	if m.cooldown != 0 {
		return nil // busy: ignore any incoming command
	}
	switch offset {
	case 4:
		if value != 0 {
			m.accept(MotorStep)
		}
	case 8:
		if value != 0 {
			m.accept(MotorTurnLeft)
		}
	case 12:
		if value != 0 {
			m.accept(MotorTurnRight)
		}
	}
	return nil
}

func (m *Motor) accept(cmd MotorCommand) {
	m.pending = cmd
	m.cooldown = motorCooldownTicks
	m.taken = false
}

// TakeCommand returns and clears the command queued this tick, or MotorNone
// if none was queued (or it was already taken, or the motor is still
// cooling down from the last one).
func (m *Motor) TakeCommand() MotorCommand {
	if m.taken || m.cooldown != motorCooldownTicks {
		return MotorNone
	}
	m.taken = true
	return m.pending
}

// Tick decrements the cooldown once per world tick.
func (m *Motor) Tick() {
	if m.cooldown > 0 {
		m.cooldown--
	}
}
