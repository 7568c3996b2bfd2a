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

import "errors"

// World-level errors (spec.md §7 tier 2): surfaced to the caller of the
// affected Handle method. Wrapped with fmt.Errorf("%w: ...") at the call
// site so callers can still errors.Is against the sentinel.
var (
	ErrClosed          = errors.New("world: handle is closed")
	ErrQueueFull        = errors.New("world: queued-bot capacity exhausted")
	ErrBotTooLarge      = errors.New("world: firmware image exceeds ram size")
	ErrBotNotFound      = errors.New("world: bot not found")
	ErrPersistence      = errors.New("world: persistence failure")
	ErrCorruptWorldFile = errors.New("world: corrupt world file")
)
