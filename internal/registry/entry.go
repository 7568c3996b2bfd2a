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
	"github.com/kartoffels/kartoffels/internal/ids"
	"github.com/kartoffels/kartoffels/internal/world"
)

// WorldType distinguishes persisted, named worlds from ephemeral ones
// (spec.md glossary "Public world"/"Private world").
type WorldType int

const (
	Public WorldType = iota
	Private
)

func (t WorldType) String() string {
	if t == Public {
		return "public"
	}
	return "private"
}

// Entry is one row of the registry: a world's identity plus the Handle
// through which it is driven. Entry is immutable once published into a
// snapshot — a Delete or Create produces an entirely new snapshot rather
// than mutating an Entry in place.
type Entry struct {
	Id     ids.WorldId
	Name   string
	Type   WorldType
	Handle *world.Handle
}
