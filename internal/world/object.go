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

import "github.com/kartoffels/kartoffels/internal/ids"

// ObjectKind identifies what an Object represents on the map.
type ObjectKind uint8

const (
	ObjectFlag ObjectKind = iota
	ObjectCrate
)

// Object is an item on the map; Pos is nil while held or not yet placed
// (spec.md §3.4).
type Object struct {
	Id   ids.ObjectId
	Kind ObjectKind
	Pos  *IVec2
}
