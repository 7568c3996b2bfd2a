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

// Battery is a read-only register exposing remaining charge, 0-100
// (spec.md §6.1: "analogous read ... windows").
type Battery struct {
	Level uint32
}

func (b *Battery) Load(offset uint32) (uint32, error) {
	if offset != 0 {
		return 0, nil
	}
	return b.Level, nil
}

func (b *Battery) Store(uint32, uint32) error {
	return nil // read-only
}
