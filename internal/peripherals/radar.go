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

// Radar implements the scan-request / busy-flag / result-window contract
// (spec.md §4.2, §6.1): register 0 is the scan-size command (3, 5, or 7,
// for a 3x3/5x5/7x7 window) and doubles as the busy flag on read; register
// 4 reports how many result bytes are ready; offsets 8.. hold the scanned
// tile kinds, four bytes packed per word.
type Radar struct {
	busy    bool
	pending bool
	size    uint32
	result  []byte
}

func (r *Radar) Load(offset uint32) (uint32, error) {
	switch {
	case offset == 0:
		if r.busy {
			return 1, nil
		}
		return 0, nil
	case offset == 4:
		return uint32(len(r.result)), nil
	default:
		idx := int(offset-8) / 4
		if idx < 0 || idx*4 >= len(r.result) {
			return 0, nil
		}
		var word uint32
		for i := 0; i < 4 && idx*4+i < len(r.result); i++ {
			word |= uint32(r.result[idx*4+i]) << (8 * i)
		}
		return word, nil
	}
}

func (r *Radar) Store(offset uint32, value uint32) error {
	if offset != 0 || r.busy {
		return nil
	}
	switch value {
	case 3, 5, 7:
		r.busy = true
		r.pending = true
		r.size = value
		r.result = nil
	}
	return nil
}

// TakeScanRequest returns the requested window size and clears the pending
// flag, or ok=false if no scan is outstanding.
func (r *Radar) TakeScanRequest() (size uint32, ok bool) {
	if !r.pending {
		return 0, false
	}
	r.pending = false
	return r.size, true
}

// SetResult publishes the scanned tile kinds and clears the busy flag,
// making the result visible to the bot's next poll of register 0.
func (r *Radar) SetResult(data []byte) {
	r.result = data
	r.busy = false
}

func (r *Radar) Tick() {}
