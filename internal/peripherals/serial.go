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

// serialBufferCap bounds the ring buffer so a firmware that writes in a
// tight loop cannot grow a bot's serial log without bound.
const serialBufferCap = 4096

// Serial is a write-only-from-the-bot ring buffer of bytes, surfaced to
// observers (spec.md §6.1). Register 0 is the write port (low byte of the
// stored word); register 4 reads back the number of bytes currently
// buffered.
type Serial struct {
	buf []byte
}

func (s *Serial) Load(offset uint32) (uint32, error) {
	if offset == 4 {
		return uint32(len(s.buf)), nil
	}
	return 0, nil
}

func (s *Serial) Store(offset uint32, value uint32) error {
	if offset != 0 {
		return nil
	}
	s.buf = append(s.buf, byte(value))
	if len(s.buf) > serialBufferCap {
		s.buf = s.buf[len(s.buf)-serialBufferCap:]
	}
	return nil
}

// Drain returns and clears everything buffered so far, for the world to
// surface to observers each tick.
func (s *Serial) Drain() []byte {
	out := s.buf
	s.buf = nil
	return out
}
