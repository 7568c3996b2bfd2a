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

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/kartoffels/kartoffels/internal/ids"
)

// worldFileMagic/worldFileVersion identify a persisted world file so a
// corrupt or foreign file is rejected rather than partially decoded
// (spec.md §6.2).
const (
	worldFileMagic   = "KRTFL\x00"
	worldFileVersion = 1
)

// record is the durable representation of one world (spec.md §6.2): its id,
// name, map, spawn point, policy and objects. Bots (alive, dead or queued),
// scores, lives and the clock are not stored, so a World built from a
// record starts with no bots. Load returns the map, spawn and policy as a
// Config; it does not restore the objects.
type record struct {
	Id      ids.WorldId
	Name    string
	Width   int
	Height  int
	Tiles   []Tile
	Spawn   IVec2
	Policy  Policy
	Objects []*Object
}

// Store persists worlds into a single leveldb database under dir, one key
// per world id, snappy-compressed (spec.md §6.2, grounded on the teacher's
// use of goleveldb + golang/snappy for its own chain database).
type Store struct {
	db *leveldb.DB
}

// OpenStore opens (creating if absent) the world-file database at
// <dir>/worlds.ldb.
func OpenStore(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(filepath.Join(dir, "worlds.ldb"), &opt.Options{
		Compression: opt.SnappyCompression,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func dbKey(id ids.WorldId) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], uint64(id))
	return k[:]
}

// Save writes w's persisted fields to the store, overwriting any prior
// record for the same id.
func (s *Store) Save(w *World) error {
	rec := record{
		Id:      w.Id,
		Name:    w.Name,
		Width:   w.m.Width,
		Height:  w.m.Height,
		Tiles:   w.m.Tiles,
		Spawn:   w.spawn,
		Policy:  w.policy,
		Objects: w.objects,
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	buf := make([]byte, 0, len(worldFileMagic)+1+len(body))
	buf = append(buf, worldFileMagic...)
	buf = append(buf, worldFileVersion)
	buf = append(buf, body...)

	if err := s.db.Put(dbKey(w.Id), snappy.Encode(nil, buf), nil); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Load reads and validates the persisted record for id, returning a Config
// suitable for passing to New.
func (s *Store) Load(id ids.WorldId) (Config, error) {
	raw, err := s.db.Get(dbKey(id), nil)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	buf, err := snappy.Decode(nil, raw)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrCorruptWorldFile, err)
	}
	if len(buf) < len(worldFileMagic)+1 || string(buf[:len(worldFileMagic)]) != worldFileMagic {
		return Config{}, fmt.Errorf("%w: bad magic", ErrCorruptWorldFile)
	}
	if buf[len(worldFileMagic)] != worldFileVersion {
		return Config{}, fmt.Errorf("%w: unsupported version %d", ErrCorruptWorldFile, buf[len(worldFileMagic)])
	}

	var rec record
	if err := json.Unmarshal(buf[len(worldFileMagic)+1:], &rec); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrCorruptWorldFile, err)
	}

	m := &Map{Width: rec.Width, Height: rec.Height, Tiles: rec.Tiles}
	return Config{
		Id:     rec.Id,
		Name:   rec.Name,
		Map:    m,
		Spawn:  rec.Spawn,
		Policy: rec.Policy,
	}, nil
}

// Delete removes a persisted world (spec.md §4.6 "delete").
func (s *Store) Delete(id ids.WorldId) error {
	if err := s.db.Delete(dbKey(id), nil); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
