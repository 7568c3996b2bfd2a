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
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/kartoffels/kartoffels/internal/ids"
	"github.com/kartoffels/kartoffels/internal/logging"
	"github.com/kartoffels/kartoffels/internal/world"
)

// DefaultMaxWorlds is the process-wide world capacity (spec.md §5
// "MAX_WORLDS = 128").
const DefaultMaxWorlds = 128

// Worlds is the process-level table of running worlds (spec.md §4.6). Its
// two fields are each held behind an atomic.Pointer: readers (All, Public,
// Get) load a snapshot lock-free; writers (Create, Delete) serialize on
// writeMu, clone the current snapshot, mutate the clone, and swap it in —
// the RCU discipline spec.md §9 calls for in place of a registry-wide lock.
type Worlds struct {
	dir           string
	maxWorlds     int
	idSrc         ids.Source
	log           *logging.Logger
	defaultPolicy world.Policy
	store         *world.Store

	writeMu   sync.Mutex
	entries   atomic.Pointer[map[ids.WorldId]*Entry]
	publicIdx atomic.Pointer[[]*Entry]
}

// New returns an empty registry backed by worldsDir for persistence, capped
// at maxWorlds entries. defaultPolicy is applied to any Create call whose
// cfg.Policy is left at its zero value, which otherwise would produce a
// world that can never promote a queued bot (spec.md §5, §4.6). New opens
// the on-disk world Store rooted at worldsDir up front — every public world
// this registry creates shares it (one database at `<dir>/worlds.ldb`, one
// record per world id); private worlds never touch it.
func New(worldsDir string, maxWorlds int, idSrc ids.Source, log *logging.Logger, defaultPolicy world.Policy) (*Worlds, error) {
	if maxWorlds <= 0 {
		maxWorlds = DefaultMaxWorlds
	}
	if log == nil {
		log = logging.Root
	}
	if defaultPolicy == (world.Policy{}) {
		defaultPolicy = world.DefaultPolicy()
	}
	store, err := world.OpenStore(worldsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	r := &Worlds{dir: worldsDir, maxWorlds: maxWorlds, idSrc: idSrc, log: log, defaultPolicy: defaultPolicy, store: store}
	empty := map[ids.WorldId]*Entry{}
	r.entries.Store(&empty)
	emptyIdx := []*Entry{}
	r.publicIdx.Store(&emptyIdx)
	return r, nil
}

// All returns every registered world (public and private), sorted by id for
// a stable listing order.
func (r *Worlds) All() []*Entry {
	m := *r.entries.Load()
	out := make([]*Entry, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

// Public returns every public world, sorted by name — precisely the slice
// publicIdx already holds, so this is a lock-free pointer load plus a copy
// (spec.md §8 "public_idx is sorted by name and equals the public subset of
// entries").
func (r *Worlds) Public() []*Entry {
	idx := *r.publicIdx.Load()
	out := make([]*Entry, len(idx))
	copy(out, idx)
	return out
}

// Get looks up a single world by id.
func (r *Worlds) Get(id ids.WorldId) (*Entry, bool) {
	m := *r.entries.Load()
	e, ok := m[id]
	return e, ok
}

// Create allocates a world, spawns its tick loop, and publishes a new
// registry snapshot including it (spec.md §4.6's allocate/configure/spawn/
// reindex/attach sequence). Public worlds must have a name unique among
// existing public worlds; capacity is enforced against the combined
// public+private count.
func (r *Worlds) Create(ty WorldType, name string, cfg world.Config) (*world.Handle, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	entries := *r.entries.Load()
	if len(entries) >= r.maxWorlds {
		return nil, ErrCapacityExhausted
	}
	if ty == Public {
		for _, e := range entries {
			if e.Type == Public && e.Name == name {
				return nil, ErrNameConflict
			}
		}
	}

	// allocate
	id := r.idSrc.NextWorld()

	// configure
	cfg.Id = id
	cfg.Name = name
	if cfg.IdSrc == nil {
		cfg.IdSrc = r.idSrc
	}
	if cfg.Log == nil {
		cfg.Log = r.log
	}
	if cfg.Policy == (world.Policy{}) {
		cfg.Policy = r.defaultPolicy
	}
	if ty == Public {
		cfg.Store = r.store
	}

	// spawn
	w := world.New(cfg)
	h := world.NewHandle(w)
	entry := &Entry{Id: id, Name: name, Type: ty, Handle: h}

	// reindex
	newEntries := cloneEntries(entries)
	newEntries[id] = entry
	r.entries.Store(&newEntries)
	r.reindexPublicLocked(newEntries)

	// attach on_last_drop: a private world is evicted the moment its tick
	// loop shuts down, which only happens once its last Handle is closed.
	if ty == Private {
		go r.watchPrivate(w, id)
	}

	return h, nil
}

func (r *Worlds) watchPrivate(w *world.World, id ids.WorldId) {
	<-w.Done()
	r.remove(id)
}

// Delete closes id's world and removes it from the registry, regardless of
// type (spec.md §6.3 "delete(dir, id)"). For a public world it also unlinks
// its persisted record from the Store (spec.md §4.6 "Deletion: ... unlink
// the file if public").
func (r *Worlds) Delete(id ids.WorldId) error {
	entry, ok := r.remove(id)
	if !ok {
		return ErrNotFound
	}
	entry.Handle.Close()
	if entry.Type == Public {
		if err := r.store.Delete(id); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}

// remove drops id from the registry snapshot and reports the removed Entry,
// if any. Used by both Delete (explicit admin call) and watchPrivate
// (automatic eviction).
func (r *Worlds) remove(id ids.WorldId) (*Entry, bool) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	entries := *r.entries.Load()
	entry, ok := entries[id]
	if !ok {
		return nil, false
	}
	newEntries := cloneEntries(entries)
	delete(newEntries, id)
	r.entries.Store(&newEntries)
	r.reindexPublicLocked(newEntries)
	return entry, true
}

// Shutdown closes every public world, flushing each via its own Handle.Close
// (spec.md §6.3 "shutdown() — for each public world: flush and close").
// Private worlds are ephemeral by design and are not flushed. Handle.Close
// blocks until the corresponding world has processed its shutdown command
// (and, for public worlds, saved to the Store), so the Store is safe to
// close once every Handle.Close call here has returned.
func (r *Worlds) Shutdown() {
	for _, e := range r.Public() {
		e.Handle.Close()
	}
	if err := r.store.Close(); err != nil {
		r.log.Err().Err(err).Log("failed to close world store")
	}
}

// reindexPublicLocked rebuilds publicIdx from entries; callers must hold
// writeMu.
func (r *Worlds) reindexPublicLocked(entries map[ids.WorldId]*Entry) {
	pub := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type == Public {
			pub = append(pub, e)
		}
	}
	sort.Slice(pub, func(i, j int) bool { return pub[i].Name < pub[j].Name })
	r.publicIdx.Store(&pub)
}

func cloneEntries(m map[ids.WorldId]*Entry) map[ids.WorldId]*Entry {
	out := make(map[ids.WorldId]*Entry, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
