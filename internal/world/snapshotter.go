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
	"sync"
	"time"
)

// snapshotInterval is the minimum spacing between two publishes in any
// pacing mode but Manual, giving a coalesced rate of ~30Hz (spec.md §4.4)
// regardless of how fast the tick loop itself is actually running.
const snapshotInterval = time.Second / 30

// Snapshotter holds the latest published Snapshot and lets any number of
// readers fetch it without blocking the tick loop. It never buffers a
// backlog of snapshots: a reader that is slow simply observes the newest
// value next time it asks, exactly the "latest-value channel" in spec.md
// §4.4, here implemented as a guarded pointer rather than an actual Go
// channel since multiple concurrent readers must be able to fetch the same
// value without racing each other to drain it.
type Snapshotter struct {
	mu       sync.RWMutex
	current  *Snapshot
	lastSent time.Time

	subs   map[chan *Snapshot]struct{}
	subsMu sync.Mutex
}

// NewSnapshotter returns an empty Snapshotter; Latest returns nil until the
// first Publish.
func NewSnapshotter() *Snapshotter {
	return &Snapshotter{subs: make(map[chan *Snapshot]struct{})}
}

// Latest returns the most recently published Snapshot, or nil if none yet.
func (s *Snapshotter) Latest() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe returns a channel that always holds the most recent Snapshot:
// send is non-blocking and replaces whatever is already buffered, so a slow
// subscriber never backs up the publisher (spec.md §4.4). Unsubscribe must
// be called when the caller is done to release the channel.
func (s *Snapshotter) Subscribe() chan *Snapshot {
	ch := make(chan *Snapshot, 1)
	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()
	if cur := s.Latest(); cur != nil {
		ch <- cur
	}
	return ch
}

// Unsubscribe releases a channel returned by Subscribe.
func (s *Snapshotter) Unsubscribe(ch chan *Snapshot) {
	s.subsMu.Lock()
	delete(s.subs, ch)
	s.subsMu.Unlock()
}

// Publish installs snap as the latest value and fans it out to subscribers,
// unless mode is not Manual and less than snapshotInterval has elapsed since
// the last publish, in which case the publish is coalesced away (spec.md
// §4.4 "coalesced publish, ~30Hz").
func (s *Snapshotter) Publish(snap *Snapshot, mode ClockMode, now time.Time) {
	s.mu.Lock()
	if mode != ClockManual && !s.lastSent.IsZero() && now.Sub(s.lastSent) < snapshotInterval {
		s.mu.Unlock()
		return
	}
	s.current = snap
	s.lastSent = now
	s.mu.Unlock()

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Buffer still held an un-drained value; replace it.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
