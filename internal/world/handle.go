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
	"context"
	"sync/atomic"

	"github.com/kartoffels/kartoffels/internal/ids"
)

// Handle is the external, clonable facade onto a running World (spec.md
// §4.5). Every method enqueues a command onto the World's single-consumer
// queue and waits for the tick loop to process it, except Snapshots, Name,
// and Id, which are lock-free reads of already-published state. Handle is
// safe to share across goroutines and to clone cheaply: clones share the
// same World and a single refcount, the last of which tears the World down
// (spec.md §4.5 "on_last_drop").
type Handle struct {
	w      *World
	refs   *int32
	closed *int32
}

// NewHandle wraps w in a Handle with a refcount of 1 and starts w's tick
// loop on a new goroutine.
func NewHandle(w *World) *Handle {
	refs := int32(1)
	closed := int32(0)
	go w.Run()
	return &Handle{w: w, refs: &refs, closed: &closed}
}

// Clone returns a second Handle onto the same World, incrementing the
// shared refcount.
func (h *Handle) Clone() *Handle {
	atomic.AddInt32(h.refs, 1)
	return &Handle{w: h.w, refs: h.refs, closed: h.closed}
}

// Close drops this Handle's reference; once the last clone is closed, the
// World is asked to shut down (spec.md §4.5 "on_last_drop").
func (h *Handle) Close() {
	if atomic.AddInt32(h.refs, -1) > 0 {
		return
	}
	if !atomic.CompareAndSwapInt32(h.closed, 0, 1) {
		return
	}
	reply := make(chan struct{})
	if h.w.enqueue(cmdShutdown{reply: reply}) {
		<-reply
	}
}

func (h *Handle) Id() ids.WorldId { return h.w.Id }
func (h *Handle) Name() string    { return h.w.Name }

// Snapshots returns a channel that always holds the most recently published
// Snapshot (spec.md §4.4, §4.5). Call Unsubscribe when done.
func (h *Handle) Snapshots() chan *Snapshot {
	return h.w.snapshotter.Subscribe()
}

// Unsubscribe detaches a channel returned by Snapshots.
func (h *Handle) Unsubscribe(ch chan *Snapshot) {
	h.w.snapshotter.Unsubscribe(ch)
}

// Latest returns the most recently published Snapshot without subscribing.
func (h *Handle) Latest() *Snapshot {
	return h.w.snapshotter.Latest()
}

func (h *Handle) Pause(ctx context.Context) error {
	reply := make(chan struct{})
	return h.send(ctx, cmdPause{reply: reply}, reply)
}

func (h *Handle) Resume(ctx context.Context) error {
	reply := make(chan struct{})
	return h.send(ctx, cmdResume{reply: reply}, reply)
}

func (h *Handle) SetMap(ctx context.Context, m *Map) error {
	reply := make(chan struct{})
	return h.send(ctx, cmdSetMap{m: m, reply: reply}, reply)
}

func (h *Handle) SetSpawn(ctx context.Context, pos IVec2) error {
	reply := make(chan struct{})
	return h.send(ctx, cmdSetSpawn{pos: pos, reply: reply}, reply)
}

// CreateBot enqueues src as a new queued bot and returns its assigned id
// once the tick loop has validated and accepted it (spec.md §4.5
// "create_bot").
func (h *Handle) CreateBot(ctx context.Context, src []byte, place *IVec2) (ids.BotId, error) {
	reply := make(chan createBotResult, 1)
	if !h.w.enqueue(cmdCreateBot{src: src, place: place, reply: reply}) {
		return 0, ErrClosed
	}
	select {
	case r := <-reply:
		return r.id, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (h *Handle) DestroyBot(ctx context.Context, id ids.BotId) error {
	reply := make(chan error, 1)
	if !h.w.enqueue(cmdDestroyBot{id: id, reply: reply}) {
		return ErrClosed
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handle) RestartBot(ctx context.Context, id ids.BotId) error {
	reply := make(chan error, 1)
	if !h.w.enqueue(cmdRestartBot{id: id, reply: reply}) {
		return ErrClosed
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// send is the shared implementation for the close-only-reply commands.
func (h *Handle) send(ctx context.Context, cmd command, reply chan struct{}) error {
	if !h.w.enqueue(cmd) {
		return ErrClosed
	}
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
