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
	lru "github.com/hashicorp/golang-lru"

	"github.com/kartoffels/kartoffels/internal/ids"
)

// deadRetention bounds how many DeadBot entries the pool holds at once, so a
// world that kills bots faster than clients observe snapshots doesn't grow
// the dead set without bound (spec.md §3.6 "a dead bot's final event log and
// serial output must survive at least one snapshot cycle").
const deadRetention = 64

// deadPool retains recently-killed bots for exactly long enough that their
// final state is visible in the snapshot immediately following their death,
// then evicts oldest-first.
type deadPool struct {
	cache *lru.Cache
}

func newDeadPool() *deadPool {
	c, err := lru.New(deadRetention)
	if err != nil {
		panic(err)
	}
	return &deadPool{cache: c}
}

// Put records a freshly-dead bot, evicting the oldest retained entry if the
// pool is full.
func (p *deadPool) Put(b *DeadBot) {
	p.cache.Add(b.Id, b)
}

// Get returns the retained DeadBot for id, if still present.
func (p *deadPool) Get(id ids.BotId) (*DeadBot, bool) {
	v, ok := p.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*DeadBot), true
}

// All returns every retained DeadBot, in no particular order.
func (p *deadPool) All() []*DeadBot {
	out := make([]*DeadBot, 0, p.cache.Len())
	for _, k := range p.cache.Keys() {
		if v, ok := p.cache.Peek(k); ok {
			out = append(out, v.(*DeadBot))
		}
	}
	return out
}

// Remove drops id from the pool once it has been swept for good (spec.md
// §4.3 step 5).
func (p *deadPool) Remove(id ids.BotId) {
	p.cache.Remove(id)
}
