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
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set"

	"github.com/kartoffels/kartoffels/internal/ids"
	"github.com/kartoffels/kartoffels/internal/logging"
	"github.com/kartoffels/kartoffels/internal/peripherals"
	"github.com/kartoffels/kartoffels/internal/vm"
)

// tickInterval is the nominal pacing of one simulation step in ClockNormal
// mode (spec.md §4.3).
const tickInterval = 16 * time.Millisecond

// World owns one arena's tick loop. It is single-owner: every mutation of
// its map/bots/objects happens on the goroutine running Run, driven
// exclusively by commands arriving on cmds (spec.md §5 "single-owner tick
// loop, no locks"). External callers only ever talk to a Handle, never to a
// World directly.
type World struct {
	Id   ids.WorldId
	Name string

	ids    ids.Source
	log    *logging.Logger
	policy Policy

	m      *Map
	spawn  IVec2
	alive  map[ids.BotId]*AliveBot
	queued []*QueuedBot
	dead   *deadPool
	objects []*Object

	lives  *Lives
	scores *Scores
	clock  *Clock

	snapshotter *Snapshotter
	version     uint64
	store       *Store

	cmds     chan command
	exitCh   chan struct{}
	paused   bool
	isaMode  vm.ISA
}

// Config bundles the fixed parameters a World is created with (spec.md
// §4.6 "allocate" step). Store is nil for private worlds: only public
// worlds are flushed to a persistence sink on shutdown (spec.md §3.6, §4.5).
type Config struct {
	Id     ids.WorldId
	Name   string
	Map    *Map
	Spawn  IVec2
	Policy Policy
	ISA    vm.ISA
	IdSrc  ids.Source
	Log    *logging.Logger
	Store  *Store
}

// New constructs a World ready to have Run called on it; it does nothing
// until Run starts draining commands.
func New(cfg Config) *World {
	log := cfg.Log
	if log == nil {
		log = logging.Root
	}
	idSrc := cfg.IdSrc
	if idSrc == nil {
		idSrc = ids.NewRandom()
	}
	isa := cfg.ISA
	if isa == 0 {
		isa = vm.RV64
	}
	return &World{
		Id:      cfg.Id,
		Name:    cfg.Name,
		ids:     idSrc,
		log:     log,
		policy:  cfg.Policy,
		m:       cfg.Map,
		spawn:   cfg.Spawn,
		alive:   make(map[ids.BotId]*AliveBot),
		dead:    newDeadPool(),
		lives:   NewLives(1024, MaxLivesPerBot),
		scores:  NewScores(),
		clock:   NewClock(ClockNormal),
		snapshotter: NewSnapshotter(),
		store:   cfg.Store,
		cmds:    make(chan command, 64),
		exitCh:  make(chan struct{}),
		isaMode: isa,
	}
}

// Snapshotter exposes the world's publisher to its Handle.
func (w *World) Snapshotter() *Snapshotter { return w.snapshotter }

// Done returns a channel closed once the tick loop has processed a
// shutdown command, letting the registry evict a private world's entry as
// soon as its last Handle drops (spec.md §3.5 "private worlds are evicted
// when the last external handle drops").
func (w *World) Done() <-chan struct{} { return w.exitCh }

// enqueue sends cmd to the tick loop and blocks until Run accepts it or the
// world has already shut down.
func (w *World) enqueue(cmd command) bool {
	select {
	case <-w.exitCh:
		return false
	default:
	}
	select {
	case w.cmds <- cmd:
		return true
	case <-w.exitCh:
		return false
	}
}

// Run drives the tick loop until a cmdShutdown is processed or exitCh is
// already closed. It is meant to run on its own goroutine for the lifetime
// of the world, mirroring the teacher's single long-lived worker loop.
func (w *World) Run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.exitCh:
			return
		case cmd := <-w.cmds:
			if w.handleCommand(cmd) {
				return
			}
		case <-ticker.C:
			if !w.paused {
				w.tick()
			}
		}
	}
}

// handleCommand applies one command and reports whether the loop should
// stop (true only for cmdShutdown).
func (w *World) handleCommand(cmd command) bool {
	switch c := cmd.(type) {
	case cmdPause:
		w.paused = true
		close(c.reply)
	case cmdResume:
		w.paused = false
		close(c.reply)
	case cmdShutdown:
		w.flush()
		close(w.exitCh)
		close(c.reply)
		return true
	case cmdSetMap:
		w.m = c.m
		close(c.reply)
	case cmdSetSpawn:
		w.spawn = c.pos
		close(c.reply)
	case cmdCreateBot:
		id, err := w.createBot(c.src, c.place)
		c.reply <- createBotResult{id: id, err: err}
	case cmdDestroyBot:
		c.reply <- w.destroyBot(c.id)
	case cmdRestartBot:
		c.reply <- w.restartBot(c.id)
	}
	return false
}

// flush saves w's persisted fields to its Store, if any, before shutdown
// completes (spec.md §4.5 "shutdown flushes pending state to the
// persistence sink before returning"). Private worlds carry a nil Store and
// are never flushed. A save failure is logged, not fatal: the tick loop is
// already on its way out regardless.
func (w *World) flush() {
	if w.store == nil {
		return
	}
	if err := w.store.Save(w); err != nil {
		w.log.Err().Err(err).Str("world", w.Name).Log("failed to persist world on shutdown")
	}
}

// createBot validates and queues a new bot for the next available spawn
// slot (spec.md §4.3 step 4, §4.5 "create_bot"). Firmware-size validation
// happens here, synchronously, rather than being deferred to the tick that
// actually spawns it, so a caller's error is reported against the call that
// caused it.
func (w *World) createBot(src []byte, place *IVec2) (ids.BotId, error) {
	if len(src) > vm.DefaultRamSize {
		return 0, ErrBotTooLarge
	}
	if len(w.queued) >= w.policy.MaxQueuedBots {
		return 0, ErrQueueFull
	}
	id := w.ids.NextBot()
	w.queued = append(w.queued, &QueuedBot{Id: id, Src: src, Place: place})
	return id, nil
}

func (w *World) destroyBot(id ids.BotId) error {
	if b, ok := w.alive[id]; ok {
		w.killBot(b, "destroyed by operator")
		return nil
	}
	for i, q := range w.queued {
		if q.Id == id {
			w.queued = append(w.queued[:i], w.queued[i+1:]...)
			return nil
		}
	}
	return ErrBotNotFound
}

// restartBot re-queues a bot from the dead pool with the same firmware it
// died running (spec.md §4.5 "restart_bot"). The dead entry is removed
// immediately so the bot doesn't appear simultaneously in both the dead and
// queued snapshot lists.
func (w *World) restartBot(id ids.BotId) error {
	dead, ok := w.dead.Get(id)
	if !ok {
		return ErrBotNotFound
	}
	w.dead.Remove(id)
	w.queued = append(w.queued, &QueuedBot{Id: id, Src: dead.Src, Requeued: dead.Requeued + 1})
	return nil
}

// tick runs the five steps of one simulation step (spec.md §4.3):
// drain commands (handled by Run's select before tick is invoked),
// advance bots, resolve physical effects, promote queued bots, and
// respawn/sweep dead bots — then publishes a coalesced snapshot.
func (w *World) tick() {
	w.clock.Advance()

	w.advanceBots()
	w.resolveEffects()
	w.promoteQueued()
	w.sweepDead()

	w.publish()
}

// advanceBots steps every alive bot's Cpu for its per-tick instruction
// budget (spec.md §4.3 step 2, §3.2 tick budget). A bot that faults is
// killed immediately; faults are a normal part of the simulation (buggy
// firmware), not a world-level error (spec.md §7 tier 1).
func (w *World) advanceBots() {
	for _, b := range w.alive {
		b.Age++
		b.Bus.Tick()
		b.Cpu.StepsRemaining = uint64(w.policy.TickBudgetSteps)
		f := b.Cpu.Run(b.Bus)
		if out := b.Bus.Serial.Drain(); len(out) > 0 {
			b.Serial = append(b.Serial, out...)
		}
		if f != nil {
			w.killBot(b, "fault: "+f.Error())
			continue
		}
		if b.Cpu.Halted {
			w.killBot(b, "halted (ebreak)")
		}
	}
}

// resolveEffects applies the physical consequences of whatever each bot's
// firmware requested this tick: motor movement/turning, radar scans, arm
// strikes (spec.md §4.3 step 3). Bots are resolved in ascending bot id
// order, so when two bots race for the same tile the lower id wins rather
// than whichever map iteration happens to visit first (spec.md §5). Bots
// that moved this tick are tracked in a set.
func (w *World) resolveEffects() {
	moved := mapset.NewSet()

	bots := make([]*AliveBot, 0, len(w.alive))
	for _, b := range w.alive {
		bots = append(bots, b)
	}
	sort.Slice(bots, func(i, j int) bool { return bots[i].Id < bots[j].Id })

	for _, b := range bots {
		switch b.Bus.Motor.TakeCommand() {
		case peripherals.MotorTurnLeft:
			b.Dir = b.Dir.Turn(false)
			b.Bus.Compass.Heading = b.Dir
		case peripherals.MotorTurnRight:
			b.Dir = b.Dir.Turn(true)
			b.Bus.Compass.Heading = b.Dir
		case peripherals.MotorStep:
			dx, dy := b.Dir.Delta()
			next := IVec2{X: b.Pos.X + dx, Y: b.Pos.Y + dy}
			if w.m.At(next).Passable() && !w.occupied(next) && !moved.Contains(b.Id) {
				b.Pos = next
				moved.Add(b.Id)
			}
		}

		if size, ok := b.Bus.Radar.TakeScanRequest(); ok {
			b.Bus.Radar.SetResult(w.scanAround(b.Pos, size))
		}

		if b.Bus.Arm.TakeStrike() {
			w.resolveStrike(b)
		}
	}
}

// occupied reports whether any alive bot already occupies pos, checked
// against each bot's current position, which includes moves already
// resolved earlier in this tick.
func (w *World) occupied(pos IVec2) bool {
	for _, b := range w.alive {
		if b.Pos == pos {
			return true
		}
	}
	return false
}

// scanAround renders a size x size window of tile kinds centered on pos,
// one byte per tile, for the radar's result register (spec.md §4.2, §6.1).
func (w *World) scanAround(pos IVec2, size uint32) []byte {
	r := int(size) / 2
	out := make([]byte, 0, size*size)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			out = append(out, byte(w.m.At(IVec2{X: pos.X + dx, Y: pos.Y + dy}).Kind))
		}
	}
	return out
}

// resolveStrike applies an arm strike to the tile directly in front of the
// striking bot (spec.md §6.1 "arm"): every object on that tile is collected,
// scoring 1 for the striker. A bot on that tile is not affected.
func (w *World) resolveStrike(b *AliveBot) {
	dx, dy := b.Dir.Delta()
	target := IVec2{X: b.Pos.X + dx, Y: b.Pos.Y + dy}
	for _, o := range w.objects {
		if o.Pos != nil && *o.Pos == target {
			w.scores.Add(b.Id, 1)
			b.Score++
			o.Pos = nil
		}
	}
}

// promoteQueued moves queued bots onto the map as soon as a spawn slot and
// tile are available (spec.md §4.3 step 4).
func (w *World) promoteQueued() {
	for len(w.queued) > 0 && len(w.alive) < w.policy.MaxAliveBots {
		q := w.queued[0]
		w.queued = w.queued[1:]

		cpu := vm.New(w.isaMode, vm.DefaultRamSize)
		if len(q.Src) > 0 {
			cpu.LoadProgram(q.Src)
		}
		pos := w.spawn
		if q.Place != nil {
			pos = *q.Place
		}
		bus := peripherals.NewBus(uint64(q.Id), peripherals.North)

		w.alive[q.Id] = &AliveBot{
			Id:       q.Id,
			Pos:      pos,
			Dir:      peripherals.North,
			Cpu:      cpu,
			Bus:      bus,
			Src:      q.Src,
			Requeued: q.Requeued,
			BornAt:   time.Now(),
		}
	}
}

// killBot moves a bot from alive to the dead pool, recording its final
// incarnation in lives (spec.md §3.4, §3.6).
func (w *World) killBot(b *AliveBot, reason string) {
	delete(w.alive, b.Id)
	now := time.Now()
	w.lives.Record(b.Id, LifeRecord{BornAt: b.BornAt, DiedAt: now, Age: b.Age, Score: b.Score})
	w.dead.Put(&DeadBot{
		Id:       b.Id,
		Src:      b.Src,
		Events:   append(b.Events, reason),
		Serial:   b.Serial,
		DiedAt:   now,
		Age:      b.Age,
		Score:    b.Score,
		Requeued: b.Requeued,
	})
	if w.policy.AutoRespawn {
		w.queued = append(w.queued, &QueuedBot{Id: b.Id, Src: b.Src, Requeued: b.Requeued + 1})
	}
}

// sweepDead evicts dead bots that have already been surfaced in a published
// snapshot (spec.md §4.3 step 5, §3.6).
func (w *World) sweepDead() {
	for _, d := range w.dead.All() {
		if d.Surfaced {
			w.dead.Remove(d.Id)
		} else {
			d.Surfaced = true
		}
	}
}

// publish builds and publishes a fresh Snapshot from the current tick-loop
// state (spec.md §4.4).
func (w *World) publish() {
	w.version++
	alive := make([]*AliveBot, 0, len(w.alive))
	for _, b := range w.alive {
		alive = append(alive, b)
	}
	dead := w.dead.All()
	snap := newSnapshot(w.version, w.clock.Tick, w.m, alive, dead, w.queued, w.objects, w.clock.Mode)
	w.snapshotter.Publish(snap, w.clock.Mode, time.Now())
}
