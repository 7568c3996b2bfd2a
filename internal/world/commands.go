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

// command is drained by the tick loop at the start of each tick (spec.md
// §4.3 step 1, §4.5). Every Handle method that mutates world state sends
// one of these and (except fire-and-forget notifications) waits on its
// reply channel for the result.
type command interface {
	isCommand()
}

type cmdPause struct{ reply chan struct{} }
type cmdResume struct{ reply chan struct{} }
type cmdShutdown struct{ reply chan struct{} }

type cmdSetMap struct {
	m     *Map
	reply chan struct{}
}

type cmdSetSpawn struct {
	pos   IVec2
	reply chan struct{}
}

type cmdCreateBot struct {
	src   []byte
	place *IVec2
	reply chan createBotResult
}

type createBotResult struct {
	id  ids.BotId
	err error
}

type cmdDestroyBot struct {
	id    ids.BotId
	reply chan error
}

type cmdRestartBot struct {
	id    ids.BotId
	reply chan error
}

func (cmdPause) isCommand()      {}
func (cmdResume) isCommand()     {}
func (cmdShutdown) isCommand()   {}
func (cmdSetMap) isCommand()     {}
func (cmdSetSpawn) isCommand()   {}
func (cmdCreateBot) isCommand()  {}
func (cmdDestroyBot) isCommand() {}
func (cmdRestartBot) isCommand() {}
