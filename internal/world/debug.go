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
	"github.com/davecgh/go-spew/spew"

	"github.com/kartoffels/kartoffels/internal/ids"
)

// dumpConfig renders bot/world state for the admin inspector surface
// (spec.md §6.3 control surface): full depth, no method calls, pointer
// addresses omitted so two dumps of structurally-identical state compare
// equal in tests.
var dumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableMethods:          true,
	SortKeys:                true,
}

// DumpBot renders an AliveBot's full state as a human-readable string, used
// by the admin inspector when a single bot is selected (spec.md §6.3).
func DumpBot(b *AliveBot) string {
	return dumpConfig.Sdump(b)
}

// DumpDeadBot renders a DeadBot's retained state, including its final event
// log and serial output.
func DumpDeadBot(b *DeadBot) string {
	return dumpConfig.Sdump(b)
}

// DumpLives renders a bot's incarnation history.
func DumpLives(l *Lives, id ids.BotId) string {
	return dumpConfig.Sdump(l.Get(id))
}
