// This file is part of RetroArch-gekko.
//
// RetroArch-gekko is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RetroArch-gekko is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RetroArch-gekko.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// a group is the parsed result of a single prefs string. the applied map
// records keys that have been taken from the group with GetCommandLinePref()
type group struct {
	values  map[string]string
	applied map[string]bool
}

var commandLine struct {
	crit  sync.Mutex
	stack []group
}

// PushCommandLineStack parses a prefs string and adds it as a new group.
// Malformed key/value pairs are silently ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	g := group{
		values:  make(map[string]string),
		applied: make(map[string]bool),
	}

	for p := range strings.SplitSeq(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		g.values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLine.stack = append(commandLine.stack, g)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the unused key/value pairs of the group as a prefs string, sorted
// by key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	g := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(g.values))
	for k := range g.values {
		if !g.applied[k] {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, g.values[k]))
	}

	return strings.Join(s, "; ")
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// GetCommandLinePref returns the value for the key from the top group of the
// stack. The key is marked as used.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	g := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := g.values[key]; ok {
		g.applied[key] = true
		return true, v
	}

	return false, nil
}

// returns true if the key is in the top group of the stack
func commandLineOverride(key string) bool {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false
	}
	_, ok := commandLine.stack[len(commandLine.stack)-1].values[key]
	return ok
}
