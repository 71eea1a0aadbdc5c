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

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log entry.
type Level int

// List of valid Level values.
const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "info"
}

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	if e.Level == LevelInfo {
		s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	} else {
		s.WriteString(fmt.Sprintf("%s: %s: %s", e.Tag, e.Level, e.Detail))
	}
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a list of log entries. Most callers will want to use the central
// logger through the package level functions.
type Logger struct {
	crit       sync.Mutex
	maxEntries int
	entries    []Entry

	// entries are echoed to this writer as they are added. may be nil
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

// detail argument can be a string, an error, a fmt.Stringer or anything else
// that fmt can print with the %v verb
func normalise(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

func (l *Logger) add(perm Permission, level Level, tag string, detail string) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	// newlines in the tag or detail would break the one entry per line rule
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.TrimRight(detail, "\r\n")
	detail = strings.ReplaceAll(detail, "\n", " ")

	var e *Entry
	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.Tag == tag && last.Detail == detail && last.Level == level {
			e = last
			e.repeated++
			e.Timestamp = time.Now()
		}
	}

	if e == nil {
		l.entries = append(l.entries, Entry{
			Timestamp: time.Now(),
			Level:     level,
			Tag:       tag,
			Detail:    detail,
		})
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
}

// Log adds an informational entry.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	l.add(perm, LevelInfo, tag, normalise(detail))
}

// Logf adds a formatted informational entry.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	l.add(perm, LevelInfo, tag, fmt.Sprintf(detail, args...))
}

// Warn adds a warning entry.
func (l *Logger) Warn(perm Permission, tag string, detail any) {
	l.add(perm, LevelWarning, tag, normalise(detail))
}

// Warnf adds a formatted warning entry.
func (l *Logger) Warnf(perm Permission, tag string, detail string, args ...any) {
	l.add(perm, LevelWarning, tag, fmt.Sprintf(detail, args...))
}

// Error adds an error entry.
func (l *Logger) Error(perm Permission, tag string, detail any) {
	l.add(perm, LevelError, tag, normalise(detail))
}

// Errorf adds a formatted error entry.
func (l *Logger) Errorf(perm Permission, tag string, detail string, args ...any) {
	l.add(perm, LevelError, tag, fmt.Sprintf(detail, args...))
}

// Clear all entries.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of log to io.Writer. Returns false if there was nothing to
// write.
func (l *Logger) Write(output io.Writer) bool {
	l.crit.Lock()
	defer l.crit.Unlock()

	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new entries to the io.Writer as they are added. A nil
// writer turns echoing off. If writeRecent is true then the existing entries
// are written to the new echo immediately.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
	if output != nil && writeRecent {
		for _, e := range l.entries {
			io.WriteString(output, e.String())
		}
	}
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries. The slice must not be retained.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
