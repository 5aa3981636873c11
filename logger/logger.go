// Package logger is the central log for the application. Log entries are
// tagged with the sub-system they originate from and are kept for later
// inspection as well as being optionally echoed as they arrive.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission gates whether a log request is carried out. It allows callers
// deep in the emulation to log without knowing about the user's verbosity
// preferences.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow can be used when logging should happen unconditionally.
var Allow allow

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type central struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var log central

// Log adds a new entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	log.crit.Lock()
	defer log.crit.Unlock()

	// each line of a multiline detail becomes its own entry
	for _, d := range strings.Split(fmt.Sprintf("%v", detail), "\n") {
		if d == "" {
			continue
		}
		e := entry{tag: tag, detail: d}
		log.entries = append(log.entries, e)
		if log.echo != nil {
			fmt.Fprintln(log.echo, e.String())
		}
	}
}

// Logf adds a new formatted entry to the central logger.
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// SetEcho makes all future log entries echo to the writer as they arrive. A
// nil writer disables echoing.
func SetEcho(w io.Writer) {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.echo = w
}

// Tail writes the last n log entries to the writer. A value of zero or less
// for n writes every entry.
func Tail(w io.Writer, n int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	if n <= 0 || n > len(log.entries) {
		n = len(log.entries)
	}
	for _, e := range log.entries[len(log.entries)-n:] {
		fmt.Fprintln(w, e.String())
	}
}
