// Package intern deduplicates the identifier strings a parser declares
// (flag names, positional names, destination keys) so lookup tables and
// results share one backing copy per name.
package intern

import (
	"strings"
	"sync"
)

// Interner is a thread-safe string table.
type Interner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// New creates an interner; capacity <= 0 picks a small default.
func New(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s. The stored copy is cloned so a
// caller slicing a large buffer does not pin it.
func (in *Interner) Intern(s string) string {
	in.mutex.RLock()
	if v, ok := in.strings[s]; ok {
		in.mutex.RUnlock()
		return v
	}
	in.mutex.RUnlock()

	in.mutex.Lock()
	defer in.mutex.Unlock()
	if v, ok := in.strings[s]; ok {
		return v
	}
	c := strings.Clone(s)
	in.strings[c] = c
	return c
}

// Preload interns names in one locked pass.
func (in *Interner) Preload(names ...string) {
	in.mutex.Lock()
	defer in.mutex.Unlock()
	for _, s := range names {
		if _, ok := in.strings[s]; !ok {
			c := strings.Clone(s)
			in.strings[c] = c
		}
	}
}

// Len reports how many distinct strings are held.
func (in *Interner) Len() int {
	in.mutex.RLock()
	defer in.mutex.RUnlock()
	return len(in.strings)
}

// Reset drops every entry.
func (in *Interner) Reset() {
	in.mutex.Lock()
	defer in.mutex.Unlock()
	clear(in.strings)
}

// Names that nearly every parser declares or reserves.
var commonNames = []string{
	"-h", "--help", "help",
	"-v", "--verbose", "verbose",
	"-o", "--output", "output",
	"-c", "--count", "count",
	"-q", "--quiet", "quiet",
}

var global = func() *Interner {
	in := New(128)
	in.Preload(commonNames...)
	return in
}()

// Intern interns s in the process-wide table.
func Intern(s string) string { return global.Intern(s) }
