// Package symtab interns names into dense uint16 codes. category.New
// uses it to intern the bitfield names reachable from a codec's UAP;
// the codes it assigns are separate from bitfield.BitField.Code.
package symtab

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/nexar-aero/asterix/errs"
)

// Registry is a name→code table. Codes are assigned densely and
// sequentially, in first-interned order, matching spec.md §3's "dense
// small integer identifier." An xxHash64 fingerprint of each name is
// kept alongside its code purely as a collision guard: if two
// distinct names ever hash to the same fingerprint, Intern reports it
// rather than silently treating them as interchangeable. The zero
// value is not usable; construct with New.
type Registry struct {
	mu     sync.RWMutex
	codes  map[string]uint16
	names  []string
	hashes map[uint64]string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		codes:  make(map[string]uint16),
		hashes: make(map[uint64]string),
	}
}

// Intern returns name's dense code, assigning the next one on first
// use. Repeated calls with the same name return the same code. Intern
// fails with errs.ErrCodeCollision if name's xxHash64 fingerprint is
// already held by a different name.
func (r *Registry) Intern(name string) (uint16, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if code, ok := r.codes[name]; ok {
		return code, nil
	}

	fp := xxhash.Sum64String(name)

	if existing, ok := r.hashes[fp]; ok && existing != name {
		return 0, fmt.Errorf("symtab: %q and %q both hash to fingerprint %d: %w", name, existing, fp, errs.ErrCodeCollision)
	}

	if len(r.names) >= 1<<16 {
		return 0, fmt.Errorf("symtab: dense code space (65536 names) exhausted interning %q: %w", name, errs.ErrCodeCollision)
	}

	code := uint16(len(r.names))
	r.codes[name] = code
	r.names = append(r.names, name)
	r.hashes[fp] = name

	return code, nil
}

// Lookup returns the name registered for code, if any.
func (r *Registry) Lookup(code uint16) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if int(code) >= len(r.names) {
		return "", false
	}

	return r.names[code], true
}

// Len returns the number of distinct names interned so far.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}
