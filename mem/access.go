// Package mem defines the memory access vocabulary shared by the replacement
// engine, the cache model and the trace tooling.
package mem

import "fmt"

// AccessType is the kind of request that reaches the last-level cache.
type AccessType int

// The access types issued by the core and the upper-level caches.
const (
	AccessIFetch AccessType = iota
	AccessLoad
	AccessStore
	AccessPrefetch
	AccessWriteback
	NumAccessTypes
)

var accessTypeNames = [...]string{
	AccessIFetch:    "IFETCH",
	AccessLoad:      "LOAD",
	AccessStore:     "STORE",
	AccessPrefetch:  "PREFETCH",
	AccessWriteback: "WRITEBACK",
}

var accessTypeMnemonics = [...]byte{
	AccessIFetch:    'I',
	AccessLoad:      'L',
	AccessStore:     'S',
	AccessPrefetch:  'P',
	AccessWriteback: 'W',
}

func (t AccessType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("AccessType(%d)", int(t))
	}

	return accessTypeNames[t]
}

// Mnemonic returns the single-letter code used in text traces.
func (t AccessType) Mnemonic() byte {
	if !t.IsValid() {
		panic(fmt.Sprintf("invalid access type %d", int(t)))
	}

	return accessTypeMnemonics[t]
}

// IsValid reports whether t is one of the defined access types.
func (t AccessType) IsValid() bool {
	return t >= AccessIFetch && t < NumAccessTypes
}

// IsWrite reports whether the access leaves the line dirty.
func (t AccessType) IsWrite() bool {
	return t == AccessStore || t == AccessWriteback
}

// AccessTypeFromMnemonic maps a trace letter back to an AccessType.
func AccessTypeFromMnemonic(c byte) (AccessType, bool) {
	for t, m := range accessTypeMnemonics {
		if m == c || m+('a'-'A') == c {
			return AccessType(t), true
		}
	}

	return 0, false
}

// An Access is one reference issued to the cache.
type Access struct {
	ThreadID int
	PC       uint64
	Address  uint64
	Type     AccessType
}
