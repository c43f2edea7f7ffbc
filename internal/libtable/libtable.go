// Package libtable interns shared-object/library names and accumulates the
// address range of symbols observed within each one.
package libtable

// Library is one emitted library row.
type Library struct {
	Name  string
	Start uint64
	End   uint64
}

// Table is the document-scoped library table: entries accumulate their
// [Start, End) range as symbols referencing them are observed across every
// thread in the document.
type Table struct {
	index map[string]int32
	libs  []Library
}

// New returns an empty library table.
func New() *Table {
	return &Table{index: make(map[string]int32)}
}

// Intern records a sighting of a library name at the given address/size and
// returns its index. A nil/empty name interns nothing and returns none
// (-1). On first sight the entry's range is [addr, addr+size); later
// sightings only widen the range, never shrink it.
func (t *Table) Intern(name string, addr uint64, size uint32) int32 {
	if name == "" {
		return -1
	}

	end := addr + uint64(size)
	if idx, ok := t.index[name]; ok {
		lib := &t.libs[idx]
		if addr != 0 {
			if lib.Start == 0 || addr < lib.Start {
				lib.Start = addr
			}
			if end > lib.End {
				lib.End = end
			}
		}
		return idx
	}

	idx := int32(len(t.libs))
	t.libs = append(t.libs, Library{Name: name, Start: addr, End: end})
	t.index[name] = idx
	return idx
}

// Libraries returns the final ordered library list for JSON emission.
func (t *Table) Libraries() []Library {
	if t.libs == nil {
		return []Library{}
	}
	return t.libs
}
