package enum

import (
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// Table is the bidirectional name table of one enum type: member name
// to member value and member value to member name. A Table is built
// once from the type's exhaustive member list and never changes.
//
// Lookups are exact. The Table reports a miss and nothing else; how a
// miss is treated is the codec's decision.
type Table struct {
	typ    reflect.Type
	byName map[string]int64
	byVal  map[int64]string
	names  []string
}

// NewTable builds a Table for typ from its member list. Member names
// must be unique, case-sensitively, and non-empty; member values are
// unique by construction of the list.
func NewTable(typ reflect.Type, members map[int64]string) (*Table, error) {
	t := &Table{
		typ:    typ,
		byName: make(map[string]int64, len(members)),
		byVal:  make(map[int64]string, len(members)),
	}

	for v, name := range members {
		if name == "" {
			return nil, errors.Errorf("enum: %s: empty name for member value %d", typ, v)
		}
		if prev, ok := t.byName[name]; ok {
			return nil, errors.Errorf(
				"enum: %s: duplicate member name %q for values %d and %d",
				typ, name, prev, v)
		}
		t.byName[name] = v
		t.byVal[v] = name
	}

	values := make([]int64, 0, len(members))
	for v := range members {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	t.names = make([]string, len(values))
	for i, v := range values {
		t.names[i] = t.byVal[v]
	}

	return t, nil
}

// Type returns the enum type the table was built for.
func (t *Table) Type() reflect.Type {
	return t.typ
}

// Value looks up the member value for an exact member name.
func (t *Table) Value(name string) (int64, bool) {
	v, ok := t.byName[name]
	return v, ok
}

// Name looks up the member name for a member value. It reports false
// only for values outside the member list, which a correctly
// constructed member never is.
func (t *Table) Name(v int64) (string, bool) {
	name, ok := t.byVal[v]
	return name, ok
}

// Names returns the member names in ascending member value order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of members.
func (t *Table) Len() int {
	return len(t.byName)
}
