package enum

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Registry resolves declared types to codecs. A type resolves if it is
// a registered enum type or the Optional shape of one; anything else
// resolves to nil and is left to the caller's default handling.
//
// The name table behind a codec is built on the first resolve of its
// type, exactly once no matter how many resolves race, and is then
// reused for the lifetime of the registry.
//
// Most programs use the process-wide Default registry through
// Register; tests that must not leak registrations across cases
// construct their own with NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	types map[reflect.Type]resolution

	builds atomic.Int64
}

type resolution struct {
	ent      *entry
	optional bool
}

type entry struct {
	once  sync.Once
	build func() (*Table, error)

	optType reflect.Type

	table    *Table
	codec    *memberCodec
	optional *optionalCodec
	err      error
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]resolution)}
}

// Default is the process-wide registry used by Register, Marshal,
// Unmarshal and Optional's JSON methods.
var Default = NewRegistry()

func (r *Registry) add(enumType, optType reflect.Type, build func() (*Table, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[enumType]; ok {
		return errors.Errorf("enum: %s is already registered", enumType)
	}

	e := &entry{build: build, optType: optType}
	r.types[enumType] = resolution{ent: e}
	r.types[optType] = resolution{ent: e, optional: true}
	return nil
}

// Handles reports whether typ resolves to a codec.
func (r *Registry) Handles(typ reflect.Type) bool {
	r.mu.RLock()
	_, ok := r.types[typ]
	r.mu.RUnlock()
	return ok
}

// Resolve returns the codec for typ: the plain codec for a registered
// enum type, the optional codec for its Optional shape, and nil for
// any other type. A non-nil error means the type is registered but its
// member list failed to build.
func (r *Registry) Resolve(typ reflect.Type) (Codec, error) {
	res, ok := r.lookup(typ)
	if !ok {
		return nil, nil
	}
	if err := r.materialize(res.ent); err != nil {
		return nil, err
	}
	if res.optional {
		return res.ent.optional, nil
	}
	return res.ent.codec, nil
}

// Table returns the name table for a registered enum type (or its
// Optional shape), building it if needed, and nil for any other type.
func (r *Registry) Table(typ reflect.Type) (*Table, error) {
	res, ok := r.lookup(typ)
	if !ok {
		return nil, nil
	}
	if err := r.materialize(res.ent); err != nil {
		return nil, err
	}
	return res.ent.table, nil
}

// Types returns a snapshot of the registered enum types, Optional
// shapes excluded. Order is unspecified.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.types)/2)
	for typ, res := range r.types {
		if !res.optional {
			types = append(types, typ)
		}
	}
	return types
}

// Builds returns how many name tables have been built so far. It never
// exceeds the number of registered enum types, no matter how many
// resolves race on first use.
func (r *Registry) Builds() int64 {
	return r.builds.Load()
}

func (r *Registry) lookup(typ reflect.Type) (resolution, bool) {
	r.mu.RLock()
	res, ok := r.types[typ]
	r.mu.RUnlock()
	return res, ok
}

func (r *Registry) materialize(e *entry) error {
	e.once.Do(func() {
		e.table, e.err = e.build()
		if e.err != nil {
			return
		}
		e.codec = &memberCodec{table: e.table}
		e.optional = &optionalCodec{typ: e.optType, member: e.codec}
		r.builds.Inc()
	})
	return e.err
}
