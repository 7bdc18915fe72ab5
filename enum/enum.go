// Package enum maps enumerated values to and from their string names
// during JSON encoding and decoding.
//
// An enum type is a named integral type with a closed set of named
// constants. Because Go cannot enumerate the constants of a type at
// runtime, each enum type is registered once with its exhaustive
// member list, typically from an init function:
//
//	type AccessLevel uint8
//
//	const (
//		Read AccessLevel = iota
//		Write
//		Admin
//	)
//
//	func init() {
//		enum.Register(map[AccessLevel]string{
//			Read:  "Read",
//			Write: "Write",
//			Admin: "Admin",
//		})
//	}
//
// Registration makes both AccessLevel and Optional[AccessLevel]
// resolvable to codecs that read and write the member name as a JSON
// string token. The Marshal and Unmarshal functions are one-line
// building blocks for the type's JSON methods:
//
//	func (a AccessLevel) MarshalJSON() ([]byte, error)  { return enum.Marshal(a) }
//	func (a *AccessLevel) UnmarshalJSON(b []byte) error { return enum.Unmarshal(b, a) }
//
// Decoding is strict: names match exactly and case-sensitively, there
// is no numeric fallback, and an unknown name fails the decode with
// ErrUnknownMember rather than substituting a default member.
package enum

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/wirename/wirename/json"
)

// Integer is the constraint satisfied by enum types: any named type
// whose underlying type is integral.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Register registers the member list of E in the Default registry,
// making E and Optional[E] resolvable. Each enum type is registered
// exactly once; Register panics on a duplicate registration, since
// that is a wiring mistake best caught at init time.
//
// The name table itself is built lazily on first resolve, so an
// invalid member list (duplicate or empty names) surfaces there.
func Register[E Integer](members map[E]string) {
	if err := RegisterIn[E](Default, members); err != nil {
		panic(err)
	}
}

// RegisterIn is Register against an explicit registry.
func RegisterIn[E Integer](r *Registry, members map[E]string) error {
	enumType := reflect.TypeOf(*new(E))
	optType := reflect.TypeOf(Optional[E]{})

	// Copy the list so later mutation by the caller cannot leak into
	// the lazily built table.
	ms := make(map[int64]string, len(members))
	for m, name := range members {
		ms[int64(m)] = name
	}

	return r.add(enumType, optType, func() (*Table, error) {
		return NewTable(enumType, ms)
	})
}

// Marshal encodes a registered enum member as a JSON string token
// holding its member name, using the Default registry.
func Marshal[E Integer](m E) ([]byte, error) {
	c, err := defaultCodec(reflect.TypeOf(m))
	if err != nil {
		return nil, err
	}
	raw, err := c.Marshal(m)
	return []byte(raw), err
}

// Unmarshal decodes a JSON string token into a registered enum member,
// using the Default registry. Decoding a token of any other kind fails
// with ErrMalformedValue; a string that is not an exact member name,
// the empty string included, fails with ErrUnknownMember.
func Unmarshal[E Integer](data []byte, m *E) error {
	c, err := defaultCodec(reflect.TypeOf(*m))
	if err != nil {
		return err
	}
	return c.Unmarshal(json.Raw(data), m)
}

func defaultCodec(typ reflect.Type) (Codec, error) {
	c, err := Default.Resolve(typ)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.Errorf("enum: %s is not registered", typ)
	}
	return c, nil
}
