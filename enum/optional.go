package enum

import (
	"reflect"

	"github.com/wirename/wirename/json"
)

// Optional is an enum member widened with an explicit absent state,
// distinct from any member value, zero included. The zero Optional is
// absent.
//
// An absent Optional encodes as the JSON null token. Decoding accepts
// both null and the empty string as absent; some producers emit ""
// to mean "no value", and both spellings normalize to the same state.
type Optional[E Integer] struct {
	member  E
	present bool
}

// Present returns an Optional holding m.
func Present[E Integer](m E) Optional[E] {
	return Optional[E]{member: m, present: true}
}

// Absent returns the absent Optional, equivalent to the zero value.
func Absent[E Integer]() Optional[E] {
	return Optional[E]{}
}

// Member returns the held member and whether one is present.
func (o Optional[E]) Member() (E, bool) {
	return o.member, o.present
}

// MarshalJSON implements json.Marshaler through the codec resolved
// from the Default registry.
func (o Optional[E]) MarshalJSON() ([]byte, error) {
	c, err := defaultCodec(reflect.TypeOf(o))
	if err != nil {
		return nil, err
	}
	raw, err := c.Marshal(o)
	return []byte(raw), err
}

// UnmarshalJSON implements json.Unmarshaler through the codec resolved
// from the Default registry.
func (o *Optional[E]) UnmarshalJSON(data []byte) error {
	c, err := defaultCodec(reflect.TypeOf(*o))
	if err != nil {
		return err
	}
	return c.Unmarshal(json.Raw(data), o)
}

// optionalValue and optionalSetter are how the optional codec sees an
// Optional of any member type without inspecting its shape.
type optionalValue interface {
	optionalMember() (int64, bool)
}

type optionalSetter interface {
	setAbsent()
	setMember(int64)
}

func (o Optional[E]) optionalMember() (int64, bool) {
	return int64(o.member), o.present
}

func (o *Optional[E]) setAbsent() {
	*o = Optional[E]{}
}

func (o *Optional[E]) setMember(m int64) {
	o.member = E(m)
	o.present = true
}
