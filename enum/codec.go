package enum

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/wirename/wirename/json"
)

// Codec converts between a single JSON token and a value of one
// resolvable type. Codecs are stateless once resolved: the same codec
// may be shared across goroutines and cached indefinitely by the
// caller, though resolving again is equally cheap.
type Codec interface {
	// Type returns the type the codec is bound to.
	Type() reflect.Type

	// Marshal encodes v, a value (or pointer to a value) of the bound
	// type, into its JSON token.
	Marshal(v interface{}) (json.Raw, error)

	// Unmarshal decodes a single JSON token into v, a pointer to a
	// value of the bound type. On failure v is left untouched and the
	// error matches ErrMalformedValue or ErrUnknownMember.
	Unmarshal(tok json.Raw, v interface{}) error
}

// memberCodec converts one concrete member to and from its name. It
// accepts string tokens only: any other token kind is malformed, and
// a name miss, the empty string included, is an unknown member.
type memberCodec struct {
	table *Table
}

func (c *memberCodec) Type() reflect.Type {
	return c.table.typ
}

func (c *memberCodec) Marshal(v interface{}) (json.Raw, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Type().Elem() == c.table.typ {
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != c.table.typ {
		return nil, errors.Errorf("enum: cannot marshal %T as %s", v, c.table.typ)
	}
	return c.marshalMember(memberValue(rv))
}

func (c *memberCodec) Unmarshal(tok json.Raw, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Type().Elem() != c.table.typ {
		return errors.Errorf("enum: cannot unmarshal into %T, want *%s", v, c.table.typ)
	}
	m, err := c.unmarshalMember(tok)
	if err != nil {
		return err
	}
	setMemberValue(rv.Elem(), m)
	return nil
}

func (c *memberCodec) marshalMember(m int64) (json.Raw, error) {
	name, ok := c.table.Name(m)
	if !ok {
		// Reachable only through a conversion that bypassed the member
		// list, e.g. AccessLevel(42).
		return nil, errors.Errorf("enum: %s has no member with value %d", c.table.typ, m)
	}
	return json.Quote(name), nil
}

func (c *memberCodec) unmarshalMember(tok json.Raw) (int64, error) {
	if json.KindOf(tok) != json.KindString {
		return 0, &MalformedValueError{Type: c.table.typ, Token: tok.Clone()}
	}
	name, err := json.Unquote(tok)
	if err != nil {
		return 0, &MalformedValueError{Type: c.table.typ, Token: tok.Clone()}
	}
	m, ok := c.table.Value(name)
	if !ok {
		// The empty string is not a member name either; a required
		// field treats it like any other unknown name.
		return 0, &UnknownMemberError{Type: c.table.typ, Name: name}
	}
	return m, nil
}

// optionalCodec wraps a memberCodec for the Optional shape of its
// type. Decoding widens the accepted tokens: null and the empty
// string both mean absent. The empty string is a compatibility rule
// for producers that emit "" instead of null; it is never an unknown
// member. Encoding never produces "": absent encodes as null.
type optionalCodec struct {
	typ    reflect.Type
	member *memberCodec
}

func (c *optionalCodec) Type() reflect.Type {
	return c.typ
}

func (c *optionalCodec) Marshal(v interface{}) (json.Raw, error) {
	o, ok := v.(optionalValue)
	if !ok || concreteType(v) != c.typ {
		return nil, errors.Errorf("enum: cannot marshal %T as %s", v, c.typ)
	}
	m, present := o.optionalMember()
	if !present {
		return json.Null, nil
	}
	return c.member.marshalMember(m)
}

func (c *optionalCodec) Unmarshal(tok json.Raw, v interface{}) error {
	o, ok := v.(optionalSetter)
	if !ok || concreteType(v) != c.typ {
		return errors.Errorf("enum: cannot unmarshal into %T, want *%s", v, c.typ)
	}

	switch json.KindOf(tok) {
	case json.KindNull:
		o.setAbsent()
		return nil

	case json.KindString:
		name, err := json.Unquote(tok)
		if err != nil {
			return &MalformedValueError{Type: c.typ, Token: tok.Clone()}
		}
		if name == "" {
			o.setAbsent()
			return nil
		}
		m, ok := c.member.table.Value(name)
		if !ok {
			return &UnknownMemberError{Type: c.member.table.typ, Name: name}
		}
		o.setMember(m)
		return nil

	default:
		return &MalformedValueError{Type: c.typ, Token: tok.Clone()}
	}
}

// concreteType returns the type of v with one level of pointer
// indirection stripped, so values and pointers compare alike.
func concreteType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func memberValue(rv reflect.Value) int64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	default:
		return int64(rv.Uint())
	}
}

func setMemberValue(rv reflect.Value, m int64) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(m)
	default:
		rv.SetUint(uint64(m))
	}
}
