package json

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type Marshaler interface {
	MarshalJSON() ([]byte, error)
}

type Unmarshaler interface {
	UnmarshalJSON([]byte) error
}

// Raw is a raw encoded JSON value. It implements Marshaler and
// Unmarshaler and can be used to delay JSON decoding or precompute a
// JSON encoding. It's taken from encoding/json.
type Raw []byte

// Null is the raw JSON null token.
var Null = Raw("null")

// MarshalJSON returns r as the JSON encoding of r.
func (r Raw) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *Raw) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

func (r Raw) String() string {
	return string(r)
}

// Clone returns a copy of r that does not share memory with it. Raw
// tokens handed to an Unmarshaler may be reused by the driver, so
// anything that retains a token past the call must clone it.
func (r Raw) Clone() Raw {
	if r == nil {
		return nil
	}
	return append(Raw(nil), r...)
}

// Kind identifies the kind of a JSON token.
type Kind byte

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindOf reports the kind of a raw token by its leading byte. The
// token is assumed to be syntactically valid JSON, which is what a
// Driver hands to an Unmarshaler.
func KindOf(tok Raw) Kind {
	tok = Raw(bytes.TrimSpace(tok))
	if len(tok) == 0 {
		return KindInvalid
	}

	switch c := tok[0]; {
	case c == 'n':
		return KindNull
	case c == 't' || c == 'f':
		return KindBool
	case c == '"':
		return KindString
	case c == '[':
		return KindArray
	case c == '{':
		return KindObject
	case c == '-' || ('0' <= c && c <= '9'):
		return KindNumber
	default:
		return KindInvalid
	}
}

// Quote encodes s as a JSON string token, escaping as needed.
func Quote(s string) Raw {
	b, err := json.Marshal(s)
	if err != nil { // a string never fails to encode
		panic(err)
	}
	return Raw(b)
}

// Unquote decodes a JSON string token into its Go string value.
func Unquote(tok Raw) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(tok), &s); err != nil {
		return "", errors.Wrap(err, "not a JSON string token")
	}
	return s, nil
}
