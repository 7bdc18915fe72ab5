package enum

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	"github.com/wirename/wirename/json"
)

var (
	// ErrUnknownMember is reported when a non-empty string token does
	// not match any member name of the target enum type.
	ErrUnknownMember = errors.New("unknown enum member")

	// ErrMalformedValue is reported when the token presented to a
	// codec is of a kind its contract does not accept.
	ErrMalformedValue = errors.New("malformed enum value")
)

// UnknownMemberError identifies the offending name and the enum type
// it failed to match. It matches ErrUnknownMember under errors.Is.
type UnknownMemberError struct {
	Type reflect.Type
	Name string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("unknown %s member %q", e.Type, e.Name)
}

func (e *UnknownMemberError) Is(target error) bool {
	return target == ErrUnknownMember
}

// MalformedValueError identifies the offending token and the type it
// was presented to. It matches ErrMalformedValue under errors.Is.
type MalformedValueError struct {
	Type  reflect.Type
	Token json.Raw
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf(
		"malformed value for %s: %s token %s",
		e.Type, json.KindOf(e.Token), e.Token)
}

func (e *MalformedValueError) Is(target error) bool {
	return target == ErrMalformedValue
}
