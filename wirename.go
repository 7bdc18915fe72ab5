// Package wirename contains a set of small packages that map enumerated
// values to and from their string names on the wire.
//
// Enum
//
// Package enum is the core. An enum type is registered once with its
// exhaustive member list; the package then resolves that type, and its
// Optional shape, to codecs that read and write the member names as
// JSON string tokens. Decoding is strict: names match exactly and
// case-sensitively, and an unknown name aborts the decode.
//
// JSON
//
// Package json is the driver seam. It allows swapping the underlying
// JSON implementation and provides the raw-token primitives the codecs
// are built on.
//
// Schema
//
// Package enumschema installs the same name tables into gorilla/schema
// encoders and decoders, so URL query values carry the same member
// names as JSON documents.
package wirename

import (
	_ "github.com/wirename/wirename/enum"
	_ "github.com/wirename/wirename/enumschema"
	_ "github.com/wirename/wirename/json"
)
