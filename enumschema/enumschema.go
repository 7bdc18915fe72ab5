// Package enumschema installs the string-name representation of
// registered enums into gorilla/schema encoders and decoders, so URL
// query values carry the same member names as JSON documents.
//
// Only plain enum fields are covered; query strings have no null
// token, so the Optional shape stays JSON-only.
package enumschema

import (
	"reflect"

	"github.com/gorilla/schema"

	"github.com/wirename/wirename/enum"
)

// RegisterEncoders installs a name-based encoder on enc for every enum
// type registered in reg. Members encode as their exact names; a value
// outside the member list encodes as the empty string, which the
// schema encoder treats as unset.
func RegisterEncoders(enc *schema.Encoder, reg *enum.Registry) error {
	for _, typ := range reg.Types() {
		table, err := reg.Table(typ)
		if err != nil {
			return err
		}
		enc.RegisterEncoder(zeroOf(typ), encoder(table))
	}
	return nil
}

// RegisterConverters installs a name-based converter on dec for every
// enum type registered in reg. Matching is as strict as the JSON path:
// exact, case-sensitive names only, no numeric fallback.
func RegisterConverters(dec *schema.Decoder, reg *enum.Registry) error {
	for _, typ := range reg.Types() {
		table, err := reg.Table(typ)
		if err != nil {
			return err
		}
		dec.RegisterConverter(zeroOf(typ), converter(typ, table))
	}
	return nil
}

func encoder(table *enum.Table) func(reflect.Value) string {
	return func(v reflect.Value) string {
		var m int64
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			m = v.Int()
		default:
			m = int64(v.Uint())
		}
		name, _ := table.Name(m)
		return name
	}
}

func converter(typ reflect.Type, table *enum.Table) schema.Converter {
	return func(s string) reflect.Value {
		m, ok := table.Value(s)
		if !ok {
			// An invalid Value is how a schema.Converter reports a
			// conversion error.
			return reflect.Value{}
		}
		rv := reflect.New(typ).Elem()
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			rv.SetInt(m)
		default:
			rv.SetUint(uint64(m))
		}
		return rv
	}
}

func zeroOf(typ reflect.Type) interface{} {
	return reflect.New(typ).Elem().Interface()
}
