// Package endpoint resolves TCR API endpoint descriptors. It is the
// demo subsystem for the errchain container: its operations fail with
// a mix of categorized, ad-hoc and foreign errors, all propagated
// through the same uniform surface.
package endpoint

import (
	"strconv"

	"codeberg.org/mutker/errchain"
)

// Descriptor field keys
const (
	nameField  = "field name"
	portField  = "port"
	ownerField = "owner"
)

// Descriptor holds the raw key/value fields of a TCR API endpoint
// before validation.
type Descriptor struct {
	fields map[string]string
}

// New builds a descriptor from raw fields.
func New(fields map[string]string) Descriptor {
	return Descriptor{fields: fields}
}

// Seed returns the demo descriptor used by the example binary.
func Seed() Descriptor {
	return New(map[string]string{
		"1":       "a",
		portField: "cant-parse",
	})
}

// Field returns the named raw field. A missing field is a well-known
// condition callers decide behavior on, so it surfaces as a
// FieldMissingError rather than a flattened message.
func (d Descriptor) Field(name string) (string, error) {
	v, ok := d.fields[name]
	if !ok {
		return "", FieldMissingError{Field: name}
	}

	return v, nil
}

// Name resolves the human-readable endpoint name.
func (d Descriptor) Name() (string, error) {
	v, err := d.Field(nameField)
	if err != nil {
		return "", errchain.Wrap(err, "parsing name of TCR API endpoint")
	}

	return v, nil
}

// Port resolves the endpoint port. The raw field is parsed as an 8-bit
// value; a parse failure propagates with its concrete strconv identity
// intact instead of being reinterpreted as a descriptor error.
func (d Descriptor) Port() (uint8, error) {
	raw, err := d.Field(portField)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, errchain.From(err)
	}

	return uint8(n), nil
}

// Owner resolves the endpoint owner. Nothing branches on a missing
// owner, so the failure is a one-off message.
func (d Descriptor) Owner() (string, error) {
	v, ok := d.fields[ownerField]
	if !ok {
		return "", errchain.New("endpoint owner is not recorded")
	}

	return v, nil
}
