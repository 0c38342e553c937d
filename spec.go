// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

type defaultKind int

const (
	defaultNone defaultKind = iota

	// defaultZero corresponds to a bare "default" option: the zero
	// value of the field type stands in for an absent variable.
	defaultZero

	// defaultExplicit corresponds to "default=<literal>".
	defaultExplicit
)

// fieldSpec is the normalized attribute model of one struct field. It is
// built once per field while compiling a Plan and has no runtime state.
type fieldSpec struct {
	name  string // Go field name
	index int    // field index within the struct

	// lookupName is the fully resolved variable name: record prefix plus
	// either the explicit override or the derived UPPER_SNAKE field name.
	lookupName string

	// optional reports whether the field is a pointer. Absence of a value
	// leaves the pointer nil instead of failing.
	optional bool

	// elem is the value type: the field type itself, or the pointer
	// element type for optional fields.
	elem reflect.Type

	fromFile bool

	defaultKind defaultKind
	defaultRaw  string

	// deserializer is the registered name of a custom parse function,
	// empty when the native parser applies.
	deserializer string
}

// extract builds the fieldSpec for a single struct field. It reports
// ok=false for fields which do not participate in resolution (unexported
// fields). Cross-option validation is left to compileField.
func extract(field reflect.StructField, prefix string) (spec fieldSpec, ok bool, err error) {
	if !field.IsExported() {
		return fieldSpec{}, false, nil
	}

	spec = fieldSpec{
		name: field.Name,
		elem: field.Type,
	}
	if field.Type.Kind() == reflect.Pointer {
		spec.optional = true
		spec.elem = field.Type.Elem()
	}

	var override string
	if tag, tagged := field.Tag.Lookup("env"); tagged && tag != "" {
		for i, opt := range strings.Split(tag, ",") {
			key, value, hasValue := strings.Cut(opt, "=")
			switch {
			case key == "name" && hasValue:
				override = value
			case key == "default" && hasValue:
				spec.defaultKind = defaultExplicit
				spec.defaultRaw = value
			case key == "default":
				spec.defaultKind = defaultZero
				spec.defaultRaw = ""
			case key == "from_file" && !hasValue:
				spec.fromFile = true
			case key == "deserializer" && hasValue:
				spec.deserializer = value
			case i == 0 && !hasValue:
				// json tag convention: a leading bare item is the
				// variable name override. May be empty.
				override = key
			default:
				return fieldSpec{}, false, TagError{
					Field:  field.Name,
					Reason: fmt.Sprintf("unsupported option %q", opt),
				}
			}
		}
	}

	base := override
	if base == "" {
		base = upperSnake(field.Name)
	}
	spec.lookupName = prefix + base
	return spec, true, nil
}

// upperSnake derives the variable name for an untagged field:
// Port -> PORT, MaxConnections -> MAX_CONNECTIONS. Acronym runs stay
// intact: DatabaseURL -> DATABASE_URL, HTTPPort -> HTTP_PORT.
func upperSnake(s string) string {
	rs := []rune(s)

	var b strings.Builder
	b.Grow(len(rs) + len(rs)/2)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
