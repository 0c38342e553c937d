// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"encoding"
	"fmt"
	"reflect"
	"time"
)

// strategy enumerates the fixed resolution code paths a field can compile
// to, combining value shape (required/optional), parser (native/custom)
// and default handling. Custom parsers cannot carry a default, so there is
// no custom-with-default row.
type strategy int

const (
	optionalNative strategy = iota
	optionalCustom
	requiredCustom
	requiredNativeDefault
	requiredNative
)

// compiledField pairs a fieldSpec with the resolver emitted for it.
type compiledField struct {
	spec    fieldSpec
	resolve resolver
}

// classify validates the option combination on a field and selects its
// strategy. All failures here are declaration-time: they abort compilation
// before any environment variable is read.
func classify(spec fieldSpec) (strategy, error) {
	if spec.optional && spec.defaultKind != defaultNone {
		return 0, TagError{
			Field:  spec.name,
			Reason: "pointer fields are nil when unset and cannot also declare a default",
		}
	}
	if spec.deserializer != "" && spec.defaultKind != defaultNone {
		return 0, TagError{
			Field:  spec.name,
			Reason: "deserializer cannot be combined with a default",
		}
	}

	custom := spec.deserializer != ""
	if !custom && !nativelyParsable(spec.elem) {
		return 0, TagError{
			Field:  spec.name,
			Reason: fmt.Sprintf("type %s is not parsable from a string, register a deserializer for it", spec.elem),
		}
	}

	switch {
	case spec.optional && !custom:
		return optionalNative, nil
	case spec.optional:
		return optionalCustom, nil
	case custom:
		return requiredCustom, nil
	case spec.defaultKind != defaultNone:
		return requiredNativeDefault, nil
	default:
		return requiredNative, nil
	}
}

// compileField turns a fieldSpec into its resolver. Explicit defaults are
// parsed here, once, so a malformed default literal fails compilation
// instead of surfacing on the first bind with the variable unset.
func compileField(spec fieldSpec) (compiledField, error) {
	strat, err := classify(spec)
	if err != nil {
		return compiledField{}, err
	}

	var deserialize Deserializer
	if spec.deserializer != "" {
		deserialize = lookupDeserializer(spec.deserializer)
		if deserialize == nil {
			return compiledField{}, TagError{
				Field:  spec.name,
				Reason: fmt.Sprintf("unknown deserializer %q", spec.deserializer),
			}
		}
		deserialize = guard(deserialize)
	}

	var fallback reflect.Value
	switch spec.defaultKind {
	case defaultZero:
		fallback = reflect.Zero(spec.elem)
	case defaultExplicit:
		v := reflect.New(spec.elem)
		if err := parseNative(spec.defaultRaw, v.Interface()); err != nil {
			return compiledField{}, TagError{
				Field:  spec.name,
				Reason: fmt.Sprintf("default %q is not a valid %s: %s", spec.defaultRaw, spec.elem, err),
			}
		}
		fallback = v.Elem()
	}

	cf := compiledField{spec: spec}
	switch strat {
	case optionalNative:
		cf.resolve = resolveOptional(spec, parseNative)
	case optionalCustom:
		cf.resolve = resolveOptional(spec, deserialize)
	case requiredCustom:
		cf.resolve = resolveRequired(spec, deserialize)
	case requiredNativeDefault:
		cf.resolve = resolveWithDefault(spec, parseNative, fallback)
	case requiredNative:
		cf.resolve = resolveRequired(spec, parseNative)
	}
	return cf, nil
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// nativelyParsable reports whether the native parser can produce a value
// of type t from a raw string.
func nativelyParsable(t reflect.Type) bool {
	if t == durationType {
		return true
	}
	if t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}

	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
