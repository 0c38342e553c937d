// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/z5labs/envbind/internal/try"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Deserializer parses a raw string into the value pointed to by into.
// Deserializers are referenced from env tags by their registered name.
type Deserializer func(raw string, into any) error

var deserializers sync.Map // string -> Deserializer

// RegisterDeserializer makes a Deserializer available to env tags under
// the given name. Registering an already used name overwrites the earlier
// entry. The names "json", "yaml" and "csv" are registered out of the box.
//
// Registration must happen before the struct type referencing the name is
// compiled; an unresolved name fails compilation.
func RegisterDeserializer(name string, d Deserializer) {
	deserializers.Store(name, d)
}

func lookupDeserializer(name string) Deserializer {
	v, ok := deserializers.Load(name)
	if !ok {
		return nil
	}
	return v.(Deserializer)
}

func init() {
	RegisterDeserializer("json", func(raw string, into any) error {
		return json.Unmarshal([]byte(raw), into)
	})
	RegisterDeserializer("yaml", func(raw string, into any) error {
		return yaml.Unmarshal([]byte(raw), into)
	})
	RegisterDeserializer("csv", parseCommaSeparated)
}

// parseCommaSeparated splits a comma separated list into a []string,
// trimming surrounding space and dropping empty items.
func parseCommaSeparated(raw string, into any) error {
	target, ok := into.(*[]string)
	if !ok {
		return fmt.Errorf("csv deserializer only supports []string fields, got %T", into)
	}

	items := strings.Split(raw, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	*target = out
	return nil
}

// guard shields the caller from panicking user deserializers.
func guard(d Deserializer) Deserializer {
	return func(raw string, into any) (err error) {
		defer try.Recover(&err)
		return d(raw, into)
	}
}

// parseNative converts a raw string into the value pointed to by into. It
// covers plain strings, booleans, numbers, time.Duration and any type
// implementing encoding.TextUnmarshaler.
func parseNative(raw string, into any) error {
	// Weak decoding coerces an empty string to the zero value for bool
	// and numeric targets. A present-but-empty variable must fail like
	// any other malformed value, so reject it before decoding.
	if t := reflect.TypeOf(into).Elem(); raw == "" && !parsableFromEmpty(t) {
		return fmt.Errorf("cannot parse an empty string as %s", t)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           into,
		WeaklyTypedInput: true,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// parsableFromEmpty reports whether an empty raw string is a value of
// type t rather than a parse failure. Strings may legitimately be empty
// and a TextUnmarshaler decides for itself.
func parsableFromEmpty(t reflect.Type) bool {
	if t.Kind() == reflect.String {
		return true
	}
	if t == durationType {
		return false
	}
	return t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, err
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != durationType || f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		return time.ParseDuration(data.(string))
	}
}
