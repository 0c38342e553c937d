// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	stringType := reflect.TypeOf("")

	testCases := []struct {
		name     string
		spec     fieldSpec
		expected strategy
	}{
		{
			name:     "optional without deserializer",
			spec:     fieldSpec{name: "F", optional: true, elem: stringType},
			expected: optionalNative,
		},
		{
			name:     "optional with deserializer",
			spec:     fieldSpec{name: "F", optional: true, elem: stringType, deserializer: "json"},
			expected: optionalCustom,
		},
		{
			name:     "required with deserializer",
			spec:     fieldSpec{name: "F", elem: stringType, deserializer: "json"},
			expected: requiredCustom,
		},
		{
			name:     "required with explicit default",
			spec:     fieldSpec{name: "F", elem: stringType, defaultKind: defaultExplicit, defaultRaw: "x"},
			expected: requiredNativeDefault,
		},
		{
			name:     "required with zero default",
			spec:     fieldSpec{name: "F", elem: stringType, defaultKind: defaultZero},
			expected: requiredNativeDefault,
		},
		{
			name:     "required without default",
			spec:     fieldSpec{name: "F", elem: stringType},
			expected: requiredNative,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			strat, err := classify(tc.spec)
			require.NoError(t, err)
			require.Equal(t, tc.expected, strat)
		})
	}
}

func TestClassify_rejections(t *testing.T) {
	stringType := reflect.TypeOf("")

	testCases := []struct {
		name string
		spec fieldSpec
	}{
		{
			name: "optional with explicit default",
			spec: fieldSpec{name: "F", optional: true, elem: stringType, defaultKind: defaultExplicit, defaultRaw: "x"},
		},
		{
			name: "optional with zero default",
			spec: fieldSpec{name: "F", optional: true, elem: stringType, defaultKind: defaultZero},
		},
		{
			name: "deserializer with explicit default",
			spec: fieldSpec{name: "F", elem: stringType, deserializer: "json", defaultKind: defaultExplicit, defaultRaw: "x"},
		},
		{
			name: "deserializer with zero default",
			spec: fieldSpec{name: "F", elem: stringType, deserializer: "json", defaultKind: defaultZero},
		},
		{
			name: "unparsable type without deserializer",
			spec: fieldSpec{name: "F", elem: reflect.TypeOf([]int(nil))},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := classify(tc.spec)

			var terr TagError
			require.ErrorAs(t, err, &terr)
			require.Equal(t, "F", terr.Field)
		})
	}
}

func TestNativelyParsable(t *testing.T) {
	testCases := []struct {
		name     string
		typ      reflect.Type
		expected bool
	}{
		{name: "string", typ: reflect.TypeOf(""), expected: true},
		{name: "bool", typ: reflect.TypeOf(false), expected: true},
		{name: "int", typ: reflect.TypeOf(0), expected: true},
		{name: "uint16", typ: reflect.TypeOf(uint16(0)), expected: true},
		{name: "float64", typ: reflect.TypeOf(0.0), expected: true},
		{name: "duration", typ: reflect.TypeOf(time.Duration(0)), expected: true},
		{name: "text unmarshaler", typ: reflect.TypeOf(time.Time{}), expected: true},
		{name: "string slice", typ: reflect.TypeOf([]string(nil)), expected: false},
		{name: "map", typ: reflect.TypeOf(map[string]string(nil)), expected: false},
		{name: "plain struct", typ: reflect.TypeOf(struct{ X int }{}), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, nativelyParsable(tc.typ))
		})
	}
}

func TestCompileField(t *testing.T) {
	t.Run("unknown deserializer fails", func(t *testing.T) {
		spec := fieldSpec{name: "F", elem: reflect.TypeOf(""), deserializer: "no-such-parser"}

		_, err := compileField(spec)

		var terr TagError
		require.ErrorAs(t, err, &terr)
		require.Contains(t, terr.Error(), "no-such-parser")
	})

	t.Run("malformed default literal fails", func(t *testing.T) {
		spec := fieldSpec{
			name:        "F",
			elem:        reflect.TypeOf(uint16(0)),
			defaultKind: defaultExplicit,
			defaultRaw:  "not-a-number",
		}

		_, err := compileField(spec)

		var terr TagError
		require.ErrorAs(t, err, &terr)
		require.Contains(t, terr.Error(), "not-a-number")
	})

	t.Run("default literal is parsed once at compile time", func(t *testing.T) {
		spec := fieldSpec{
			name:        "F",
			lookupName:  "F",
			elem:        reflect.TypeOf(time.Duration(0)),
			defaultKind: defaultExplicit,
			defaultRaw:  "1m30s",
		}

		cf, err := compileField(spec)
		require.NoError(t, err)

		target := reflect.New(spec.elem).Elem()
		source, err := cf.resolve(Map{}, target)
		require.NoError(t, err)
		require.Equal(t, sourceDefault, source)
		require.Equal(t, 90*time.Second, target.Interface())
	})
}
