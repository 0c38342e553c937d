// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"io/fs"
	"os"
	"reflect"
	"strings"
	"unicode"
)

// Environment is the read-only view of process state which values are
// resolved against. Implementations must be safe for sequential reuse;
// nothing here mutates the underlying store.
type Environment interface {
	// LookupEnv retrieves the value of the named variable and reports
	// whether it is set at all.
	LookupEnv(name string) (string, bool)

	// ReadFile reads the file referenced by a _FILE indirection variable.
	ReadFile(path string) ([]byte, error)
}

// OS returns the Environment backed by the current process: os.LookupEnv
// and os.ReadFile. It is the default for Compile and Bind.
func OS() Environment {
	return osEnvironment{}
}

type osEnvironment struct{}

func (osEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (osEnvironment) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Map is an in-memory Environment. It is mainly useful for tests and
// examples, where variables come from Values and _FILE indirections are
// served from Files (e.g. a fstest.MapFS).
type Map struct {
	Values map[string]string
	Files  fs.FS
}

// LookupEnv implements the Environment interface.
func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m.Values[name]
	return v, ok
}

// ReadFile implements the Environment interface.
func (m Map) ReadFile(path string) ([]byte, error) {
	if m.Files == nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return fs.ReadFile(m.Files, path)
}

// Labels for where a field's value came from. Surfaced only through the
// debug log.
const (
	sourceEnv     = "env"
	sourceFile    = "file"
	sourceDefault = "default"
	sourceAbsent  = "absent"
)

// lookupRaw obtains the raw string for a variable. The direct variable
// always wins over file indirection, so local overrides beat mounted
// secret files. A set _FILE variable pointing at an unreadable file is
// fatal, never treated as absent. An absent value is not an error at this
// layer; each resolver decides what absence means.
func lookupRaw(env Environment, name string, fromFile bool) (raw string, source string, err error) {
	if v, ok := env.LookupEnv(name); ok {
		return v, sourceEnv, nil
	}

	if fromFile {
		fileVar := name + "_FILE"
		if path, ok := env.LookupEnv(fileVar); ok {
			b, err := env.ReadFile(path)
			if err != nil {
				return "", sourceFile, FileReadError{Name: fileVar, Path: path, Cause: err}
			}
			return strings.TrimRightFunc(string(b), unicode.IsSpace), sourceFile, nil
		}
	}

	return "", sourceAbsent, nil
}

// resolver populates one struct field from the environment, reporting
// where the value came from.
type resolver func(env Environment, target reflect.Value) (source string, err error)

// resolveRequired emits the resolver for a required field: absence is
// fatal, as is a value the parser rejects.
func resolveRequired(spec fieldSpec, parse Deserializer) resolver {
	return func(env Environment, target reflect.Value) (string, error) {
		raw, source, err := lookupRaw(env, spec.lookupName, spec.fromFile)
		if err != nil {
			return source, err
		}
		if source == sourceAbsent {
			return source, MissingError{Name: spec.lookupName}
		}

		err = parse(raw, target.Addr().Interface())
		if err != nil {
			return source, ParseError{Name: spec.lookupName, Type: spec.elem.String(), Cause: err}
		}
		return source, nil
	}
}

// resolveWithDefault emits the resolver for a required field carrying a
// default. The default covers absence only: a present but malformed value
// still fails.
func resolveWithDefault(spec fieldSpec, parse Deserializer, fallback reflect.Value) resolver {
	return func(env Environment, target reflect.Value) (string, error) {
		raw, source, err := lookupRaw(env, spec.lookupName, spec.fromFile)
		if err != nil {
			return source, err
		}
		if source == sourceAbsent {
			target.Set(fallback)
			return sourceDefault, nil
		}

		err = parse(raw, target.Addr().Interface())
		if err != nil {
			return source, ParseError{Name: spec.lookupName, Type: spec.elem.String(), Cause: err}
		}
		return source, nil
	}
}

// resolveOptional emits the resolver for a pointer field: absence leaves
// the pointer nil, while a present but malformed value still fails.
func resolveOptional(spec fieldSpec, parse Deserializer) resolver {
	return func(env Environment, target reflect.Value) (string, error) {
		raw, source, err := lookupRaw(env, spec.lookupName, spec.fromFile)
		if err != nil {
			return source, err
		}
		if source == sourceAbsent {
			target.Set(reflect.Zero(target.Type()))
			return source, nil
		}

		v := reflect.New(spec.elem)
		err = parse(raw, v.Interface())
		if err != nil {
			return source, ParseError{Name: spec.lookupName, Type: spec.elem.String(), Cause: err}
		}
		target.Set(v)
		return source, nil
	}
}
