// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envbind

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
)

type options struct {
	prefix     string
	env        Environment
	logHandler slog.Handler
}

// Option configures Compile and Bind.
type Option func(*options)

// Prefix prepends p verbatim to the lookup name of every field, so any
// separator must be included, e.g. "APP_".
func Prefix(p string) Option {
	return func(o *options) {
		o.prefix = p
	}
}

// From configures the Environment values are resolved against.
//
// Default is OS().
func From(env Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// LogHandler configures the slog.Handler which field resolutions are
// logged to at debug level. Lookup names and value sources are logged,
// values themselves never are.
//
// Default is a noop handler.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// Plan holds the compiled resolution logic for one struct type. Compiling
// once and binding per construction avoids re-walking the struct tags, but
// for typical load-config-at-startup usage the one-shot Bind is enough.
//
// A Plan is immutable after Compile and safe for concurrent use.
type Plan struct {
	typ    reflect.Type
	fields []compiledField
	env    Environment
	log    *slog.Logger
}

// Compile walks the exported fields of the struct type behind v, parses
// their env tags and selects a resolution strategy for each. It fails on
// the first unsupported tag option or invalid option combination, before
// any environment variable is read.
func Compile(v any, opts ...Option) (*Plan, error) {
	o := options{
		env:        OS(),
		logHandler: noopLogHandler{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	typ, err := structType(v)
	if err != nil {
		return nil, err
	}

	fields := make([]compiledField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		spec, ok, err := extract(typ.Field(i), o.prefix)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		spec.index = i

		cf, err := compileField(spec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, cf)
	}

	p := &Plan{
		typ:    typ,
		fields: fields,
		env:    o.env,
		log:    slog.New(o.logHandler),
	}
	return p, nil
}

// Bind resolves every field of the struct pointed to by v against the
// Plan's Environment. Fields resolve independently of each other, in
// declaration order, and the first failing field aborts the bind: v is
// then left partially written and should be discarded.
func (p *Plan) Bind(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Type() != p.typ {
		return fmt.Errorf("envbind: expected non-nil *%s, got %T", p.typ, v)
	}

	sv := rv.Elem()
	for _, f := range p.fields {
		source, err := f.resolve(p.env, sv.Field(f.spec.index))
		if err != nil {
			p.log.Debug(
				"failed to resolve environment variable",
				slog.String("name", f.spec.lookupName),
				slog.Any("error", err),
			)
			return err
		}

		p.log.Debug(
			"resolved environment variable",
			slog.String("name", f.spec.lookupName),
			slog.String("source", source),
		)
	}
	return nil
}

// Bind populates the struct pointed to by v from the process environment
// (or the Environment given via From). It is shorthand for Compile
// followed by Plan.Bind.
func Bind(v any, opts ...Option) error {
	p, err := Compile(v, opts...)
	if err != nil {
		return err
	}
	return p.Bind(v)
}

func structType(v any) (reflect.Type, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("envbind: expected non-nil pointer to a struct, got %T", v)
	}
	return rv.Elem().Type(), nil
}

type noopLogHandler struct{}

func (noopLogHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (noopLogHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h noopLogHandler) WithAttrs(_ []slog.Attr) slog.Handler        { return h }
func (h noopLogHandler) WithGroup(_ string) slog.Handler             { return h }
