// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envbind binds environment variables to the fields of statically
// declared configuration structs.
//
// Field names map to UPPER_SNAKE_CASE variable names by default and the
// env struct tag adjusts the mapping per field:
//
//	type Config struct {
//	    DatabaseURL string                                 // DATABASE_URL, required
//	    Port        uint16        `env:"default=8080"`     // PORT, 8080 when unset
//	    Debug       bool          `env:"default"`          // DEBUG, zero value when unset
//	    Timeout     time.Duration `env:"default=30s"`      // TIMEOUT
//	    Redis       string        `env:"REDIS_URL"`        // explicit name override
//	    Version     *string                                // VERSION, nil when unset
//	}
//
//	var cfg Config
//	err := envbind.Bind(&cfg)
//
// # Tag options
//
// Options are comma separated. A leading bare item overrides the variable
// name, as does name=X. The remaining options are default (zero value of
// the field type), default=<literal>, from_file and deserializer=<name>.
// Any other option fails compilation, as do contradictory combinations:
// a pointer field cannot declare a default, and neither can a field using
// a custom deserializer.
//
// # File based secrets
//
// Fields tagged from_file also accept a {NAME}_FILE variable holding a
// path whose trimmed file contents supply the value. This fits mounted
// secrets on Kubernetes and Docker:
//
//	type Config struct {
//	    APIKey string `env:"from_file"` // API_KEY or API_KEY_FILE
//	}
//
// A directly set variable always wins over its _FILE counterpart, so
// local overrides beat mounted files. A set _FILE variable pointing at an
// unreadable path is an error, never silently treated as unset.
//
// # Optional fields
//
// Pointer fields are optional: when neither the variable nor its file
// indirection is set the pointer stays nil and no error is reported.
//
// # Custom deserializers
//
// Types beyond strings, booleans, numbers, time.Duration and
// encoding.TextUnmarshaler implementations need a deserializer. The names
// json, yaml and csv are built in, and RegisterDeserializer adds more:
//
//	envbind.RegisterDeserializer("seconds", func(raw string, into any) error {
//	    secs, err := strconv.ParseUint(raw, 10, 64)
//	    if err != nil {
//	        return err
//	    }
//	    *(into.(*time.Duration)) = time.Duration(secs) * time.Second
//	    return nil
//	})
//
//	type Config struct {
//	    Tags    []string      `env:"deserializer=json"`    // TAGS='["a","b"]'
//	    Hosts   []string      `env:"deserializer=csv"`     // HOSTS=a, b, c
//	    Timeout time.Duration `env:"deserializer=seconds"` // TIMEOUT=30
//	}
//
// # Prefixes
//
// The Prefix option namespaces every variable of a struct. The prefix is
// prepended verbatim, separator included:
//
//	err := envbind.Bind(&cfg, envbind.Prefix("APP_")) // APP_PORT, APP_DATABASE_URL, ...
//
// # Errors
//
// Resolution stops at the first failing field. Runtime failures are
// MissingError, FileReadError or ParseError; tag problems surface earlier,
// from compilation, as TagError. All are matchable with errors.As.
package envbind
