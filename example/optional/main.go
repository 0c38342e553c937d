// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/z5labs/envbind"
)

type Config struct {
	AppName string

	// Pointer fields are optional: nil when unset.
	APIKey *string
	Port   *uint16
	Debug  *bool

	DatabasePassword *string `env:"from_file"`
}

func main() {
	os.Setenv("APP_NAME", "my-application")
	os.Setenv("PORT", "8080")
	// API_KEY, DEBUG, DATABASE_PASSWORD left unset

	var cfg Config
	err := envbind.Bind(&cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Configuration:")
	fmt.Println("  App Name:", cfg.AppName)
	fmt.Println("  API Key:", format(cfg.APIKey))
	fmt.Println("  Port:", format(cfg.Port))
	fmt.Println("  Debug:", format(cfg.Debug))
	fmt.Println("  Database Password:", format(cfg.DatabasePassword))
}

func format[T any](v *T) string {
	if v == nil {
		return "<unset>"
	}
	return fmt.Sprint(*v)
}
