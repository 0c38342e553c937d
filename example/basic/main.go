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
	DatabaseURL string

	ServerAddr string `env:"default=127.0.0.1:8080"`

	MaxConnections uint32 `env:"default=10"`

	DebugMode bool `env:"default"`
}

func main() {
	os.Setenv("DATABASE_URL", "postgres://localhost/db")

	var cfg Config
	err := envbind.Bind(&cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Configuration:")
	fmt.Println("  Database URL:", cfg.DatabaseURL)
	fmt.Println("  Server Addr:", cfg.ServerAddr)
	fmt.Println("  Max Connections:", cfg.MaxConnections)
	fmt.Println("  Debug Mode:", cfg.DebugMode)
}
