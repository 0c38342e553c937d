// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Demonstrates file based secrets, the way Kubernetes and Docker mount
// them. The debug log shows where each value came from.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z5labs/envbind"
)

type Config struct {
	// DATABASE_PASSWORD or DATABASE_PASSWORD_FILE
	DatabasePassword string `env:"from_file"`

	// API_KEY or API_KEY_FILE, nil when neither is set
	APIKey *string `env:"from_file"`
}

func main() {
	dir, err := os.MkdirTemp("", "secrets")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "database_password")
	err = os.WriteFile(path, []byte("s3cr3t\n"), 0o600)
	if err != nil {
		log.Fatal(err)
	}
	os.Setenv("DATABASE_PASSWORD_FILE", path)

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})

	var cfg Config
	err = envbind.Bind(&cfg, envbind.LogHandler(h))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Database Password:", cfg.DatabasePassword)
	fmt.Println("API Key set:", cfg.APIKey != nil)
}
