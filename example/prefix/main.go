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
	Name string // APP_NAME

	Port uint16 `env:"default=8080"` // APP_PORT

	DatabaseURL string `env:"DATABASE_CONNECTION_STRING"` // APP_DATABASE_CONNECTION_STRING
}

func main() {
	os.Setenv("APP_NAME", "my-service")
	os.Setenv("APP_DATABASE_CONNECTION_STRING", "postgres://localhost/db")

	var cfg Config
	err := envbind.Bind(&cfg, envbind.Prefix("APP_"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Name:", cfg.Name)
	fmt.Println("Port:", cfg.Port)
	fmt.Println("Database URL:", cfg.DatabaseURL)
}
