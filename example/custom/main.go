// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Demonstrates the built in json, yaml and csv deserializers along with
// registering a custom one.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/z5labs/envbind"
)

type Config struct {
	AppName string

	// JSON list: TAGS='["prod","api","v2"]'
	Tags []string `env:"deserializer=json"`

	// Comma separated: HOSTS='a.example.com, b.example.com'
	Hosts []string `env:"deserializer=csv"`

	// YAML mapping: LIMITS='cpu: 80
	// memory: 512'
	Limits map[string]int `env:"deserializer=yaml"`

	// Plain number of seconds: RETRY_INTERVAL=30
	RetryInterval time.Duration `env:"deserializer=seconds"`
}

func main() {
	envbind.RegisterDeserializer("seconds", func(raw string, into any) error {
		secs, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		*(into.(*time.Duration)) = time.Duration(secs) * time.Second
		return nil
	})

	os.Setenv("APP_NAME", "my-app")
	os.Setenv("TAGS", `["prod","api","v2"]`)
	os.Setenv("HOSTS", "a.example.com, b.example.com")
	os.Setenv("LIMITS", "cpu: 80\nmemory: 512")
	os.Setenv("RETRY_INTERVAL", "30")

	var cfg Config
	err := envbind.Bind(&cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("App Name:", cfg.AppName)
	fmt.Println("Tags:", cfg.Tags)
	fmt.Println("Hosts:", cfg.Hosts)
	fmt.Println("Limits:", cfg.Limits)
	fmt.Println("Retry Interval:", cfg.RetryInterval)
}
