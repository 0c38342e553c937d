// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// envdemo resolves a sample configuration against the current process
// environment and prints the effective values. Useful for checking what
// a deployment would actually see.
package main

import (
	"fmt"
	"os"

	"github.com/z5labs/envbind"

	"github.com/spf13/cobra"
)

type Config struct {
	DatabaseURL string `env:"default=postgres://localhost/db"`

	Port uint16 `env:"default=8080"`

	Debug bool `env:"default"`

	APIKey *string `env:"from_file"`
}

func main() {
	var prefix string

	cmd := &cobra.Command{
		Use:          "envdemo",
		Short:        "Print the configuration resolved from the environment",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg Config
			err := envbind.Bind(&cfg, envbind.Prefix(prefix))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Database URL:", cfg.DatabaseURL)
			fmt.Fprintln(out, "Port:", cfg.Port)
			fmt.Fprintln(out, "Debug:", cfg.Debug)
			if cfg.APIKey == nil {
				fmt.Fprintln(out, "API Key: <unset>")
			} else {
				fmt.Fprintln(out, "API Key: <set>")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix applied to every variable name, e.g. APP_")

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
