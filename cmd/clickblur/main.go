/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"clickblur/internal/config"
	"clickblur/internal/crash"
	"clickblur/internal/editor"
	applog "clickblur/internal/log"
	"clickblur/internal/ui"
	"clickblur/internal/version"
)

// runUI is replaced in tests, which have no display.
var runUI = ui.Run

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "clickblur <image>",
		Short: "Blur regions of an image by clicking on them",
		Long: `Open an image in a window and blur circular regions by clicking.

  click   blur under the cursor       +/=  -   brush radius
  ]  [    blur strength               u        undo last click
  q       save <name>_blurred.<ext>   Esc      quit without saving`,
		Version:       version.String(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], stdout)
		},
	}
}

func run(path string, stdout io.Writer) error {
	envErr := godotenv.Load()
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithOperation(applog.WithComponent("cli"), "blur")
	if envErr != nil {
		l.Debug("no .env file loaded", slog.Any("err", envErr))
	}
	var pe *config.ParseError
	if errors.As(cfgErr, &pe) {
		l.Warn("config ignored, using defaults", slog.String("path", pe.Path), slog.Any("err", pe.Err))
	}
	logEnvOverrides(l)
	defer crash.Recover(path)

	opts := editor.OptionsFromConfig(cfg)
	opts.Logger = applog.WithComponent("editor")
	ed, err := editor.New(path, opts)
	if err != nil {
		l.Error("load failed", slog.Any("err", err))
		return err
	}
	if err := runUI(ed); err != nil {
		return err
	}
	if r := ed.Result(); r.Saved {
		fmt.Fprintf(stdout, "Saved blurred image to: %s\n", r.Path)
	} else {
		fmt.Fprintln(stdout, "Exited without saving.")
	}
	return nil
}

// logEnvOverrides records which config keys were taken from CLB_* variables.
func logEnvOverrides(l *slog.Logger) {
	for _, key := range config.OverridableKeys {
		if env, ok := config.EnvOverrideFor(key); ok {
			l.Info("config overridden by environment", slog.String("key", key), slog.String("env", env))
		}
	}
}
