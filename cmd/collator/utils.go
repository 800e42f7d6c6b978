// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/urfave/cli"
)

// setupLogger sets up the global logger from the --log flag
func setupLogger(ctx *cli.Context) (level log.Level, err error) {
	level, err = getLogLevel(ctx.String(LogFlag.Name), log.Info)
	if err != nil {
		return 0, err
	}

	log.Patch(
		log.SetWriter(os.Stdout),
		log.SetCallerFile(true),
		log.SetCallerLine(true),
		log.SetLevel(level),
	)

	return level, nil
}

// expandDir expands a leading ~ to the home directory and
// returns the absolute path of the directory.
func expandDir(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Abs(dir)
}
