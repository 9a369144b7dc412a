// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The gdiutil command inspects the resources of Windows executables and
// converts images into 32 bits/pixel bitmaps with per-pixel alpha.
//
// Usage:
//
//	gdiutil resources FILE
//	gdiutil extract FILE --type T --name N [-o OUT]
//	gdiutil decode (IN | --file FILE --type T --name N) -o OUT.bmp [--colorkey RRGGBB] [--size WxH]
//	gdiutil colorkey IN -o OUT.png --key RRGGBB
//
// The resources subcommand lists every resource of a PE file. Extract
// writes the bytes of one resource. Decode reads a single-frame PNG, from
// a file or from a module's resources, and writes it as a BMP, optionally
// making one color transparent. Colorkey does the same for any supported
// image format (PNG, BMP, TIFF, WebP) and writes a PNG.
//
// The --log-level, --log-format, --log-output and --lang flags default to
// the GDIUTIL_LOG_LEVEL, GDIUTIL_LOG_FORMAT, GDIUTIL_LOG_OUTPUT and
// GDIUTIL_LANG environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root, syncLog := newRootCmd()
	err := root.Execute()
	syncLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdiutil: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd returns the root command and a function that flushes the
// logger it installs. Call the function after Execute, whether or not
// Execute failed.
func newRootCmd() (*cobra.Command, func()) {
	cfg := NewConfig()
	var logger *zap.Logger

	root := &cobra.Command{
		Use:           "gdiutil",
		Short:         "Inspect PE resources and convert images to alpha bitmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			l, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			logger = l
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	flags.StringVar(&cfg.LogOutput, "log-output", cfg.LogOutput, "log destination: stderr, stdout or a file path")
	flags.StringVar(&cfg.Lang, "lang", cfg.Lang, "resource language: any, neutral or a LANGID such as 0x409")

	root.AddCommand(
		newResourcesCmd(),
		newExtractCmd(cfg),
		newDecodeCmd(cfg),
		newColorKeyCmd(),
	)
	return root, func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}
}
