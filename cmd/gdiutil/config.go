// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gdiutil/gdiutil"
	"github.com/gdiutil/gdiutil/dib"
	"github.com/gdiutil/gdiutil/res"
)

// Config holds the settings shared by all subcommands.
type Config struct {
	LogLevel  string // debug, info, warn or error
	LogFormat string // console or json
	LogOutput string // stderr, stdout or a file path
	Lang      string // resource language: any, neutral, or a LANGID
}

// NewConfig returns the defaults, overridden by GDIUTIL_* environment
// variables.
func NewConfig() *Config {
	return &Config{
		LogLevel:  getEnvOrDefault("GDIUTIL_LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("GDIUTIL_LOG_FORMAT", "console"),
		LogOutput: getEnvOrDefault("GDIUTIL_LOG_OUTPUT", "stderr"),
		Lang:      getEnvOrDefault("GDIUTIL_LANG", "any"),
	}
}

func getEnvOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: want console or json", c.LogFormat)
	}
	if c.LogOutput == "" {
		return fmt.Errorf("empty log output")
	}
	if _, err := parseLang(c.Lang); err != nil {
		return err
	}
	return nil
}

// Language returns the parsed resource language. Call Validate first.
func (c *Config) Language() res.Lang {
	l, _ := parseLang(c.Lang)
	return l
}

// parseLang parses "any", "neutral", or a LANGID in decimal or 0x hex.
func parseLang(s string) (res.Lang, error) {
	switch strings.ToLower(s) {
	case "", "any":
		return res.AnyLang, nil
	case "neutral":
		return res.LangNeutral, nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid language %q: want any, neutral or a LANGID such as 0x409", s)
	}
	return res.Lang(n), nil
}

// parseColorKey parses a color written as RRGGBB, with an optional leading
// '#'.
func parseColorKey(s string) (dib.ColorRef, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) != 6 {
		return 0, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	return dib.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// newLogger builds the zap logger described by c and installs it as the
// library logger.
func newLogger(c *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	var zc zap.Config
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{c.LogOutput}
	zc.DisableStacktrace = level > zapcore.DebugLevel
	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	gdiutil.SetLogger(zapr.NewLogger(logger))
	return logger, nil
}
