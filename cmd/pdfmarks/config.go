// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

// envKeyReplacer maps tools.pdftk to PDFMARKS_TOOLS_PDFTK.
var envKeyReplacer = strings.NewReplacer(".", "_")

func toolsConfig() types.ToolsConfig {
	return types.ToolsConfig{
		Backend:    types.Backend(viper.GetString("tools.backend")),
		Pdftk:      viper.GetString("tools.pdftk"),
		PageLabels: viper.GetString("tools.pagelabels"),
		Timeout:    viper.GetDuration("tools.timeout"),
		Attempts:   viper.GetInt("tools.attempts"),
		RetryDelay: viper.GetDuration("tools.retry_delay"),
	}
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	}
}

// newLogger builds the slog logger described by cfg, writing to w.
func newLogger(cfg types.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", cfg.Format)
}

// addSchemeFlags registers --roman and --arabic on cmd.
func addSchemeFlags(cmd *cobra.Command) {
	cmd.Flags().String("roman", "", `roman numbering as "start,first" (default: no roman pages)`)
	cmd.Flags().String("arabic", "1,1", `arabic numbering as "start,first"`)
}

// schemesFromFlags reads --roman and --arabic. An empty value disables the system.
func schemesFromFlags(cmd *cobra.Command) (types.Schemes, error) {
	var s types.Schemes
	for _, f := range []struct {
		name string
		dst  **types.NumberingScheme
	}{
		{"roman", &s.Roman},
		{"arabic", &s.Arabic},
	} {
		v, _ := cmd.Flags().GetString(f.name)
		if strings.TrimSpace(v) == "" {
			continue
		}
		sc, err := types.ParseScheme(v)
		if err != nil {
			return s, fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = &sc
	}
	return s, nil
}
