// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfmarks CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log.* settings before any subcommand runs.
var logger = slog.Default()

// rootCmd is the base command for the pdfmarks CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfmarks",
	Short: "Write bookmarks and page labels into a PDF from a CSV table of contents",
	Long: `pdfmarks reads a table of contents (Title, Page, Level) whose page numbers
are printed labels, in roman or arabic numerals, and turns them into PDF
bookmarks pointing at the right physical pages.

Roman and arabic numbering are located with --roman and --arabic, each a
"start,first" pair: the physical page the numbering starts on and the label
printed there. pdftk (or the built-in pdfcpu backend) writes the bookmarks
and the pagelabels utility writes the page-label metadata.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logConfig(), os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfmarks.yaml or ~/.config/pdfmarks/pdfmarks.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "toolkit backend: pdftk or pdfcpu (default pdftk)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")

	_ = viper.BindPFlag("tools.backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("tools.backend", "pdftk")
	viper.SetDefault("tools.pdftk", "pdftk")
	viper.SetDefault("tools.pagelabels", "pagelabels")
	viper.SetDefault("tools.timeout", 2*time.Minute)
	viper.SetDefault("tools.attempts", 1)
	viper.SetDefault("tools.retry_delay", time.Second)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfmarks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfmarks"))
		}
	}

	viper.SetEnvPrefix("PDFMARKS")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
