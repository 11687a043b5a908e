// asciiwar is a two-player, turn-based tactics game played in the terminal.
//
// Usage:
//
//	asciiwar                      - Play the built-in match
//	asciiwar play --match m.json  - Play a custom match definition
//	asciiwar layout               - Print the match layout
//	asciiwar replay down,confirm  - Replay inputs and print the resulting state
//
// Global flags:
//
//	--config <path>     - Settings file (default search: ~/.asciiwar/config.yaml, ./configs/asciiwar.yaml)
//	--match <path>      - JSON match definition
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
//	--no-telemetry      - Disable trace export
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/asciiwar/internal/config"
	"github.com/samdwyer/asciiwar/internal/game"
	"github.com/samdwyer/asciiwar/internal/match"
	"github.com/samdwyer/asciiwar/internal/telemetry"
	"github.com/samdwyer/asciiwar/internal/ui"
)

var (
	// Global flags
	flagConfig      string
	flagMatch       string
	flagLogFile     string
	flagLogLevel    string
	flagNoTelemetry bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "asciiwar",
	Short:         "Two-player grid tactics in your terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the match layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd.Context(), settings, nil)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatASCII(engine.Snapshot()))
		return nil
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay <inputs>",
	Short: "Replay comma separated inputs (up, down, left, right, confirm, none) and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := parseScript(args[0])
		if err != nil {
			return err
		}
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd.Context(), settings, newStderrLogger(cmd.ErrOrStderr(), settings))
		if err != nil {
			return err
		}
		if err := engine.Run(cmd.Context(), &script); err != nil {
			return err
		}
		snap := engine.Snapshot()
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatASCII(snap))
		fmt.Fprintln(cmd.OutOrStdout(), ui.StatusLine(snap))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file")
	rootCmd.PersistentFlags().StringVar(&flagMatch, "match", "", "JSON match definition (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoTelemetry, "no-telemetry", false, "Disable trace export")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(replayCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	stderr := log.NewWithOptions(os.Stderr, log.Options{Prefix: "asciiwar"})

	// Makes OTEL_EXPORTER_OTLP_* available for local development
	if err := godotenv.Load(); err != nil {
		stderr.Debug(".env file not loaded", "error", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	shutdown, err := telemetry.Setup(ctx, settings.Telemetry)
	if err != nil {
		stderr.Warn("telemetry setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				stderr.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	logger, closeLog, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := game.New(ctx, game.Config{
		MatchFile: settings.MatchFile,
		Keys:      settings.Keys,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagMatch != "" {
		settings.MatchFile = flagMatch
	}
	if flagLogFile != "" {
		settings.LogFile = flagLogFile
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if flagNoTelemetry {
		settings.Telemetry = false
	}
	return settings, nil
}

// newLogger returns a file logger, or a discarding one when no file is set,
// since the terminal belongs to the game screen.
func newLogger(settings config.Settings) (*log.Logger, func(), error) {
	if settings.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "asciiwar",
		Level:           parseLevel(settings.LogLevel),
	})
	return logger, func() { f.Close() }, nil
}

// newStderrLogger logs headless commands to w at the configured level.
func newStderrLogger(w io.Writer, settings config.Settings) *log.Logger {
	return log.NewWithOptions(w, log.Options{Prefix: "asciiwar", Level: parseLevel(settings.LogLevel)})
}

func newEngine(ctx context.Context, settings config.Settings, logger *log.Logger) (*match.Engine, error) {
	def, err := game.LoadMatchDef(settings.MatchFile)
	if err != nil {
		return nil, err
	}
	return match.NewMatch(ctx, def, match.WithLogger(logger))
}

func parseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func parseScript(s string) (match.Script, error) {
	var script match.Script
	for _, word := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(word)) {
		case "up":
			script = append(script, match.InputUp)
		case "down":
			script = append(script, match.InputDown)
		case "left":
			script = append(script, match.InputLeft)
		case "right":
			script = append(script, match.InputRight)
		case "confirm", "space":
			script = append(script, match.InputConfirm)
		case "none":
			script = append(script, match.InputUnrecognized)
		case "":
		default:
			return nil, fmt.Errorf("unknown input %q", word)
		}
	}
	return script, nil
}
