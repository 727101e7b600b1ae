// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Passmith using the
// Cobra library. It defines the root command, subcommands (passphrase,
// password, stats), flags, and the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/passmith/passmith/buildvars"
	"github.com/passmith/passmith/internal/config"
	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/logging"
	"github.com/passmith/passmith/internal/tui"
	"github.com/passmith/passmith/internal/wordlist"
)

// resolveVersion picks the version string to report: the linker-injected
// build variable when present, otherwise the module version recorded in the
// build info, otherwise a development placeholder.
func resolveVersion(info *debug.BuildInfo) string {
	if v := buildvars.VersionOrDefault(""); v != "" {
		return v
	}
	if info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

var cfgFile string
var verbose bool

var appConfig config.Config

// repo is the shared word repository, built once per invocation from the
// configured word source (or the built-in fallback list).
var repo *wordlist.Repository

// configDefaults are the baseline settings applied before any config file,
// environment variable, or flag.
var configDefaults = map[string]any{
	"language":             "en",
	"wordlist.file":        "",
	"wordlist.min_length":  wordlist.DefaultMinLength,
	"wordlist.max_length":  wordlist.DefaultMaxLength,
	"passphrase.words":     4,
	"passphrase.separator": "-",
	"password.length":      12,
}

// setupDefaultServices loads configuration and initializes logging, i18n,
// and the word repository. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	logging.SetDebug(verbose)

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, configDefaults, optionalConfigPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run, or the config file was deleted. Create a default one.
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// Log a warning but don't fail, as the app can run on defaults.
			logging.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Post-process config to ensure critical values are not empty, falling
	// back to defaults. This handles config files with empty values.
	if appConfig.Language == "" {
		appConfig.Language = configDefaults["language"].(string)
	}
	if appConfig.Wordlist.MinLength <= 0 {
		appConfig.Wordlist.MinLength = wordlist.DefaultMinLength
	}
	if appConfig.Wordlist.MaxLength <= 0 {
		appConfig.Wordlist.MaxLength = wordlist.DefaultMaxLength
	}

	i18n.Init(appConfig.Language)

	var src wordlist.Source
	if appConfig.Wordlist.File != "" {
		src = wordlist.FileSource{Path: appConfig.Wordlist.File}
	}
	repo = wordlist.Load(src, appConfig.Wordlist.MinLength, appConfig.Wordlist.MaxLength)
	logging.Debugf("word repository ready: %d words", repo.WordCount())

	return nil
}

// getConfigPathFromCli returns the config file path when the user explicitly
// set --config, and nil otherwise.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// viperConfigSaver persists the active configuration, picking up values the
// TUI pushed into the global viper (currently the language).
type viperConfigSaver struct{}

func (viperConfigSaver) Save() error {
	if lang := viper.GetString("language"); lang != "" {
		appConfig.Language = lang
	}
	return config.WriteConfigFile(&appConfig, false)
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passmith",
		Short: "Passmith generates memorable passphrases and strong passwords.",
		Long: `Passmith builds human-memorable passphrases from a word list and
random passwords from configurable character classes, and rates the
strength of both from their estimated entropy.

Running without a subcommand launches the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config and i18n are already initialized by PersistentPreRunE.
			tui.SetConfigSaver(viperConfigSaver{})
			return tui.Run(repo)
		},
	}
	info, _ := debug.ReadBuildInfo()
	cmd.Version = resolveVersion(info)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("wordlist.file", "", "Word list file (newline-separated)")
	cmd.PersistentFlags().Int("wordlist.min_length", wordlist.DefaultMinLength, "Minimum word length")
	cmd.PersistentFlags().Int("wordlist.max_length", wordlist.DefaultMaxLength, "Maximum word length")

	cmd.AddCommand(newPassphraseCmd())
	cmd.AddCommand(newPasswordCmd())
	cmd.AddCommand(newStatsCmd())

	return cmd
}
