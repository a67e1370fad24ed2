package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mnightingale/transcode"
	"github.com/mnightingale/transcode/internal/config"
)

// Version can be overridden at build time via -ldflags.
var Version = "0.1.0-dev"

var (
	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "transcode",
	Short:             "Convert text between ASCII, UTF-8, UTF-16 and UTF-32",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.Version = Version

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to "+config.FileName+" (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger before any subcommand
// runs. Flags given on the command line override the file.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	var err error
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	logger, err = newLogger(cfg.Log)
	if err != nil {
		return err
	}
	transcode.SetLogger(logger)
	if path != "" {
		logger.Debug("loaded config", zap.String("path", path))
	}

	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color %q (want auto|on|off)", mode)
	}
	return nil
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// encodingFlag resolves an encoding flag, falling back to the configured value.
func encodingFlag(cmd *cobra.Command, name, fallback string) (transcode.Encoding, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		v = fallback
	}
	enc, err := transcode.ParseEncoding(v)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return enc, nil
}
