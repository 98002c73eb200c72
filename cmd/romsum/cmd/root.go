package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iamNilotpal/romsum/config"
	"github.com/iamNilotpal/romsum/pkg/logger"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "romsum",
	Short: "16-bit checksums for cartridge images",
	Long: `romsum computes the 16-bit accumulation checksum of binary cartridge
images and reports it alongside its bitwise complement, the pair stored in
cartridge headers. Byte-wise, big-endian word-wise, and mirrored two-section
sums are supported, with transparent decoding of .zst and .gz archives.

Checksums go to stdout; logging stays on stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(verifyCmd)
}

// setup resolves configuration and builds the logger shared by all
// subcommands. Flag overrides win over the config file.
func setup() (*config.Config, *zap.SugaredLogger, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.NewWithLevel("romsum", level), nil
}
