package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/config"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/logging"
)

var (
	// Global flags
	verbose   bool
	outputDir string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "certgen",
	Short: "Operability certificates from the installations workbook",
	Long: `certgen issues LPG installation operability certificates without the web form.

Configuration is read from the environment (and .env), the same as the API server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Write the certificate of one location",
	Example: `  certgen generate --ubicacion 40012 --fecha 2025-11-03 --ingeniero ML`,
	RunE:    runGenerate,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print an installation and the tank summary its certificate would carry",
	RunE:  runShow,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "directory for rendered certificates (default OUTPUT_DIR)")

	for _, c := range []*cobra.Command{generateCmd, showCmd} {
		c.Flags().String("ubicacion", "", "location key")
		c.Flags().String("fecha", "", "inspection date, YYYY-MM-DD")
		c.Flags().String("ingeniero", "CT", "engineer code")
		_ = c.MarkFlagRequired("ubicacion")
		_ = c.MarkFlagRequired("fecha")
	}

	rootCmd.AddCommand(generateCmd, showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
