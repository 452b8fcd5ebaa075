package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/internal/config"
	"github.com/alexiusacademia/gogyro/internal/logger"
	"github.com/alexiusacademia/gogyro/internal/version"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	// cfg holds the defaults in effect for the running command
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gogyro",
	Short: "Stellar rotation, convection and color relations",
	Long: `gogyro - Go Gyrochronology Toolkit

A CLI and library of closed-form relations between a star's
B-V color, effective temperature, age, rotation period and
convective turnover time.

Relations:
  - Angus et al. (2015) age-period-color
  - Meibom, Mathieu & Stassun (2009) Eqns 2 and 3
  - Noyes et al. (1984), Wright et al. (2011) and
    Cranmer & Saar (2011) turnover times
  - Sekiguchi & Fukugita (2000) B-V <-> Teff`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gogyro v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Gyrochronology Toolkit                               ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Rotation period from age and color, and age from period")
		fmt.Fprintln(out, "    • Convective turnover time and Rossby number")
		fmt.Fprintln(out, "    • B-V / effective temperature conversion")
		fmt.Fprintln(out, "    • Star catalogs and gyrochrone diagrams")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gogyro --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file with default logg, feh, relation and tau_model")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

// setup loads the config file, then applies logging flags on top of it.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	if err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	logger.L().Debug("config.loaded",
		"file", configFile, "relation", cfg.Relation, "tau_model", cfg.TauModel,
		"logg", cfg.Logg, "feh", cfg.FeH)
	return nil
}
