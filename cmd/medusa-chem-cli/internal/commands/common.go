package commands

import (
	"fmt"
	"io"

	"github.com/orlox/medusa/internal/app"
	"github.com/orlox/medusa/internal/infrastructure/composition"
	"github.com/orlox/medusa/internal/infrastructure/nist"
	"github.com/orlox/medusa/internal/pkg/config"
	"github.com/orlox/medusa/internal/pkg/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Global flag names
const (
	FlagLogLevel    = "log-level"
	FlagLogFile     = "log-file"
	FlagDataRoot    = "data-root"
	FlagIsotopeFile = "isotope-file"
	FlagEnvFile     = "env-file"
	FlagOutput      = "output"
)

// Output formats
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// InitGlobalFlags registers the flags shared by every command.
func InitGlobalFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.String(FlagLogLevel, config.LogLevelWarning, "Log level (debug, info, warning, error, critical)")
	flags.String(FlagLogFile, "", "Write logs to this file with rotation instead of stderr")
	flags.String(FlagDataRoot, "", "Data root directory (defaults to $"+config.EnvDataRoot+")")
	flags.String(FlagIsotopeFile, "", "Isotope data file (defaults to <data-root>/"+config.ChemDataSubdir+"/"+config.DefaultIsotopeFile+")")
	flags.String(FlagEnvFile, config.DefaultEnvFile, "Env file read before the environment is consulted")
	flags.StringP(FlagOutput, "o", OutputText, "Output format (text, yaml)")
}

func setupLogger(cmd *cobra.Command) (logger.Logger, error) {
	level, err := cmd.Flags().GetString(FlagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagLogLevel, err)
	}
	logFile, err := cmd.Flags().GetString(FlagLogFile)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagLogFile, err)
	}

	if err := logger.InitLogger(config.NewLoggerSettings(level, logFile)); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func setupDataSettings(cmd *cobra.Command) (*config.DataSettings, error) {
	envFile, err := cmd.Flags().GetString(FlagEnvFile)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagEnvFile, err)
	}
	dataRoot, err := cmd.Flags().GetString(FlagDataRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagDataRoot, err)
	}
	isotopeFile, err := cmd.Flags().GetString(FlagIsotopeFile)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagIsotopeFile, err)
	}

	if err := config.LoadEnvFiles(envFile); err != nil {
		return nil, err
	}

	settings := config.DataSettingsFromEnv()
	if dataRoot != "" {
		settings.DataRoot = dataRoot
	}
	if isotopeFile != "" {
		settings.IsotopeFile = isotopeFile
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func setupChemistryService(cmd *cobra.Command, log logger.Logger) (*app.ChemistryService, error) {
	settings, err := setupDataSettings(cmd)
	if err != nil {
		return nil, err
	}

	isotopes, err := nist.NewIsotopeLoader(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create isotope loader: %w", err)
	}

	compositions, err := composition.NewCompositionLoader(settings.ChemDataDir(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create composition loader: %w", err)
	}

	return app.NewChemistryService(settings.IsotopePath(), isotopes, compositions, log)
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString(FlagOutput)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", FlagOutput, err)
	}
	switch format {
	case OutputText, OutputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}
