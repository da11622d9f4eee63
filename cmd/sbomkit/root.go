package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sbomkit/pkg/config"
	"github.com/dmitrymomot/sbomkit/pkg/hashalg"
	"github.com/dmitrymomot/sbomkit/pkg/logger"
	"github.com/dmitrymomot/sbomkit/pkg/sanitizer"
	"github.com/dmitrymomot/sbomkit/pkg/sbomconfig"
	"github.com/dmitrymomot/sbomkit/pkg/setting"
	"github.com/dmitrymomot/sbomkit/pkg/validator"
)

type rootOptions struct {
	configFile string
	envFiles   []string
	verbosity  string
	logFormat  string
}

func newRootCmd(env cliEnv) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "sbomkit",
		Short:        "Assemble and sanitize SBOM tool configuration",
		Long:         `sbomkit merges defaults, a configuration file and command line flags, validates the result for the requested action and prints the sanitized configuration as YAML.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "configuration file (YAML or JSON)")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, ".env files with SBOMKIT_DEFAULT_* values, loaded before the environment defaults")
	root.PersistentFlags().StringVarP(&opts.verbosity, "verbosity", "V", env.Verbosity, "log verbosity: verbose, information, warning, error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", env.LogFormat, "log format: text or json")

	root.AddCommand(
		newActionCmd(opts, sbomconfig.ActionGenerate, "generate",
			"Generate an SBOM for a build drop",
			buildDropPath, buildComponentPath, manifestDirPath, rootPathFilter, telemetryFilePath,
			manifestInfoFlag(), conformanceFlag(),
			namespaceURIBase, namespaceURIUniquePart, packageSupplier, packageName, packageVersion,
			licenseTimeout, parallelism, fetchLicenseInformation, deleteManifestDir),
		newActionCmd(opts, sbomconfig.ActionValidate, "validate",
			"Validate a build drop against its SBOM",
			buildDropPath, manifestDirPath, outputPath, rootPathFilter, catalogFilePath, telemetryFilePath,
			manifestInfoFlag(), conformanceFlag(), hashAlgorithm, parallelism),
		newActionCmd(opts, sbomconfig.ActionValidateFormat, "validate-format",
			"Validate the format of a single SBOM",
			sbomPath, telemetryFilePath),
		newActionCmd(opts, sbomconfig.ActionRedact, "redact",
			"Redact references from one or more SBOMs",
			sbomPath, sbomDir, outputPath, telemetryFilePath),
		newActionCmd(opts, sbomconfig.ActionConsolidate, "consolidate",
			"Consolidate several SBOMs into one",
			buildDropPath, manifestDirPath, telemetryFilePath,
			manifestInfoFlag(), conformanceFlag(), artifactInfoFlag(), parallelism),
	)

	return root
}

func newActionCmd(opts *rootOptions, action sbomconfig.Action, use, short string, bindings ...binding) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, action, bindings)
		},
	}
	for _, b := range bindings {
		b.register(cmd.Flags())
	}
	return cmd
}

func runAction(cmd *cobra.Command, opts *rootOptions, action sbomconfig.Action, bindings []binding) error {
	log, err := newLogger(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log = log.With(logger.Action(action.String()))

	defaults, err := loadDefaults(opts.envFiles)
	if err != nil {
		return err
	}

	var layers []sbomconfig.Layer
	if opts.configFile != "" {
		var fileValues sbomconfig.Values
		if err := config.LoadFile(opts.configFile, &fileValues); err != nil {
			return fmt.Errorf("config file %s: %w", opts.configFile, err)
		}
		layers = append(layers, sbomconfig.Layer{Source: setting.ConfigFile, Values: fileValues})
	}

	var flagValues sbomconfig.Values
	for _, b := range bindings {
		if err := b.apply(cmd.Flags(), &flagValues); err != nil {
			return err
		}
	}
	layers = append(layers, sbomconfig.Layer{Source: setting.CommandLine, Values: flagValues})

	cfg := sbomconfig.Assemble(action, opts.configFile, layers...)

	s := sbomconfig.NewSanitizer(
		hashalg.Default(),
		sbomconfig.PathJoinerFunc(sanitizer.JoinPath),
		defaults,
		sbomconfig.WithLogger(log),
	)
	sanitized, err := s.Sanitize(cfg)
	if err != nil {
		log.Error("configuration rejected",
			logger.Error(err), slog.Any("fields", validator.ExtractValidationErrors(err).Fields()))
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(sanitized); err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	return enc.Close()
}

// loadDefaults reads the assembly defaults. Env files are loaded first and
// force a fresh parse so their values are seen even after an earlier load.
func loadDefaults(envFiles []string) (*sbomconfig.Defaults, error) {
	if len(envFiles) == 0 {
		return sbomconfig.LoadDefaults()
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return nil, err
	}
	return sbomconfig.ReloadDefaults()
}

func newLogger(opts *rootOptions, w io.Writer) (*slog.Logger, error) {
	format := logger.Format(opts.logFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", opts.logFormat, logger.FormatText, logger.FormatJSON)
	}
	level, ok := logger.ParseVerbosity(opts.verbosity)
	if !ok {
		return nil, fmt.Errorf("invalid verbosity %q", opts.verbosity)
	}

	return logger.New(
		logger.WithOutput(w),
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithAttr(logger.RunID(uuid.NewString())),
	), nil
}
