package sbomconfig

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"github.com/dmitrymomot/sbomkit/pkg/logger"
	"github.com/dmitrymomot/sbomkit/pkg/manifest"
	"github.com/dmitrymomot/sbomkit/pkg/sanitizer"
	"github.com/dmitrymomot/sbomkit/pkg/setting"
	"github.com/dmitrymomot/sbomkit/pkg/validator"
)

// Sanitizer validates and normalises a Configuration before the manifest
// pipeline consumes it. It holds no per-call state.
type Sanitizer struct {
	hashes        HashAlgorithmResolver
	paths         PathJoiner
	defaults      AssemblyDefaults
	compatibility manifest.CompatibilityTable
	goos          string
	log           *slog.Logger
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger sets the logger used for warnings about replaced values.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sanitizer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTargetOS overrides the operating system used for path normalisation.
// It defaults to runtime.GOOS.
func WithTargetOS(goos string) Option {
	return func(s *Sanitizer) {
		if goos != "" {
			s.goos = goos
		}
	}
}

// WithCompatibility replaces the conformance compatibility table.
func WithCompatibility(table manifest.CompatibilityTable) Option {
	return func(s *Sanitizer) {
		if table != nil {
			s.compatibility = table
		}
	}
}

// NewSanitizer creates a Sanitizer over its collaborators.
func NewSanitizer(hashes HashAlgorithmResolver, paths PathJoiner, defaults AssemblyDefaults, opts ...Option) *Sanitizer {
	s := &Sanitizer{
		hashes:        hashes,
		paths:         paths,
		defaults:      defaults,
		compatibility: manifest.DefaultCompatibility,
		goos:          runtime.GOOS,
		log:           logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("sanitizer"))
	return s
}

// Sanitize validates cfg for its action and fills in derived and default
// values. The returned configuration is authoritative; it is currently cfg
// itself, mutated in place. Passes run in a fixed order and the first failure
// aborts the call without rolling back earlier changes.
func (s *Sanitizer) Sanitize(cfg *Configuration) (*Configuration, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}
	action := cfg.ManifestToolAction
	if err := validator.First(validator.Custom("ManifestToolAction",
		fmt.Sprintf("unsupported action %q", action), action.Valid)); err != nil {
		return nil, invalid(err)
	}

	passes := []func(*Configuration) error{
		s.resolveManifestInfo,
		s.checkConformance,
		s.resolveHashAlgorithm,
		s.requireInputPaths,
		s.deriveManifestDir,
		s.fillPackageDefaults,
		s.clampLicenseTimeout,
		s.clampParallelism,
		s.normalizePaths,
		s.requireArtifactInfoMap,
	}
	for _, pass := range passes {
		if err := pass(cfg); err != nil {
			return nil, err
		}
	}

	s.log.Debug("configuration sanitized", logger.Action(action.String()))
	return cfg, nil
}

func (s *Sanitizer) resolveManifestInfo(cfg *Configuration) error {
	if !cfg.ManifestToolAction.needsManifestInfo() {
		return nil
	}
	if len(cfg.ManifestInfo.ValueOr(nil)) > 0 {
		return nil
	}

	var defaults []manifest.Info
	if cfg.ManifestToolAction == ActionValidate {
		defaults = s.defaults.DefaultManifestInfoForValidation()
	} else {
		defaults = s.defaults.DefaultManifestInfoForGeneration()
	}
	if err := validator.First(validator.RequiredSlice("ManifestInfo", defaults)); err != nil {
		return invalid(err)
	}

	cfg.ManifestInfo = setting.New(slices.Clone(defaults), setting.Default)
	return nil
}

func (s *Sanitizer) checkConformance(cfg *Configuration) error {
	src := cfg.Conformance.SourceOr(setting.Default)
	if src.IsDefault() {
		if c := cfg.Conformance.ValueOr(manifest.ConformanceNone); c != manifest.ConformanceNone {
			s.log.Warn("conformance from defaults ignored",
				logger.Field("Conformance"), logger.Value(c), logger.Source(src))
		}
		cfg.Conformance = setting.New(manifest.ConformanceNone, setting.Default)
		return nil
	}

	return invalid(s.compatibility.Check(cfg.Conformance.Value, cfg.ManifestInfo.ValueOr(nil)))
}

func (s *Sanitizer) resolveHashAlgorithm(cfg *Configuration) error {
	if cfg.ManifestToolAction != ActionValidate {
		return nil
	}
	if err := validator.First(validator.RequiredString("HashAlgorithm", cfg.HashAlgorithm.ValueOr(""))); err != nil {
		return invalid(err)
	}

	alg, err := s.hashes.Resolve(cfg.HashAlgorithm.Value)
	if err != nil {
		return err
	}
	cfg.HashAlgorithm = setting.New(alg.Name, cfg.HashAlgorithm.Source)
	return nil
}

func (s *Sanitizer) requireInputPaths(cfg *Configuration) error {
	var err error
	switch cfg.ManifestToolAction {
	case ActionValidateFormat:
		err = validator.First(validator.RequiredString("SbomPath", cfg.SbomPath.ValueOr("")))
	case ActionRedact:
		err = validator.Apply(
			validator.ExactlyOne([]string{"SbomPath", "SbomDir"},
				cfg.SbomPath.ValueOr("") != "", cfg.SbomDir.ValueOr("") != ""),
			validator.RequiredString("OutputPath", cfg.OutputPath.ValueOr("")),
		)
	default:
		err = validator.First(validator.RequiredString("BuildDropPath", cfg.BuildDropPath.ValueOr("")))
	}
	return invalid(err)
}

func (s *Sanitizer) deriveManifestDir(cfg *Configuration) error {
	if cfg.ManifestToolAction == ActionValidate || cfg.ManifestDirPath.IsSet() {
		return nil
	}
	dropPath := cfg.BuildDropPath.ValueOr("")
	if dropPath == "" {
		return nil
	}

	cfg.ManifestDirPath = setting.New(s.paths.Join(dropPath, ManifestDirName), setting.Default)
	return nil
}

func (s *Sanitizer) fillPackageDefaults(cfg *Configuration) error {
	fillDefault(&cfg.NamespaceURIBase, s.defaults.DefaultNamespaceURIBase())
	fillDefault(&cfg.PackageSupplier, s.defaults.DefaultPackageSupplier())
	return nil
}

func fillDefault(current **setting.Setting[string], value string) {
	if value == "" || !setting.CanReplace(*current, setting.Default) {
		return
	}
	*current = setting.New(value, setting.Default)
}

func (s *Sanitizer) clampLicenseTimeout(cfg *Configuration) error {
	cfg.LicenseInformationTimeoutInSeconds = s.clampPositive(
		"LicenseInformationTimeoutInSeconds",
		cfg.LicenseInformationTimeoutInSeconds,
		DefaultLicenseInformationTimeoutInSeconds,
		MaxLicenseInformationTimeoutInSeconds,
	)
	return nil
}

func (s *Sanitizer) clampParallelism(cfg *Configuration) error {
	cfg.Parallelism = s.clampPositive("Parallelism", cfg.Parallelism, DefaultParallelism, MaxParallelism)
	return nil
}

// clampPositive installs fallback when current is unset or non-positive and
// caps everything else at max, keeping the original source.
func (s *Sanitizer) clampPositive(field string, current *setting.Setting[int], fallback, max int) *setting.Setting[int] {
	if current == nil {
		return setting.New(fallback, setting.Default)
	}

	value := sanitizer.PositiveOrDefault(current.Value, fallback, max)
	switch {
	case current.Value <= 0:
		s.log.Warn("non-positive value replaced with default",
			logger.Field(field), logger.Value(current.Value), logger.Source(current.Source),
			slog.Int("default", fallback))
		return setting.New(value, setting.Default)
	case value != current.Value:
		s.log.Warn("value above maximum truncated",
			logger.Field(field), logger.Value(current.Value), logger.Source(current.Source),
			slog.Int("max", max))
	}
	return setting.New(value, current.Source)
}

func (s *Sanitizer) normalizePaths(cfg *Configuration) error {
	if s.goos == sanitizer.GOOSWindows {
		return nil
	}
	for _, f := range cfg.pathFields() {
		current := *f.value
		if current == nil {
			continue
		}
		normalized := sanitizer.NormalizeSeparators(current.Value, s.goos)
		if normalized != current.Value {
			*f.value = setting.New(normalized, current.Source)
		}
	}
	return nil
}

func (s *Sanitizer) requireArtifactInfoMap(cfg *Configuration) error {
	if cfg.ManifestToolAction != ActionConsolidate {
		return nil
	}

	return invalid(validator.First(validator.RequiredMap("ArtifactInfoMap", cfg.ArtifactInfoMap.ValueOr(nil))))
}

// invalid marks err as a validation failure. A nil err stays nil.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
