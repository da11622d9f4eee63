package sbomconfig

import (
	"github.com/dmitrymomot/sbomkit/pkg/manifest"
	"github.com/dmitrymomot/sbomkit/pkg/setting"
)

// Values holds the raw values one configuration layer supplies. Nil pointers,
// nil slices and nil maps mean "not supplied by this layer". The yaml tags
// define the configuration file format.
type Values struct {
	BuildDropPath      *string `yaml:"buildDropPath"`
	BuildComponentPath *string `yaml:"buildComponentPath"`
	ManifestDirPath    *string `yaml:"manifestDirPath"`
	OutputPath         *string `yaml:"outputPath"`
	RootPathFilter     *string `yaml:"rootPathFilter"`
	CatalogFilePath    *string `yaml:"catalogFilePath"`
	TelemetryFilePath  *string `yaml:"telemetryFilePath"`
	SbomPath           *string `yaml:"sbomPath"`
	SbomDir            *string `yaml:"sbomDir"`

	ManifestInfo  []manifest.Info       `yaml:"manifestInfo"`
	HashAlgorithm *string               `yaml:"hashAlgorithm"`
	Conformance   *manifest.Conformance `yaml:"conformance"`

	NamespaceURIBase       *string `yaml:"namespaceUriBase"`
	NamespaceURIUniquePart *string `yaml:"namespaceUriUniquePart"`
	PackageSupplier        *string `yaml:"packageSupplier"`
	PackageName            *string `yaml:"packageName"`
	PackageVersion         *string `yaml:"packageVersion"`

	LicenseInformationTimeoutInSeconds *int  `yaml:"licenseInformationTimeoutInSeconds"`
	Parallelism                        *int  `yaml:"parallelism"`
	FetchLicenseInformation            *bool `yaml:"fetchLicenseInformation"`
	DeleteManifestDirIfPresent         *bool `yaml:"deleteManifestDirIfPresent"`

	ArtifactInfoMap map[string]ArtifactInfo `yaml:"artifactInfoMap"`
}

// Layer is a set of values tagged with the source that supplied them.
type Layer struct {
	Source setting.Source
	Values Values
}

// Assemble builds a Configuration for action from layers. For every field the
// value of the highest-precedence layer that supplies it wins, independent of
// the order of layers. configFilePath, when non-empty, is recorded as a
// command line setting.
func Assemble(action Action, configFilePath string, layers ...Layer) *Configuration {
	cfg := &Configuration{ManifestToolAction: action}
	if configFilePath != "" {
		cfg.ConfigFilePath = setting.New(configFilePath, setting.CommandLine)
	}

	for _, l := range layers {
		v := l.Values
		src := l.Source

		mergePtr(&cfg.BuildDropPath, v.BuildDropPath, src)
		mergePtr(&cfg.BuildComponentPath, v.BuildComponentPath, src)
		mergePtr(&cfg.ManifestDirPath, v.ManifestDirPath, src)
		mergePtr(&cfg.OutputPath, v.OutputPath, src)
		mergePtr(&cfg.RootPathFilter, v.RootPathFilter, src)
		mergePtr(&cfg.CatalogFilePath, v.CatalogFilePath, src)
		mergePtr(&cfg.TelemetryFilePath, v.TelemetryFilePath, src)
		mergePtr(&cfg.SbomPath, v.SbomPath, src)
		mergePtr(&cfg.SbomDir, v.SbomDir, src)

		if v.ManifestInfo != nil {
			cfg.ManifestInfo = setting.Merge(cfg.ManifestInfo, setting.New(v.ManifestInfo, src))
		}
		mergePtr(&cfg.HashAlgorithm, v.HashAlgorithm, src)
		mergePtr(&cfg.Conformance, v.Conformance, src)

		mergePtr(&cfg.NamespaceURIBase, v.NamespaceURIBase, src)
		mergePtr(&cfg.NamespaceURIUniquePart, v.NamespaceURIUniquePart, src)
		mergePtr(&cfg.PackageSupplier, v.PackageSupplier, src)
		mergePtr(&cfg.PackageName, v.PackageName, src)
		mergePtr(&cfg.PackageVersion, v.PackageVersion, src)

		mergePtr(&cfg.LicenseInformationTimeoutInSeconds, v.LicenseInformationTimeoutInSeconds, src)
		mergePtr(&cfg.Parallelism, v.Parallelism, src)
		mergePtr(&cfg.FetchLicenseInformation, v.FetchLicenseInformation, src)
		mergePtr(&cfg.DeleteManifestDirIfPresent, v.DeleteManifestDirIfPresent, src)

		if v.ArtifactInfoMap != nil {
			cfg.ArtifactInfoMap = setting.Merge(cfg.ArtifactInfoMap, setting.New(v.ArtifactInfoMap, src))
		}
	}
	return cfg
}

func mergePtr[T any](dst **setting.Setting[T], value *T, src setting.Source) {
	if value == nil {
		return
	}
	*dst = setting.Merge(*dst, setting.New(*value, src))
}
