package sbomconfig

import (
	"github.com/dmitrymomot/sbomkit/pkg/manifest"
	"github.com/dmitrymomot/sbomkit/pkg/setting"
)

const (
	// ManifestDirName is the directory created under the build drop path.
	ManifestDirName = "_manifest"

	DefaultLicenseInformationTimeoutInSeconds = 30
	MaxLicenseInformationTimeoutInSeconds     = 86400

	DefaultParallelism = 8
	MaxParallelism     = 48
)

// ArtifactInfo describes one SBOM to merge during Consolidate.
type ArtifactInfo struct {
	ExternalManifestDir string `yaml:"externalManifestDir,omitempty" json:"externalManifestDir,omitempty"`
	IgnoreMissingFiles  bool   `yaml:"ignoreMissingFiles,omitempty" json:"ignoreMissingFiles,omitempty"`
	SkipSigningCheck    bool   `yaml:"skipSigningCheck,omitempty" json:"skipSigningCheck,omitempty"`
}

// Configuration is the runtime configuration for a single run.
// A nil setting means the value was not supplied by any layer.
type Configuration struct {
	ManifestToolAction Action `yaml:"manifestToolAction"`

	BuildDropPath      *setting.Setting[string] `yaml:"buildDropPath,omitempty"`
	BuildComponentPath *setting.Setting[string] `yaml:"buildComponentPath,omitempty"`
	ManifestDirPath    *setting.Setting[string] `yaml:"manifestDirPath,omitempty"`
	OutputPath         *setting.Setting[string] `yaml:"outputPath,omitempty"`
	ConfigFilePath     *setting.Setting[string] `yaml:"configFilePath,omitempty"`
	RootPathFilter     *setting.Setting[string] `yaml:"rootPathFilter,omitempty"`
	CatalogFilePath    *setting.Setting[string] `yaml:"catalogFilePath,omitempty"`
	TelemetryFilePath  *setting.Setting[string] `yaml:"telemetryFilePath,omitempty"`
	SbomPath           *setting.Setting[string] `yaml:"sbomPath,omitempty"`
	SbomDir            *setting.Setting[string] `yaml:"sbomDir,omitempty"`

	ManifestInfo  *setting.Setting[[]manifest.Info]      `yaml:"manifestInfo,omitempty"`
	HashAlgorithm *setting.Setting[string]               `yaml:"hashAlgorithm,omitempty"`
	Conformance   *setting.Setting[manifest.Conformance] `yaml:"conformance,omitempty"`

	NamespaceURIBase       *setting.Setting[string] `yaml:"namespaceUriBase,omitempty"`
	NamespaceURIUniquePart *setting.Setting[string] `yaml:"namespaceUriUniquePart,omitempty"`
	PackageSupplier        *setting.Setting[string] `yaml:"packageSupplier,omitempty"`
	PackageName            *setting.Setting[string] `yaml:"packageName,omitempty"`
	PackageVersion         *setting.Setting[string] `yaml:"packageVersion,omitempty"`

	LicenseInformationTimeoutInSeconds *setting.Setting[int]  `yaml:"licenseInformationTimeoutInSeconds,omitempty"`
	Parallelism                        *setting.Setting[int]  `yaml:"parallelism,omitempty"`
	FetchLicenseInformation            *setting.Setting[bool] `yaml:"fetchLicenseInformation,omitempty"`
	DeleteManifestDirIfPresent         *setting.Setting[bool] `yaml:"deleteManifestDirIfPresent,omitempty"`

	ArtifactInfoMap *setting.Setting[map[string]ArtifactInfo] `yaml:"artifactInfoMap,omitempty"`
}

type pathField struct {
	name  string
	value **setting.Setting[string]
}

// pathFields returns the path-like settings subject to separator normalisation.
func (c *Configuration) pathFields() []pathField {
	return []pathField{
		{"ManifestDirPath", &c.ManifestDirPath},
		{"BuildDropPath", &c.BuildDropPath},
		{"OutputPath", &c.OutputPath},
		{"ConfigFilePath", &c.ConfigFilePath},
		{"RootPathFilter", &c.RootPathFilter},
		{"BuildComponentPath", &c.BuildComponentPath},
		{"CatalogFilePath", &c.CatalogFilePath},
		{"TelemetryFilePath", &c.TelemetryFilePath},
	}
}
