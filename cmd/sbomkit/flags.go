package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/sbomkit/pkg/manifest"
	"github.com/dmitrymomot/sbomkit/pkg/sbomconfig"
)

// binding registers one flag and copies it into Values when the user set it.
type binding struct {
	register func(fs *pflag.FlagSet)
	apply    func(fs *pflag.FlagSet, v *sbomconfig.Values) error
}

func stringFlag(name, usage string, field func(*sbomconfig.Values) **string) binding {
	return binding{
		register: func(fs *pflag.FlagSet) { fs.String(name, "", usage) },
		apply: func(fs *pflag.FlagSet, v *sbomconfig.Values) error {
			if !fs.Changed(name) {
				return nil
			}
			s, err := fs.GetString(name)
			if err != nil {
				return err
			}
			*field(v) = &s
			return nil
		},
	}
}

func intFlag(name, usage string, field func(*sbomconfig.Values) **int) binding {
	return binding{
		register: func(fs *pflag.FlagSet) { fs.Int(name, 0, usage) },
		apply: func(fs *pflag.FlagSet, v *sbomconfig.Values) error {
			if !fs.Changed(name) {
				return nil
			}
			n, err := fs.GetInt(name)
			if err != nil {
				return err
			}
			*field(v) = &n
			return nil
		},
	}
}

func boolFlag(name, usage string, field func(*sbomconfig.Values) **bool) binding {
	return binding{
		register: func(fs *pflag.FlagSet) { fs.Bool(name, false, usage) },
		apply: func(fs *pflag.FlagSet, v *sbomconfig.Values) error {
			if !fs.Changed(name) {
				return nil
			}
			b, err := fs.GetBool(name)
			if err != nil {
				return err
			}
			*field(v) = &b
			return nil
		},
	}
}

func manifestInfoFlag() binding {
	const name = "manifest-info"
	return binding{
		register: func(fs *pflag.FlagSet) {
			fs.StringSliceP(name, "i", nil, "manifest formats as <name>:<version>, e.g. SPDX:2.2")
		},
		apply: func(fs *pflag.FlagSet, v *sbomconfig.Values) error {
			if !fs.Changed(name) {
				return nil
			}
			raw, err := fs.GetStringSlice(name)
			if err != nil {
				return err
			}
			infos, err := manifest.ParseInfoList(raw)
			if err != nil {
				return fmt.Errorf("--%s: %w", name, err)
			}
			v.ManifestInfo = infos
			return nil
		},
	}
}

func conformanceFlag() binding {
	const name = "conformance"
	return binding{
		register: func(fs *pflag.FlagSet) {
			fs.String(name, "", "conformance profile: None or NTIAMin")
		},
		apply: func(fs *pflag.FlagSet, v *sbomconfig.Values) error {
			if !fs.Changed(name) {
				return nil
			}
			raw, err := fs.GetString(name)
			if err != nil {
				return err
			}
			c, err := manifest.ParseConformance(raw)
			if err != nil {
				return fmt.Errorf("--%s: %w", name, err)
			}
			v.Conformance = &c
			return nil
		},
	}
}

func artifactInfoFlag() binding {
	const name = "artifact-info"
	return binding{
		register: func(fs *pflag.FlagSet) {
			fs.StringToString(name, nil, "SBOM to consolidate as <artifact path>=<external manifest dir>")
		},
		apply: func(fs *pflag.FlagSet, v *sbomconfig.Values) error {
			if !fs.Changed(name) {
				return nil
			}
			raw, err := fs.GetStringToString(name)
			if err != nil {
				return err
			}
			v.ArtifactInfoMap = make(map[string]sbomconfig.ArtifactInfo, len(raw))
			for artifact, dir := range raw {
				v.ArtifactInfoMap[artifact] = sbomconfig.ArtifactInfo{ExternalManifestDir: dir}
			}
			return nil
		},
	}
}

var (
	buildDropPath = stringFlag("build-drop-path", "directory containing the build output",
		func(v *sbomconfig.Values) **string { return &v.BuildDropPath })
	buildComponentPath = stringFlag("build-component-path", "directory containing the build sources",
		func(v *sbomconfig.Values) **string { return &v.BuildComponentPath })
	manifestDirPath = stringFlag("manifest-dir-path", "directory the manifest is written to or read from",
		func(v *sbomconfig.Values) **string { return &v.ManifestDirPath })
	outputPath = stringFlag("output-path", "output file or directory",
		func(v *sbomconfig.Values) **string { return &v.OutputPath })
	rootPathFilter = stringFlag("root-path-filter", "semicolon separated list of paths to include",
		func(v *sbomconfig.Values) **string { return &v.RootPathFilter })
	catalogFilePath = stringFlag("catalog-file-path", "catalog file to validate against",
		func(v *sbomconfig.Values) **string { return &v.CatalogFilePath })
	telemetryFilePath = stringFlag("telemetry-file-path", "file telemetry is written to",
		func(v *sbomconfig.Values) **string { return &v.TelemetryFilePath })
	sbomPath = stringFlag("sbom-path", "path of a single SBOM",
		func(v *sbomconfig.Values) **string { return &v.SbomPath })
	sbomDir = stringFlag("sbom-dir", "directory of SBOMs",
		func(v *sbomconfig.Values) **string { return &v.SbomDir })
	hashAlgorithm = stringFlag("hash-algorithm", "hash algorithm used to check file hashes",
		func(v *sbomconfig.Values) **string { return &v.HashAlgorithm })
	namespaceURIBase = stringFlag("namespace-uri-base", "base of the document namespace URI",
		func(v *sbomconfig.Values) **string { return &v.NamespaceURIBase })
	namespaceURIUniquePart = stringFlag("namespace-uri-unique-part", "unique part of the document namespace URI",
		func(v *sbomconfig.Values) **string { return &v.NamespaceURIUniquePart })
	packageSupplier = stringFlag("package-supplier", "supplier of the root package",
		func(v *sbomconfig.Values) **string { return &v.PackageSupplier })
	packageName = stringFlag("package-name", "name of the root package",
		func(v *sbomconfig.Values) **string { return &v.PackageName })
	packageVersion = stringFlag("package-version", "version of the root package",
		func(v *sbomconfig.Values) **string { return &v.PackageVersion })
	licenseTimeout = intFlag("license-information-timeout", "seconds to wait for license information",
		func(v *sbomconfig.Values) **int { return &v.LicenseInformationTimeoutInSeconds })
	parallelism = intFlag("parallelism", "number of concurrent workers",
		func(v *sbomconfig.Values) **int { return &v.Parallelism })
	fetchLicenseInformation = boolFlag("fetch-license-information", "fetch license information for packages",
		func(v *sbomconfig.Values) **bool { return &v.FetchLicenseInformation })
	deleteManifestDir = boolFlag("delete-manifest-dir-if-present", "remove an existing manifest directory first",
		func(v *sbomconfig.Values) **bool { return &v.DeleteManifestDirIfPresent })
)
