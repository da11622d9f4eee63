package sbomconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sbomkit/pkg/config"
	"github.com/dmitrymomot/sbomkit/pkg/manifest"
	"github.com/dmitrymomot/sbomkit/pkg/sbomconfig"
	"github.com/dmitrymomot/sbomkit/pkg/setting"
)

func ptr[T any](v T) *T { return &v }

func TestAssemble_Precedence(t *testing.T) {
	t.Parallel()

	file := sbomconfig.Layer{
		Source: setting.ConfigFile,
		Values: sbomconfig.Values{
			BuildDropPath: ptr("/from/file"),
			PackageName:   ptr("file-name"),
			Parallelism:   ptr(4),
		},
	}
	flags := sbomconfig.Layer{
		Source: setting.CommandLine,
		Values: sbomconfig.Values{
			BuildDropPath: ptr("/from/flag"),
		},
	}

	for name, layers := range map[string][]sbomconfig.Layer{
		"file then flags": {file, flags},
		"flags then file": {flags, file},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := sbomconfig.Assemble(sbomconfig.ActionGenerate, "", layers...)

			assert.Equal(t, sbomconfig.ActionGenerate, cfg.ManifestToolAction)
			assert.Equal(t, "/from/flag", cfg.BuildDropPath.Value)
			assert.Equal(t, setting.CommandLine, cfg.BuildDropPath.Source)
			assert.Equal(t, "file-name", cfg.PackageName.Value)
			assert.Equal(t, setting.ConfigFile, cfg.PackageName.Source)
			assert.Equal(t, 4, cfg.Parallelism.Value)
			assert.Nil(t, cfg.ConfigFilePath)
			assert.Nil(t, cfg.SbomPath)
		})
	}
}

func TestAssemble_ConfigFilePath(t *testing.T) {
	t.Parallel()

	cfg := sbomconfig.Assemble(sbomconfig.ActionRedact, "conf/sbom.yaml")
	require.NotNil(t, cfg.ConfigFilePath)
	assert.Equal(t, "conf/sbom.yaml", cfg.ConfigFilePath.Value)
	assert.Equal(t, setting.CommandLine, cfg.ConfigFilePath.Source)
}

func TestAssemble_CollectionsMergedWhenSupplied(t *testing.T) {
	t.Parallel()

	cfg := sbomconfig.Assemble(sbomconfig.ActionConsolidate, "",
		sbomconfig.Layer{
			Source: setting.ConfigFile,
			Values: sbomconfig.Values{
				ManifestInfo:    []manifest.Info{manifest.SPDX22},
				ArtifactInfoMap: map[string]sbomconfig.ArtifactInfo{"a": {}},
			},
		},
		sbomconfig.Layer{
			Source: setting.CommandLine,
			Values: sbomconfig.Values{ManifestInfo: []manifest.Info{manifest.SPDX30}},
		},
	)

	assert.Equal(t, []manifest.Info{manifest.SPDX30}, cfg.ManifestInfo.Value)
	assert.Equal(t, setting.CommandLine, cfg.ManifestInfo.Source)
	assert.Len(t, cfg.ArtifactInfoMap.Value, 1)
	assert.Equal(t, setting.ConfigFile, cfg.ArtifactInfoMap.Source)
}

func TestAssemble_FromConfigFile(t *testing.T) {
	t.Parallel()

	var values sbomconfig.Values
	require.NoError(t, config.LoadFile("testdata/generate.yaml", &values))

	cfg := sbomconfig.Assemble(sbomconfig.ActionGenerate, "testdata/generate.yaml",
		sbomconfig.Layer{Source: setting.ConfigFile, Values: values},
	)

	assert.Equal(t, "/builds/drop", cfg.BuildDropPath.Value)
	assert.Equal(t, setting.ConfigFile, cfg.BuildDropPath.Source)
	assert.Equal(t, []manifest.Info{manifest.SPDX22, manifest.SPDX30}, cfg.ManifestInfo.Value)
	assert.Equal(t, manifest.ConformanceNTIAMin, cfg.Conformance.Value)
	assert.Equal(t, 4, cfg.Parallelism.Value)
	assert.True(t, cfg.FetchLicenseInformation.Value)
	assert.Equal(t, sbomconfig.ArtifactInfo{
		ExternalManifestDir: "/builds/a/_manifest",
		IgnoreMissingFiles:  true,
	}, cfg.ArtifactInfoMap.Value["/builds/a"])

	out, err := newSanitizer(standardDefaults()).Sanitize(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/builds/drop/_manifest", out.ManifestDirPath.Value)
	assert.Equal(t, manifest.ConformanceNTIAMin, out.Conformance.Value)
}
