package sbomconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sbomkit/pkg/config"
	"github.com/dmitrymomot/sbomkit/pkg/manifest"
	"github.com/dmitrymomot/sbomkit/pkg/sbomconfig"
)

func TestNewDefaults_ReturnsCopies(t *testing.T) {
	t.Parallel()

	generate := []manifest.Info{manifest.SPDX22}
	d := sbomconfig.NewDefaults(generate, []manifest.Info{manifest.SPDX30}, "https://ns", "Org")

	generate[0] = manifest.SPDX30
	got := d.DefaultManifestInfoForGeneration()
	assert.Equal(t, []manifest.Info{manifest.SPDX22}, got)

	got[0] = manifest.SPDX30
	assert.Equal(t, []manifest.Info{manifest.SPDX22}, d.DefaultManifestInfoForGeneration())
	assert.Equal(t, []manifest.Info{manifest.SPDX30}, d.DefaultManifestInfoForValidation())
	assert.Equal(t, "https://ns", d.DefaultNamespaceURIBase())
	assert.Equal(t, "Org", d.DefaultPackageSupplier())
}

func TestLoadDefaults(t *testing.T) {
	t.Run("fallback values", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		d, err := sbomconfig.LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, []manifest.Info{manifest.SPDX22}, d.DefaultManifestInfoForGeneration())
		assert.Equal(t, []manifest.Info{manifest.SPDX22}, d.DefaultManifestInfoForValidation())
		assert.Empty(t, d.DefaultNamespaceURIBase())
	})

	t.Run("from environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("SBOMKIT_DEFAULT_GENERATE_MANIFEST_INFO", "spdx:3.0,SPDX:2.2")
		t.Setenv("SBOMKIT_DEFAULT_VALIDATE_MANIFEST_INFO", "SPDX:3.0")
		t.Setenv("SBOMKIT_DEFAULT_NAMESPACE_URI_BASE", "https://sbom.example.com")
		t.Setenv("SBOMKIT_DEFAULT_PACKAGE_SUPPLIER", "Organization: Example")

		d, err := sbomconfig.LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, []manifest.Info{manifest.SPDX30, manifest.SPDX22}, d.DefaultManifestInfoForGeneration())
		assert.Equal(t, []manifest.Info{manifest.SPDX30}, d.DefaultManifestInfoForValidation())
		assert.Equal(t, "https://sbom.example.com", d.DefaultNamespaceURIBase())
		assert.Equal(t, "Organization: Example", d.DefaultPackageSupplier())
	})

	t.Run("reload picks up changed environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("SBOMKIT_DEFAULT_PACKAGE_SUPPLIER", "Organization: First")

		d, err := sbomconfig.LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, "Organization: First", d.DefaultPackageSupplier())

		t.Setenv("SBOMKIT_DEFAULT_PACKAGE_SUPPLIER", "Organization: Second")

		cached, err := sbomconfig.LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, "Organization: First", cached.DefaultPackageSupplier())

		reloaded, err := sbomconfig.ReloadDefaults()
		require.NoError(t, err)
		assert.Equal(t, "Organization: Second", reloaded.DefaultPackageSupplier())
	})

	t.Run("malformed manifest info", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("SBOMKIT_DEFAULT_GENERATE_MANIFEST_INFO", "SPDX")

		_, err := sbomconfig.LoadDefaults()
		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrInvalidInfo)
		assert.Contains(t, err.Error(), "SBOMKIT_DEFAULT_GENERATE_MANIFEST_INFO")
	})
}
