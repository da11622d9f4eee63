package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sbomkit/pkg/config"
)

type fileConfig struct {
	Name    string   `yaml:"name"`
	Timeout int      `yaml:"timeout"`
	Tags    []string `yaml:"tags"`
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"testdata/valid.yaml", "testdata/valid.json"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			var cfg fileConfig
			require.NoError(t, config.LoadFile(path, &cfg))
			assert.Equal(t, fileConfig{Name: "drop", Timeout: 12, Tags: []string{"a", "b"}}, cfg)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		var cfg fileConfig
		assert.ErrorIs(t, config.LoadFile("testdata/missing.yaml", &cfg), config.ErrReadingFile)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		var cfg fileConfig
		assert.ErrorIs(t, config.LoadFile("testdata/unknown_key.yaml", &cfg), config.ErrDecodingFile)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()

		var cfg *fileConfig
		assert.ErrorIs(t, config.LoadFile("testdata/valid.yaml", cfg), config.ErrNilPointer)
	})
}

func TestLoadFile_Empty(t *testing.T) {
	t.Parallel()

	cfg := fileConfig{Name: "kept"}
	require.NoError(t, config.LoadFile("testdata/empty.yaml", &cfg))
	assert.Equal(t, "kept", cfg.Name)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	var cfg fileConfig
	assert.ErrorIs(t, config.Decode([]byte("name: [unterminated"), &cfg), config.ErrDecodingFile)
}
