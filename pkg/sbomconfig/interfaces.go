package sbomconfig

import (
	"github.com/dmitrymomot/sbomkit/pkg/hashalg"
	"github.com/dmitrymomot/sbomkit/pkg/manifest"
)

// HashAlgorithmResolver maps an algorithm name to an implementation.
// Unknown names must fail; the error is returned to callers unmodified.
type HashAlgorithmResolver interface {
	Resolve(name string) (hashalg.Algorithm, error)
}

// PathJoiner joins path segments using platform rules, without touching the filesystem.
type PathJoiner interface {
	Join(a, b string) string
}

// PathJoinerFunc adapts a function to PathJoiner.
type PathJoinerFunc func(a, b string) string

func (f PathJoinerFunc) Join(a, b string) string {
	return f(a, b)
}

// AssemblyDefaults supplies defaults baked into the environment the tool runs in.
type AssemblyDefaults interface {
	DefaultManifestInfoForValidation() []manifest.Info
	DefaultManifestInfoForGeneration() []manifest.Info
	DefaultNamespaceURIBase() string
	DefaultPackageSupplier() string
}
