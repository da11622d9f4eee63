package hashalg

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Canonical algorithm names.
const (
	SHA1    = "SHA1"
	SHA256  = "SHA256"
	SHA512  = "SHA512"
	MD5     = "MD5"
	SHA3256 = "SHA3256"
)

// Algorithm is a resolved hash algorithm.
type Algorithm struct {
	Name string
	New  func() hash.Hash
}

// Resolver maps algorithm names to implementations.
type Resolver struct {
	algorithms map[string]Algorithm
}

// NewResolver creates a resolver over the given algorithms, keyed by their
// normalized names.
func NewResolver(algorithms ...Algorithm) *Resolver {
	r := &Resolver{algorithms: make(map[string]Algorithm, len(algorithms))}
	for _, alg := range algorithms {
		if alg.Name == "" || alg.New == nil {
			continue
		}
		r.algorithms[normalize(alg.Name)] = alg
	}
	return r
}

// Default returns a resolver with every algorithm the tool supports.
func Default() *Resolver {
	return NewResolver(
		Algorithm{Name: SHA1, New: sha1.New},
		Algorithm{Name: SHA256, New: sha256.New},
		Algorithm{Name: SHA512, New: sha512.New},
		Algorithm{Name: MD5, New: md5.New},
		Algorithm{Name: SHA3256, New: sha3.New256},
	)
}

// Resolve looks up name. It fails with ErrUnsupportedAlgorithm for unknown names.
func (r *Resolver) Resolve(name string) (Algorithm, error) {
	if alg, ok := r.algorithms[normalize(name)]; ok {
		return alg, nil
	}
	return Algorithm{}, fmt.Errorf("%w: %q, supported algorithms: %s",
		ErrUnsupportedAlgorithm, name, strings.Join(r.Names(), ", "))
}

// Names returns the canonical names of all registered algorithms, sorted.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for _, alg := range r.algorithms {
		names = append(names, alg.Name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return strings.ToUpper(name)
}
