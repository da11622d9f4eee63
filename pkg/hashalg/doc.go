// Package hashalg resolves hash algorithm names to hash implementations.
//
// Names are matched case-insensitively and ignore dashes, so "sha256",
// "SHA-256" and "Sha256" all resolve to the same algorithm. Unknown names fail
// with ErrUnsupportedAlgorithm.
//
//	alg, err := hashalg.Default().Resolve("sha256")
//	h := alg.New()
package hashalg
