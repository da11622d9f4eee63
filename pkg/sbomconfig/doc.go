// Package sbomconfig turns the configuration assembled for one run of the SBOM
// tool into a configuration that is safe to hand to the manifest pipeline.
//
// A Configuration is a set of provenance-tagged settings (see package
// setting). Assemble merges the layers supplied by compiled-in defaults, a
// configuration file and the command line. Sanitizer then applies the
// action-dependent rules: it installs default manifest formats, checks the
// conformance profile against them, resolves the hash algorithm, enforces the
// required paths, derives the manifest directory, fills package defaults,
// clamps numeric settings and normalises path separators.
//
// # Collaborators
//
// The sanitizer never touches the filesystem. It depends on three injected
// collaborators:
//
//   - HashAlgorithmResolver maps an algorithm name to an implementation
//     (*hashalg.Resolver satisfies it).
//   - PathJoiner joins path segments (PathJoinerFunc(sanitizer.JoinPath)).
//   - AssemblyDefaults supplies environment-baked defaults (*Defaults, built by
//     LoadDefaults from SBOMKIT_DEFAULT_* variables).
//
// # Usage
//
//	defaults, err := sbomconfig.LoadDefaults()
//	if err != nil {
//	    return err
//	}
//	s := sbomconfig.NewSanitizer(hashalg.Default(), sbomconfig.PathJoinerFunc(sanitizer.JoinPath), defaults)
//	cfg, err = s.Sanitize(cfg)
//
// # Error Handling
//
// Missing or inconsistent values fail with an error matching ErrValidation
// that wraps validator.ValidationErrors naming the field. An unknown hash
// algorithm fails with the resolver's error, unmodified. A configuration must
// not be reused after a failed Sanitize call.
package sbomconfig
