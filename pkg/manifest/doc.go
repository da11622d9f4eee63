// Package manifest describes the SBOM formats the tool can emit or consume and
// the conformance profiles that may be layered on top of them.
//
// An Info identifies a format by name and version ("SPDX:2.2"). A Conformance
// level declares which formats it can be combined with through a static
// CompatibilityTable; DefaultCompatibility.Check answers whether a conformance
// level is satisfied by a set of formats.
package manifest
