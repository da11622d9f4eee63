// Package setting models configuration values tagged with the layer that
// supplied them.
//
// A configuration run assembles values from three layers, in ascending
// precedence: compiled-in defaults, a configuration file and the command line.
// Each populated value is carried as a Setting[T], a pair of the value and its
// Source. A nil *Setting[T] means the value was never supplied, which is
// distinct from a present but empty value.
//
// # Precedence
//
// Precedence is decided by an explicit comparison rather than by the order in
// which layers happen to be applied:
//
//	setting.CommandLine.Outranks(setting.ConfigFile) // true
//	setting.CanReplace(current, setting.Default)     // true only if current is unset or Default
//
// Merge folds any number of candidates into the highest ranked one:
//
//	v := setting.Merge(fromDefaults, fromFile, fromFlags)
package setting
