// Package toolbelt is a collection of small, independent helper packages.
//
// Each package under pkg/ is self-contained and importable on its own:
//
//   - pkg/structural – deep merge, equality, clone and dot-path access for
//     nested map[string]any structures
//   - pkg/timing – debounce and throttle wrappers
//   - pkg/identifier – random UUID-style identifier generation
//   - pkg/password – configurable password-strength validation
//   - pkg/strcase – conversion between identifier naming conventions
//
// The root package intentionally exports nothing; import the subpackages
// you need.
package toolbelt
