// Package structural provides deep operations on nested key-value
// structures of the kind produced by decoding JSON or YAML into plain Go
// values: map[string]any mappings, []any arrays and primitive leaves.
//
// The package offers five core operations:
//
//   - Merge – recursively combines two mappings, source winning on
//     conflicts, arrays replaced wholesale.
//
//   - Equal – structural deep equality with key-order independence and
//     cross-representation numeric comparison.
//
//   - Clone – a fully independent deep copy with explicit error reporting
//     for cycles and out-of-domain values.
//
//   - Get / Set – dot-path access into nested mappings, with the comma-ok
//     idiom standing in for an "absent" sentinel.
//
// Conversion helpers round the package out: Pairs and FromPairs translate
// between mappings and key/value-pair sequences, and ParseQuery turns a URL
// query string into a mapping.
//
// Every operation except Set treats its inputs as read-only and returns
// freshly allocated results; Set mutates its mapping in place because
// materializing structure into an existing mapping is its entire purpose.
// There is no internal locking: concurrent use on shared structures
// requires external synchronization by the caller.
//
// # Usage
//
//	import "github.com/dmitrymomot/toolbelt/pkg/structural"
//
//	base := map[string]any{"server": map[string]any{"host": "localhost"}}
//	override := map[string]any{"server": map[string]any{"port": 8080}}
//
//	merged, err := structural.Merge(base, override)
//	if err != nil {
//		// handle cycle
//	}
//
//	port, ok := structural.Get(merged, "server.port")
//	// port == 8080, ok == true
//
// # Error handling
//
// Merge and Clone return ErrCycleDetected for self-referential input and
// Clone returns ErrNotCloneable for values outside the supported domain.
// Get and Equal never fail: a missing path reads as absent and a kind
// mismatch reads as unequal.
package structural
