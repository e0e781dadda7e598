// Package password validates password strength against a configurable
// policy: length bounds, required character classes, an allowed symbol
// whitelist and an optional Latin-only restriction.
//
// Validate gives a plain boolean verdict; Check returns the sentinel error
// of the first failed requirement so callers can tell the user what to fix:
//
//	cfg := password.DefaultConfig()
//	if err := password.Check(input, cfg); err != nil {
//	    switch {
//	    case errors.Is(err, password.ErrTooShort):
//	        // ...
//	    }
//	}
//
// The policy can also be sourced from PASSWORD_* environment variables via
// LoadConfig, so deployments can tighten rules without a rebuild.
//
// The package measures strength only. It never hashes, stores or otherwise
// handles credentials.
package password
