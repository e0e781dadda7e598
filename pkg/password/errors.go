package password

import "errors"

// Sentinel errors returned by Check, one per failed policy requirement.
var (
	// ErrTooShort indicates the password is below the configured minimum length.
	ErrTooShort = errors.New("password is too short")

	// ErrTooLong indicates the password exceeds the configured maximum length.
	ErrTooLong = errors.New("password is too long")

	// ErrMissingUppercase indicates a required uppercase letter is absent.
	ErrMissingUppercase = errors.New("password must contain an uppercase letter")

	// ErrMissingLowercase indicates a required lowercase letter is absent.
	ErrMissingLowercase = errors.New("password must contain a lowercase letter")

	// ErrMissingDigit indicates a required digit is absent.
	ErrMissingDigit = errors.New("password must contain a digit")

	// ErrMissingSpecial indicates a required special character is absent.
	ErrMissingSpecial = errors.New("password must contain a special character")

	// ErrDisallowedCharacter indicates a character outside letters, digits
	// and the allowed symbol set.
	ErrDisallowedCharacter = errors.New("password contains a disallowed character")

	// ErrNonLatinCharacter indicates a non-ASCII character under the
	// Latin-only restriction.
	ErrNonLatinCharacter = errors.New("password contains a non-latin character")

	// ErrParsingConfig indicates the policy could not be loaded from the
	// environment.
	ErrParsingConfig = errors.New("failed to parse password policy from environment")
)
