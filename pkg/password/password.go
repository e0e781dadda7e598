package password

import (
	"strings"
	"unicode"
)

// defaultSpecialChars is the symbol whitelist used when Config.AllowedSpecial
// is empty.
const defaultSpecialChars = "!@#$%^&*()_+-=[]{};:'\",.<>/?~`|\\"

// Config describes a password policy. The zero value is not useful on its
// own; start from DefaultConfig or LoadConfig and adjust.
type Config struct {
	MinLength        int    `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`
	MaxLength        int    `env:"PASSWORD_MAX_LENGTH" envDefault:"64"`
	RequireUppercase bool   `env:"PASSWORD_REQUIRE_UPPERCASE" envDefault:"true"`
	RequireLowercase bool   `env:"PASSWORD_REQUIRE_LOWERCASE" envDefault:"true"`
	RequireDigits    bool   `env:"PASSWORD_REQUIRE_DIGITS" envDefault:"true"`
	RequireSpecial   bool   `env:"PASSWORD_REQUIRE_SPECIAL" envDefault:"true"`
	AllowedSpecial   string `env:"PASSWORD_ALLOWED_SPECIAL"` // empty selects the default symbol set
	LatinOnly        bool   `env:"PASSWORD_LATIN_ONLY" envDefault:"true"`
}

// DefaultConfig returns the default policy: 8-64 characters, every
// character class required, the common symbol whitelist, Latin-only input.
func DefaultConfig() Config {
	return Config{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		LatinOnly:        true,
	}
}

// Validate reports whether password satisfies the policy.
func Validate(password string, cfg Config) bool {
	return Check(password, cfg) == nil
}

// Check validates password against the policy and returns the sentinel
// error of the first requirement that fails, or nil when the password is
// acceptable. Length bounds are checked first, then character content: a
// rune must be a letter, a digit or a member of the allowed symbol set, and
// under LatinOnly it must additionally be ASCII. A MaxLength of zero means
// no upper bound. Lengths count runes, not bytes.
func Check(password string, cfg Config) error {
	length := 0
	for range password {
		length++
	}

	if length < cfg.MinLength {
		return ErrTooShort
	}
	if cfg.MaxLength > 0 && length > cfg.MaxLength {
		return ErrTooLong
	}

	allowedSpecial := cfg.AllowedSpecial
	if allowedSpecial == "" {
		allowedSpecial = defaultSpecialChars
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		if cfg.LatinOnly && r > unicode.MaxASCII {
			return ErrNonLatinCharacter
		}

		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(allowedSpecial, r):
			hasSpecial = true
		default:
			return ErrDisallowedCharacter
		}
	}

	if cfg.RequireUppercase && !hasUpper {
		return ErrMissingUppercase
	}
	if cfg.RequireLowercase && !hasLower {
		return ErrMissingLowercase
	}
	if cfg.RequireDigits && !hasDigit {
		return ErrMissingDigit
	}
	if cfg.RequireSpecial && !hasSpecial {
		return ErrMissingSpecial
	}

	return nil
}
