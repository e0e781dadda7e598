package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbelt/pkg/password"
)

func TestCheckWithDefaults(t *testing.T) {
	cfg := password.DefaultConfig()

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "strong password passes",
			input:    "Str0ng!Pass",
			expected: nil,
		},
		{
			name:     "too short",
			input:    "S1!a",
			expected: password.ErrTooShort,
		},
		{
			name:     "missing uppercase",
			input:    "weak1pass!",
			expected: password.ErrMissingUppercase,
		},
		{
			name:     "missing lowercase",
			input:    "WEAK1PASS!",
			expected: password.ErrMissingLowercase,
		},
		{
			name:     "missing digit",
			input:    "Weakpass!",
			expected: password.ErrMissingDigit,
		},
		{
			name:     "missing special",
			input:    "Weak1pass",
			expected: password.ErrMissingSpecial,
		},
		{
			name:     "space is not an allowed character",
			input:    "Str0ng! Pass",
			expected: password.ErrDisallowedCharacter,
		},
		{
			name:     "non-latin rejected under latin-only",
			input:    "Str0ng!Pässword",
			expected: password.ErrNonLatinCharacter,
		},
		{
			name:     "empty password",
			input:    "",
			expected: password.ErrTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Check(tt.input, cfg)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
			assert.Equal(t, tt.expected == nil, password.Validate(tt.input, cfg))
		})
	}
}

func TestCheckLengthBounds(t *testing.T) {
	t.Run("max length enforced", func(t *testing.T) {
		cfg := password.DefaultConfig()
		cfg.MaxLength = 10

		err := password.Check("Str0ng!Passwo", cfg)
		assert.ErrorIs(t, err, password.ErrTooLong)
	})

	t.Run("zero max length means unbounded", func(t *testing.T) {
		cfg := password.DefaultConfig()
		cfg.MaxLength = 0

		long := "Str0ng!Pass"
		for len(long) < 300 {
			long += "xY3!"
		}
		assert.NoError(t, password.Check(long, cfg))
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		cfg := password.Config{MinLength: 8, LatinOnly: false}

		// 8 two-byte runes: passes an 8-rune minimum.
		assert.NoError(t, password.Check("αααααααα", cfg))
	})
}

func TestCheckRelaxedPolicy(t *testing.T) {
	cfg := password.Config{MinLength: 4}

	assert.NoError(t, password.Check("abcd", cfg))
	assert.NoError(t, password.Check("ABCD", cfg))
	assert.NoError(t, password.Check("1234", cfg))
}

func TestCheckAllowedSpecialSet(t *testing.T) {
	cfg := password.DefaultConfig()
	cfg.AllowedSpecial = "!?"

	t.Run("symbol inside the whitelist counts", func(t *testing.T) {
		assert.NoError(t, password.Check("Str0ngpass!", cfg))
	})

	t.Run("symbol outside the whitelist is disallowed", func(t *testing.T) {
		err := password.Check("Str0ngpass#", cfg)
		assert.ErrorIs(t, err, password.ErrDisallowedCharacter)
	})
}

func TestCheckNonLatinAllowed(t *testing.T) {
	cfg := password.DefaultConfig()
	cfg.LatinOnly = false

	// Cyrillic upper and lower case letters satisfy the class checks.
	assert.NoError(t, password.Check("Пар0ль!пасс", cfg))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PASSWORD_MIN_LENGTH", "12")
	t.Setenv("PASSWORD_REQUIRE_SPECIAL", "false")

	cfg, err := password.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MinLength)
	assert.Equal(t, 64, cfg.MaxLength)
	assert.True(t, cfg.RequireUppercase)
	assert.False(t, cfg.RequireSpecial)
	assert.True(t, cfg.LatinOnly)
}

func BenchmarkCheck(b *testing.B) {
	cfg := password.DefaultConfig()
	for b.Loop() {
		_ = password.Check("Str0ng!Passw0rd", cfg)
	}
}
