package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyze tests property computation across representative inputs
func TestAnalyze(t *testing.T) {
	tests := []struct {
		name           string
		value          string
		wantLength     int
		wantPalindrome bool
		wantUnique     int
		wantWords      int
		wantFreq       map[string]int
	}{
		{
			name:           "simple word",
			value:          "hello",
			wantLength:     5,
			wantPalindrome: false,
			wantUnique:     4,
			wantWords:      1,
			wantFreq:       map[string]int{"h": 1, "e": 1, "l": 2, "o": 1},
		},
		{
			name:           "palindrome with mixed case",
			value:          "Racecar",
			wantLength:     7,
			wantPalindrome: true,
			wantUnique:     5, // R and r count separately
			wantWords:      1,
			wantFreq:       map[string]int{"R": 1, "a": 2, "c": 2, "e": 1, "r": 1},
		},
		{
			name:           "empty string",
			value:          "",
			wantLength:     0,
			wantPalindrome: true,
			wantUnique:     0,
			wantWords:      0,
			wantFreq:       map[string]int{},
		},
		{
			name:           "whitespace only trims to empty",
			value:          "   \t\n  ",
			wantLength:     0,
			wantPalindrome: true,
			wantUnique:     0,
			wantWords:      0,
			wantFreq:       map[string]int{},
		},
		{
			name:           "surrounding whitespace is trimmed",
			value:          "  abc  ",
			wantLength:     3,
			wantPalindrome: false,
			wantUnique:     3,
			wantWords:      1,
			wantFreq:       map[string]int{"a": 1, "b": 1, "c": 1},
		},
		{
			name:           "interior whitespace counts",
			value:          "a man",
			wantLength:     5,
			wantPalindrome: false,
			wantUnique:     4,
			wantWords:      2,
			wantFreq:       map[string]int{"a": 2, " ": 1, "m": 1, "n": 1},
		},
		{
			name:           "spaced palindrome is not stripped",
			value:          "never odd or even",
			wantLength:     17,
			wantPalindrome: false, // spaces are compared too
			wantUnique:     7,
			wantWords:      4,
			wantFreq: map[string]int{
				"n": 2, "e": 4, "v": 2, "r": 2, " ": 3, "o": 2, "d": 2,
			},
		},
		{
			name:           "symmetric with spaces",
			value:          "a b a",
			wantLength:     5,
			wantPalindrome: true,
			wantUnique:     3,
			wantWords:      3,
			wantFreq:       map[string]int{"a": 2, "b": 1, " ": 2},
		},
		{
			name:           "unicode runes counted not bytes",
			value:          "héhé",
			wantLength:     4,
			wantPalindrome: false,
			wantUnique:     2,
			wantWords:      1,
			wantFreq:       map[string]int{"h": 2, "é": 2},
		},
		{
			name:           "unicode palindrome",
			value:          "éé",
			wantLength:     2,
			wantPalindrome: true,
			wantUnique:     1,
			wantWords:      1,
			wantFreq:       map[string]int{"é": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.value)

			assert.Equal(t, tt.wantLength, got.Length, "length")
			assert.Equal(t, tt.wantPalindrome, got.IsPalindrome, "palindrome")
			assert.Equal(t, tt.wantUnique, got.UniqueCharacters, "unique characters")
			assert.Equal(t, tt.wantWords, got.WordCount, "word count")
			assert.Equal(t, tt.wantFreq, got.CharacterFrequency, "frequency map")
			assert.Equal(t, Fingerprint(tt.value), got.SHA256Hash, "hash matches fingerprint")
		})
	}
}

// TestFingerprint tests digest computation and trim-insensitivity
func TestFingerprint(t *testing.T) {
	t.Run("known digest", func(t *testing.T) {
		// sha256("hello")
		want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
		assert.Equal(t, want, Fingerprint("hello"))
	})

	t.Run("empty digest", func(t *testing.T) {
		// sha256("")
		want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
		assert.Equal(t, want, Fingerprint(""))
		assert.Equal(t, want, Fingerprint("   "))
	})

	t.Run("whitespace variants collide", func(t *testing.T) {
		assert.Equal(t, Fingerprint("hello"), Fingerprint("  hello\n"))
	})

	t.Run("lowercase hex", func(t *testing.T) {
		fp := Fingerprint("HELLO")
		require.Len(t, fp, 64)
		assert.Equal(t, strings.ToLower(fp), fp)
	})
}

// TestAnalyzeDeterministic tests that repeated analysis yields identical output
func TestAnalyzeDeterministic(t *testing.T) {
	first := Analyze("determinism matters")
	second := Analyze("determinism matters")
	assert.Equal(t, first, second)
	assert.Equal(t, first.SHA256Hash, second.SHA256Hash)
}

// TestAnalyzeLengthMatchesTrim tests length against the trimmed rune count
func TestAnalyzeLengthMatchesTrim(t *testing.T) {
	for _, s := range []string{"", " ", "abc", " abc ", "héllo wörld", "\ta b\n"} {
		got := Analyze(s)
		assert.Equal(t, len([]rune(strings.TrimSpace(s))), got.Length, "input %q", s)
	}
}
