package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Properties holds the derived properties of an analyzed string.
// Field names on the wire follow the service's JSON contract.
type Properties struct {
	// CharacterFrequency maps each rune of the trimmed value to its
	// occurrence count. Keys are single-rune strings so the map survives
	// JSON encoding.
	CharacterFrequency map[string]int `json:"character_frequency_map"`

	// SHA256Hash is the lowercase hex digest of the trimmed value.
	// Identical to the entry id.
	SHA256Hash string `json:"sha256_hash"`

	// Length is the rune count of the trimmed value.
	Length int `json:"length"`

	// UniqueCharacters is the number of distinct runes in the trimmed
	// value, case-sensitive.
	UniqueCharacters int `json:"unique_characters"`

	// WordCount is the number of whitespace-delimited tokens in the
	// trimmed value.
	WordCount int `json:"word_count"`

	// IsPalindrome reports whether the trimmed, case-folded value reads
	// identically forward and backward.
	IsPalindrome bool `json:"is_palindrome"`
}

// Fingerprint returns the content fingerprint of value: the lowercase hex
// SHA-256 digest of the value with leading and trailing whitespace removed.
// The fingerprint is the storage primary key, so two values that differ
// only in surrounding whitespace collide deliberately.
func Fingerprint(value string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(value)))
	return hex.EncodeToString(sum[:])
}

// Analyze computes the derived properties of value.
//
// Analyze is total: every input, including the empty string, yields a valid
// result. The empty string analyzes to length 0, trivially palindromic,
// zero unique characters, zero words, the digest of the empty byte
// sequence, and an empty frequency map.
func Analyze(value string) Properties {
	trimmed := strings.TrimSpace(value)
	runes := []rune(trimmed)

	freq := make(map[string]int, len(runes))
	for _, r := range runes {
		freq[string(r)]++
	}

	return Properties{
		Length:             len(runes),
		IsPalindrome:       isPalindrome(trimmed),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(trimmed)),
		SHA256Hash:         Fingerprint(trimmed),
		CharacterFrequency: freq,
	}
}

// isPalindrome reports whether the case-folded string equals its own
// reversal, compared rune by rune. No normalization beyond lowercasing.
func isPalindrome(s string) bool {
	runes := []rune(strings.ToLower(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
