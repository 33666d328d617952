package filter

import (
	"strings"

	"github.com/dreamware/strand/internal/storage"
)

// Criteria is the optional-field configuration consumed by Apply.
// Nil fields impose no constraint. The JSON shape doubles as the
// filters_applied echo in list responses, with absent filters rendered as
// explicit nulls.
type Criteria struct {
	IsPalindrome      *bool   `json:"is_palindrome"`
	MinLength         *int    `json:"min_length"`
	MaxLength         *int    `json:"max_length"`
	WordCount         *int    `json:"word_count"`
	ContainsCharacter *string `json:"contains_character"`
}

// IsEmpty reports whether no criterion is set
func (c Criteria) IsEmpty() bool {
	return c.IsPalindrome == nil &&
		c.MinLength == nil &&
		c.MaxLength == nil &&
		c.WordCount == nil &&
		c.ContainsCharacter == nil
}

// Apply returns the entries that satisfy every present criterion, in the
// same relative order as the input. Absent criteria impose no constraint.
func Apply(entries []storage.Entry, c Criteria) []storage.Entry {
	results := make([]storage.Entry, 0, len(entries))
	for _, entry := range entries {
		if matches(entry, c) {
			results = append(results, entry)
		}
	}
	return results
}

// matches reports whether entry satisfies every present criterion
func matches(entry storage.Entry, c Criteria) bool {
	props := entry.Properties

	if c.IsPalindrome != nil && props.IsPalindrome != *c.IsPalindrome {
		return false
	}
	if c.MinLength != nil && props.Length < *c.MinLength {
		return false
	}
	if c.MaxLength != nil && props.Length > *c.MaxLength {
		return false
	}
	if c.WordCount != nil && props.WordCount != *c.WordCount {
		return false
	}
	// Containment checks the original untrimmed value, case-sensitively.
	if c.ContainsCharacter != nil && !strings.Contains(entry.Value, *c.ContainsCharacter) {
		return false
	}
	return true
}
