package filter

import (
	"strconv"
	"strings"

	"github.com/dreamware/strand/internal/errors"
)

// Keyword triggers recognized by Translate. Matching is case-insensitive
// and substring-based, so "contain" also fires on "contains" and
// "containing".
const (
	triggerPalindromic = "palindromic"
	triggerLongerThan  = "longer than"
	triggerSingleWord  = "single word"
	triggerContain     = "contain"
)

// Translate converts a constrained English query into filter criteria.
//
// Each trigger is applied independently against the lowercased query and
// contributes at most one criterion; all triggers that match are applied
// simultaneously. Returns errors.ErrParse when no trigger fires, or when a
// "longer than"/"contain" trigger fires but its argument cannot be
// extracted. On failure no partial criteria are returned.
func Translate(query string) (Criteria, error) {
	lower := strings.ToLower(query)
	var criteria Criteria

	if strings.Contains(lower, triggerPalindromic) {
		isPalindrome := true
		criteria.IsPalindrome = &isPalindrome
	}

	if rest, ok := textAfter(lower, triggerLongerThan); ok {
		n, err := firstTokenAsInt(rest)
		if err != nil {
			return Criteria{}, errors.NewParsef("unable to parse number in query")
		}
		// "longer than N" is a strict bound; the engine's min_length is
		// inclusive, hence N+1.
		minLength := n + 1
		criteria.MinLength = &minLength
	}

	if strings.Contains(lower, triggerSingleWord) {
		wordCount := 1
		criteria.WordCount = &wordCount
	}

	if rest, ok := textAfter(lower, triggerContain); ok {
		ch, ok := firstCharacter(rest)
		if !ok {
			return Criteria{}, errors.NewParsef("unable to parse contained character")
		}
		criteria.ContainsCharacter = &ch
	}

	if criteria.IsEmpty() {
		return Criteria{}, errors.NewParsef("unable to parse natural language query")
	}
	return criteria, nil
}

// textAfter returns the text following the first occurrence of trigger
func textAfter(s, trigger string) (string, bool) {
	idx := strings.Index(s, trigger)
	if idx < 0 {
		return "", false
	}
	return s[idx+len(trigger):], true
}

// firstTokenAsInt parses the first whitespace-delimited token of s as an
// integer
func firstTokenAsInt(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, errors.New("no token")
	}
	return strconv.Atoi(fields[0])
}

// firstCharacter returns the first rune of the first whitespace-delimited
// token of s, as a single-rune string
func firstCharacter(s string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return "", false
	}
	runes := []rune(fields[0])
	return string(runes[0]), true
}
