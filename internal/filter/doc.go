// Package filter narrows sets of analyzed string entries by optional
// criteria and translates a constrained set of English phrases into those
// criteria.
//
// # Criteria
//
// Criteria is a plain struct with one optional pointer field per supported
// filter. A nil field imposes no constraint; present fields combine with
// logical AND. The struct is also the wire shape of the filters_applied
// echo, so absent filters serialize as explicit JSON nulls.
//
// # Translation
//
// Translate applies four independent keyword rules, case-insensitively,
// against the query text:
//
//	"palindromic"  -> is_palindrome = true
//	"longer than"  -> min_length = N+1, N parsed from the next token
//	"single word"  -> word_count = 1
//	"contain"      -> contains_character = first rune of the next token
//
// Every rule that matches contributes its criterion; a query can be both
// "palindromic" and mention "contain x". Translation fails with a parse
// error when no rule fires, or when "longer than"/"contain" fires but its
// argument cannot be extracted.
//
// The "contain" rule deliberately takes only the first character of the
// first token after the keyword, and matching runs on the lowercased
// query, so "strings containing a" extracts 'i' from "ing". That is the
// service's long-standing observable behavior and is preserved as is.
package filter
