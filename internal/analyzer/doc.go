// Package analyzer computes the derived properties of a string, providing
// the pure analysis function at the heart of strand and the content
// fingerprint that keys every stored entry.
//
// # Overview
//
// Analysis is a total, deterministic function: any input string, including
// the empty string, produces a valid Properties value, and the same input
// always produces the identical output. Determinism matters because the
// SHA-256 fingerprint doubles as the storage primary key.
//
// # Trimming
//
// All computation runs on the trimmed form of the input (leading and
// trailing whitespace removed). Callers persist the original untrimmed
// value; only analysis and keying use the trimmed form.
//
// # Properties
//
//	Length           - rune count of the trimmed value
//	IsPalindrome     - case-folded trimmed value equals its own reversal
//	UniqueCharacters - distinct runes, case-sensitive
//	WordCount        - whitespace-delimited tokens
//	SHA256Hash       - lowercase hex digest of the trimmed bytes
//	CharacterFrequency - per-rune occurrence counts, whitespace and
//	                     punctuation included
//
// The palindrome check uses simple case folding and exact rune equality.
// There is no Unicode normalization and no stripping of punctuation or
// interior whitespace; "A man a plan" is not a palindrome here.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use.
package analyzer
