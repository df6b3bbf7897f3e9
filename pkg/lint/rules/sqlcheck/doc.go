// Package sqlcheck provides lexical sanity rules for fenced SQL examples.
// The checks are intentionally weak: they catch typo-level damage (an
// unclosed quote, a stray parenthesis) without attempting to validate SQL.
//
// Rules in this package:
//   - SQ01: Unbalanced brackets in an example
//   - SQ02: Unclosed string literal or quoted identifier
//   - SQ03: Unterminated block comment
//   - SQ04: Empty example
package sqlcheck
