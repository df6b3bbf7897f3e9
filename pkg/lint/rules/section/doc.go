// Package section provides lint rules for individual tip sections.
//
// Rules in this package:
//   - SC01: Section has no prose paragraph
//   - SC02: Section has no SQL example
//   - SC03: Fenced block is missing its sql language tag
package section
