// Package toc provides lint rules for the table of contents.
//
// Rules in this package:
//   - TC01: TOC anchor resolves to no section heading
//   - TC02: Section heading missing from the TOC
//   - TC03: Two TOC entries target the same anchor
//   - TC04: TOC entry count does not match tip section count
package toc
