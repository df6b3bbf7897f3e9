// Package lint provides the rule framework for checking the tips document.
//
// Rules are data-driven RuleDef values that register themselves in a global
// registry from init() functions in the rule packages (pkg/lint/rules/...).
// The CLI blank-imports those packages to make the rules available, then runs
// an Analyzer over the parsed document.
//
// Three groups exist:
//
//   - toc:     table-of-contents consistency (anchors resolve, counts match)
//   - section: per-section structure (prose present, examples tagged sql)
//   - sql:     lexical sanity of fenced SQL examples
//
// The analyzer collects every diagnostic before reporting; a single broken
// anchor never hides the rest.
package lint
