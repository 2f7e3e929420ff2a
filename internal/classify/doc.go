// Package classify derives exam_type and level labels from document names.
//
// Every derivation is an ordered RuleSet: rules are evaluated top to bottom
// and the first match wins, falling back to a default label. Keeping
// precedence in a table makes it auditable and lets each rule be tested in
// isolation.
package classify
