// Package condition parses and evaluates the condition text of an #if directive.
//
// The grammar is flat:
//
//	flag              true when flag is active
//	(and f1 f2 ...)   true when every listed flag is active
//	(or f1 f2 ...)    true when at least one listed flag is active
//
// There is no quoting, escaping or nesting. An (and / (or form that does not
// end in ")" or that contains a parenthesised term is rejected with a
// CONDITION_PARSE error, as is a bare flag containing whitespace or
// parentheses. An empty (and ) holds and an empty (or ) does not.
//
// Evaluation reports every flag a condition names to an optional Recorder,
// whether or not the condition holds, so that flags referenced only in
// disabled branches still count as used.
package condition
