// Package filter applies #if/#endif directives to the lines of one file.
//
// Process walks the lines once, keeping an inclusion.Context:
//
//   - a block #if (alone on its line) opens a level that lasts until the
//     matching #endif and emits nothing itself;
//   - an inline #if (after other content) gates only the text before it on
//     the same line and closes immediately;
//   - #endif closes the innermost level;
//   - any other line is emitted when the current level is included.
//
// Conditions are parsed and tracked even inside excluded branches, so a flag
// that only appears under a false ancestor is still reported as used.
//
// Nesting errors abort processing: an #endif with nothing open is
// MISMATCHED_ENDIF, and reaching the end of input with open levels is
// MISMATCHED_IF. A malformed condition is CONDITION_PARSE.
package filter
