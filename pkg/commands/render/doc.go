// Package render implements the RenderTree command: it walks a source tree,
// filters every file against the active flags, materializes the results
// under the destination root and builds the flag usage report.
//
// Files are processed one at a time unless RenderTreeOptions.Jobs is greater
// than one, in which case a bounded worker pool is used. Either way the first
// error stops the run and files already written stay written.
package render
