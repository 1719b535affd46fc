// Package rename implements the two rename passes of a conversion.
//
// FileStems renames files whose name without the final extension equals
// an old identifier, keeping the extension. Directories renames
// directories whose full name equals an old identifier, then descends
// into the renamed directory. Both walk depth first, re-list each
// directory when they enter it, and stop at the first I/O error. Renames
// performed before the error stay on disk and are returned alongside it.
package rename
