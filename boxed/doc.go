// Package boxed provides fail-soft access to JSON values.
//
// A Value is either a valid JSON value or a sentinel recording why a value
// could not be produced: a null was in the way (HadNull), a key or index did
// not exist (HadMissing) or a value had the wrong shape (HadInvalid).
// Sentinels are ordinary values.  They coerce to any requested shape while
// keeping their ErrKind, so navigation can be chained and checked once at the
// end:
//
//	v, err := boxed.Eval(root, "result.items[2].name")
//	if err != nil {
//		// malformed path
//	}
//	name := v.TextOr("unknown")
//
// Set writes through a path, creating missing intermediate containers.  The
// writes of a single Set are journaled and applied only when the whole path
// resolves, so a failed Set leaves the document as it was.
//
// Every sentinel renders as JSON null.
package boxed
