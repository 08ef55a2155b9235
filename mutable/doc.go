// Package mutable provides editable JSON arrays and objects.
//
// Array and Object hold their children as ir.Value.  A child may be a plain
// *ir.Node, including a plain container, until it is read through At or
// Get: at that point a plain container child is replaced, in the same slot,
// by an Array or Object wrapping a shallow copy of it, and the wrapper is
// returned.  Every later read of that slot sees the wrapper, so edits made
// through it are visible from the parent.
//
// Raw and RawGet read a slot without that replacement.  They are meant for
// leaf values; a container obtained from them must not be edited.
//
// Absent (nil) values are never stored: Set, Append, Insert and Put store
// an explicit JSON null instead.
//
// Arrays and objects are not safe for concurrent use.
package mutable
