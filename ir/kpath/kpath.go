// Package kpath parses dotted/bracketed paths such as "a.b[0].c".
//
// A path is a sequence of object keys separated by '.', where any key may be
// followed by bracketed array indexes.  A path may also start with an index:
//
//	"users[0].name"  // object key, array index, object key
//	"[2][0]"         // two array indexes
//	"list[]"         // append to list (only when AllowAppend is set)
//
// Keys are taken verbatim: they may contain any character other than '.',
// '[' and ']', including white space.  There is no quoting.
package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("path syntax error")

// KPath is one segment of a parsed path, linked to the rest by Next.
// Exactly one of Field, Index or Append is set.
type KPath struct {
	Field  *string // object key
	Index  *int    // array position
	Append bool    // "[]", one past the end of an array
	Next   *KPath
}

type parseOpts struct {
	allowAppend bool
}

type ParseOption func(*parseOpts)

// AllowAppend permits the empty index "[]".  Only writers should set it.
func AllowAppend(v bool) ParseOption {
	return func(o *parseOpts) { o.allowAppend = v }
}

// Parse parses path.  Surrounding white space is ignored; an empty path is
// an error, as is any path outside the grammar.  Errors wrap ErrSyntax.
func Parse(path string, opts ...ParseOption) (*KPath, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	src := strings.TrimSpace(path)
	if src == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSyntax)
	}
	ps := &pathScanner{src: src, opts: po}
	root := &KPath{}
	if src[0] == '[' {
		if err := ps.frag(0, root); err != nil {
			return nil, err
		}
		return root, nil
	}
	field, rest, err := ps.field(0)
	if err != nil {
		return nil, err
	}
	root.Field = &field
	if rest == len(src) {
		return root, nil
	}
	next := &KPath{}
	if err := ps.frag(rest, next); err != nil {
		return nil, err
	}
	root.Next = next
	return root, nil
}

type pathScanner struct {
	src  string
	opts *parseOpts
}

func (ps *pathScanner) errorf(at int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d in %q", ErrSyntax, msg, at, ps.src)
}

// frag parses the segment starting at ps.src[at], which is a separator,
// into kp and continues with the rest.
func (ps *pathScanner) frag(at int, kp *KPath) error {
	src := ps.src
	var rest int
	switch src[at] {
	case '.':
		if at+1 == len(src) {
			return ps.errorf(at, "trailing '.'")
		}
		switch src[at+1] {
		case '.':
			return ps.errorf(at+1, "empty key")
		case '[':
			return ps.errorf(at+1, "'[' after '.'")
		}
		field, end, err := ps.field(at + 1)
		if err != nil {
			return err
		}
		kp.Field = &field
		rest = end
	case '[':
		end, err := ps.index(at, kp)
		if err != nil {
			return err
		}
		rest = end
		if rest < len(src) && src[rest] != '.' && src[rest] != '[' {
			return ps.errorf(rest, "expected '.' or '[' after ']', got %q", src[rest])
		}
	case ']':
		return ps.errorf(at, "unmatched ']'")
	default:
		return ps.errorf(at, "expected '.' or '['")
	}
	if rest == len(src) {
		return nil
	}
	next := &KPath{}
	if err := ps.frag(rest, next); err != nil {
		return err
	}
	kp.Next = next
	return nil
}

// field scans a key starting at ps.src[at] and returns it with the offset of
// the following separator.
func (ps *pathScanner) field(at int) (string, int, error) {
	src := ps.src
	end := at
	for end < len(src) {
		c := src[end]
		if c == '.' || c == '[' || c == ']' {
			break
		}
		end++
	}
	if end == at {
		if src[at] == '.' {
			return "", 0, ps.errorf(at, "leading '.'")
		}
		return "", 0, ps.errorf(at, "empty key")
	}
	if end < len(src) && src[end] == ']' {
		return "", 0, ps.errorf(end, "unmatched ']'")
	}
	return src[at:end], end, nil
}

// index scans "[digits]" or "[]" at ps.src[at] into kp and returns the
// offset just past ']'.
func (ps *pathScanner) index(at int, kp *KPath) (int, error) {
	src := ps.src
	end := at + 1
	for end < len(src) && src[end] >= '0' && src[end] <= '9' {
		end++
	}
	if end == len(src) {
		return 0, ps.errorf(at, "unterminated '['")
	}
	if src[end] != ']' {
		return 0, ps.errorf(end, "invalid index character %q", src[end])
	}
	digits := src[at+1 : end]
	if digits == "" {
		if !ps.opts.allowAppend {
			return 0, ps.errorf(at, "empty index")
		}
		kp.Append = true
		return end + 1, nil
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return 0, ps.errorf(at+1, "index %s out of range", digits)
	}
	kp.Index = &i
	return end + 1, nil
}

// String returns the canonical text of the path starting at p.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil && x != p {
			buf.WriteByte('.')
		}
		buf.WriteString(x.SegmentString())
	}
	return buf.String()
}

// SegmentString returns the text of this segment alone.
func (p *KPath) SegmentString() string {
	switch {
	case p == nil:
		return ""
	case p.Field != nil:
		return *p.Field
	case p.Index != nil:
		return "[" + strconv.Itoa(*p.Index) + "]"
	case p.Append:
		return "[]"
	}
	return ""
}

// IsIndex reports whether p addresses an array element, including Append.
func (p *KPath) IsIndex() bool {
	return p.Index != nil || p.Append
}

func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Segments returns the segments of the path in order.  The returned
// segments still link to their successors.
func (p *KPath) Segments() []*KPath {
	res := make([]*KPath, 0, p.Len())
	for x := p; x != nil; x = x.Next {
		res = append(res, x)
	}
	return res
}
