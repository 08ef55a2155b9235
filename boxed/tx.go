package boxed

import (
	"fmt"

	"github.com/signadot/boxed-json/debug"
	"github.com/signadot/boxed-json/ir"
	"github.com/signadot/boxed-json/mutable"
)

// write is a pending change to one container.  Exactly one of obj and arr
// is set.  An array write at the current length appends.
type write struct {
	obj   *mutable.Object
	arr   *mutable.Array
	key   string
	index int
	value ir.Value
}

// tx journals the writes of one Set.  Nothing touches the document until
// commit.
type tx struct {
	writes []write
}

func (t *tx) put(target Value, key string, v ir.Value) error {
	o, ok := target.v.(*mutable.Object)
	if !ok {
		return fmt.Errorf("%w: put %q on %T", ErrReadOnly, key, target.v)
	}
	t.writes = append(t.writes, write{obj: o, key: key, value: v})
	return nil
}

func (t *tx) setIndex(target Value, i int, v ir.Value) error {
	a, ok := target.v.(*mutable.Array)
	if !ok {
		return fmt.Errorf("%w: set [%d] on %T", ErrReadOnly, i, target.v)
	}
	t.writes = append(t.writes, write{arr: a, index: i, value: v})
	return nil
}

// commit applies the journal in order.  Indexes were checked against the
// array lengths during the walk and each container is written at most once,
// so no write can fail.
func (t *tx) commit() {
	for _, w := range t.writes {
		if debug.Set() {
			debug.Logf("commit %s = %s", w, w.value)
		}
		if w.obj != nil {
			w.obj.Put(w.key, w.value)
			continue
		}
		if w.index == w.arr.Len() {
			w.arr.Append(w.value)
			continue
		}
		if _, err := w.arr.Set(w.index, w.value); err != nil {
			panic(err)
		}
	}
	t.writes = nil
}

func (w write) String() string {
	if w.obj != nil {
		return fmt.Sprintf("[%q]", w.key)
	}
	return fmt.Sprintf("[%d]", w.index)
}
