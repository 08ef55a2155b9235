package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of v, consistent with Equal within a process.
func Hash(v Value) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	if IsNil(v) {
		h.WriteByte(0xff)
		return h.Sum64()
	}
	h.WriteByte(byte(v.Kind()))

	var b [8]byte
	switch v.Kind() {
	case NullType:
	case BoolType:
		if leaf(v).Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		// equal numbers with different spellings must collide.
		if r, ok := leaf(v).Rat(); ok {
			h.WriteString(r.RatString())
		} else {
			h.WriteString(leaf(v).NumberText())
		}
	case StringType:
		h.WriteString(leaf(v).String)
	case ArrayType:
		for _, e := range v.(Array).Items() {
			binary.LittleEndian.PutUint64(b[:], Hash(e))
			h.Write(b[:])
		}
	case ObjectType:
		// field order is not significant, so entries combine commutatively.
		var sum uint64
		for k, e := range entryMap(v.(Object)) {
			var eh maphash.Hash
			eh.SetSeed(seed)
			eh.WriteString(k)
			binary.LittleEndian.PutUint64(b[:], Hash(e))
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}
