package bon

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	tagInt byte = iota + 1
	tagFloat
	tagAtom
	tagString
	tagBinary
	tagTuple
	tagSeq
	tagRecord
	tagSet
)

// Hash returns a hash of v that is consistent with Equal: if Equal(a, b)
// then Hash(a) == Hash(b).  Arrays and lists hash alike, as do objects and
// maps.  Set and map hashes do not depend on iteration order.
func Hash(v Value) uint64 {
	switch v := v.(type) {
	case Int:
		return hashUint(tagInt, uint64(v))
	case Float:
		f := v.f
		if f == 0 {
			// Fold -0 into +0.
			f = 0
		}
		return hashUint(tagFloat, math.Float64bits(f))
	case Atom:
		return hashUint(tagAtom, uint64(v.id))
	case String:
		return hashString(tagString, string(v))
	case Binary:
		return hashString(tagBinary, string(v.b))
	case Tuple:
		return hashSlice(tagTuple, v.fields)
	case Array:
		return hashSlice(tagSeq, v)
	case *List:
		d := newDigest(tagSeq)
		for l := v; l != nil; l = l.tail {
			writeUint(d, Hash(l.head))
		}
		return d.Sum64()
	case Object:
		var sum uint64
		for k, val := range v {
			sum += hashPair(Hash(String(k)), Hash(val))
		}
		return hashUint(tagRecord, sum)
	case *Map:
		var sum uint64
		v.Range(func(key, val Value) bool {
			sum += hashPair(Hash(key), Hash(val))
			return true
		})
		return hashUint(tagRecord, sum)
	case *Set:
		var sum uint64
		for _, val := range v.Values() {
			sum += Hash(val)
		}
		return hashUint(tagSet, sum)
	}
	return 0
}

func newDigest(tag byte) *xxhash.Digest {
	d := xxhash.New()
	d.Write([]byte{tag})
	return d
}

func writeUint(d *xxhash.Digest, u uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	d.Write(b[:])
}

func hashUint(tag byte, u uint64) uint64 {
	var b [9]byte
	b[0] = tag
	binary.LittleEndian.PutUint64(b[1:], u)
	return xxhash.Sum64(b[:])
}

func hashString(tag byte, s string) uint64 {
	d := newDigest(tag)
	d.WriteString(s)
	return d.Sum64()
}

func hashSlice(tag byte, vals []Value) uint64 {
	d := newDigest(tag)
	for _, v := range vals {
		writeUint(d, Hash(v))
	}
	return d.Sum64()
}

func hashPair(k, v uint64) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], k)
	binary.LittleEndian.PutUint64(b[8:], v)
	return xxhash.Sum64(b[:])
}
