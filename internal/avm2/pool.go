package avm2

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"rotmg-proxy/internal/byteio"
)

// ConstantPool holds the parallel constant tables of an ABC file. Every
// table is 1-indexed on the wire; in memory each slice is prepended with
// a sentinel zero value at index 0 so a wire index can be used directly
// as a Go slice index. Iteration helpers (AllStrings) must skip index 0
// themselves rather than relying on callers to remember to.
type ConstantPool struct {
	Ints       []int32
	UInts      []uint32
	Doubles    []float64
	Strings    []string
	Namespaces []Namespace
	NSSets     []NamespaceSet
	Multinames []Multiname
}

// AllStrings returns the string pool with its index-0 sentinel omitted,
// per spec.md's "AVM2 constant-pool index 0" note.
func (p *ConstantPool) AllStrings() []string {
	if len(p.Strings) == 0 {
		return nil
	}
	return p.Strings[1:]
}

func parseConstantPool(r *byteio.Reader) (*ConstantPool, error) {
	pool := &ConstantPool{}

	var err error
	pool.Ints, err = readCountMinusOne(r, readVarSintInto)
	if err != nil {
		return nil, err
	}
	pool.UInts, err = readCountMinusOneU(r, readVarUintInto)
	if err != nil {
		return nil, err
	}
	pool.Doubles, err = readDoublePool(r)
	if err != nil {
		return nil, err
	}
	pool.Strings, err = readStringPool(r)
	if err != nil {
		return nil, err
	}
	pool.Namespaces, err = readNamespacePool(r, pool.Strings)
	if err != nil {
		return nil, err
	}
	pool.NSSets, err = readNamespaceSetPool(r, pool.Namespaces)
	if err != nil {
		return nil, err
	}
	pool.Multinames, err = readMultinamePool(r, pool)
	if err != nil {
		return nil, err
	}

	return pool, nil
}

// readCountMinusOne reads a u30 count N and then N-1 entries (since
// integer/uint/double pools store count-1 real entries, index 0 being
// the implicit sentinel never serialized). A count of 0 means no
// entries at all (not -1), matching the ABC spec.
func readCountMinusOne(r *byteio.Reader, readOne func(*byteio.Reader) (int32, error)) ([]int32, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := []int32{0}
	for i := uint32(1); i < count; i++ {
		v, err := readOne(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func readCountMinusOneU(r *byteio.Reader, readOne func(*byteio.Reader) (uint32, error)) ([]uint32, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := []uint32{0}
	for i := uint32(1); i < count; i++ {
		v, err := readOne(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func readVarSintInto(r *byteio.Reader) (int32, error)  { return readVarSint(r) }
func readVarUintInto(r *byteio.Reader) (uint32, error) { return readVarUint(r) }

func readDoublePool(r *byteio.Reader) ([]float64, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := []float64{0}
	for i := uint32(1); i < count; i++ {
		b, err := r.Take(8)
		if err != nil {
			return nil, errInsufficientBytes(8, r.Len())
		}
		bits := binary.LittleEndian.Uint64(b)
		out = append(out, math.Float64frombits(bits))
	}
	return out, nil
}

func readStringPool(r *byteio.Reader) ([]string, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := []string{""}
	for i := uint32(1); i < count; i++ {
		n, err := readVarUint(r)
		if err != nil {
			return nil, err
		}
		b, err := r.Take(int(n))
		if err != nil {
			return nil, errInsufficientBytes(int(n), r.Len())
		}
		if !utf8.Valid(b) {
			return nil, errUTF8(errInvalidUTF8(b))
		}
		out = append(out, string(b))
	}
	return out, nil
}

func readNamespacePool(r *byteio.Reader, strings []string) ([]Namespace, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := []Namespace{{}}
	for i := uint32(1); i < count; i++ {
		kindByte, err := r.Take(1)
		if err != nil {
			return nil, errInsufficientBytes(1, r.Len())
		}
		nameIdx, err := readVarUint(r)
		if err != nil {
			return nil, err
		}
		name, err := stringAt(strings, nameIdx)
		if err != nil {
			return nil, err
		}
		out = append(out, Namespace{Kind: NamespaceKind(kindByte[0]), Name: name})
	}
	return out, nil
}

func readNamespaceSetPool(r *byteio.Reader, namespaces []Namespace) ([]NamespaceSet, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := []NamespaceSet{{}}
	for i := uint32(1); i < count; i++ {
		n, err := readVarUint(r)
		if err != nil {
			return nil, err
		}
		set := NamespaceSet{}
		for j := uint32(0); j < n; j++ {
			idx, err := readVarUint(r)
			if err != nil {
				return nil, err
			}
			ns, err := namespaceAt(namespaces, idx)
			if err != nil {
				return nil, err
			}
			set.Namespaces = append(set.Namespaces, ns)
		}
		out = append(out, set)
	}
	return out, nil
}

func readMultinamePool(r *byteio.Reader, pool *ConstantPool) ([]Multiname, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := []Multiname{{}}
	for i := uint32(1); i < count; i++ {
		raw, err := readRawMultiname(r)
		if err != nil {
			return nil, err
		}
		resolved, err := resolveMultiname(raw, pool)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

func resolveMultiname(raw rawMultiname, pool *ConstantPool) (Multiname, error) {
	m := Multiname{Kind: raw.kind}
	switch raw.kind {
	case MultinameKindQName, MultinameKindQNameA:
		ns, err := namespaceAt(pool.Namespaces, raw.nsIdx)
		if err != nil {
			return m, err
		}
		name, err := stringAt(pool.Strings, raw.nameIdx)
		if err != nil {
			return m, err
		}
		m.Namespace = ns
		m.Name = name
	case MultinameKindRTQName, MultinameKindRTQNameA:
		name, err := stringAt(pool.Strings, raw.nameIdx)
		if err != nil {
			return m, err
		}
		m.Name = name
	case MultinameKindMultiname, MultinameKindMultinameA:
		name, err := stringAt(pool.Strings, raw.nameIdx)
		if err != nil {
			return m, err
		}
		m.Name = name
	}
	return m, nil
}

func stringAt(strings []string, idx uint32) (string, error) {
	if int(idx) >= len(strings) {
		return "", errInsufficientBytes(0, 0)
	}
	return strings[idx], nil
}

func namespaceAt(namespaces []Namespace, idx uint32) (Namespace, error) {
	if int(idx) >= len(namespaces) {
		return Namespace{}, errInsufficientBytes(0, 0)
	}
	return namespaces[idx], nil
}

func errInvalidUTF8(b []byte) error {
	_, size := utf8.DecodeRune(b)
	return &utf8Error{at: size}
}

type utf8Error struct{ at int }

func (e *utf8Error) Error() string { return "invalid utf-8 sequence" }
