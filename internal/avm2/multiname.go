package avm2

import (
	"fmt"

	"rotmg-proxy/internal/byteio"
)

// MultinameKind is the 1-byte tag distinguishing a multiname's wire
// shape. The ABC format defines more kind bytes than structural shapes:
// the "A" (attribute) kinds share their non-attribute counterpart's
// operand layout and differ only in AS3-level semantics the extractor
// never needs, so they are parsed identically.
type MultinameKind uint8

const (
	MultinameKindQName       MultinameKind = 0x07
	MultinameKindQNameA      MultinameKind = 0x0D
	MultinameKindRTQName     MultinameKind = 0x0F
	MultinameKindRTQNameA    MultinameKind = 0x10
	MultinameKindRTQNameL    MultinameKind = 0x11
	MultinameKindRTQNameLA   MultinameKind = 0x12
	MultinameKindMultiname   MultinameKind = 0x09
	MultinameKindMultinameA  MultinameKind = 0x0E
	MultinameKindMultinameL  MultinameKind = 0x1B
	MultinameKindMultinameLA MultinameKind = 0x1C
)

// Multiname is the tagged-union qualified name. Only Namespace and Name
// are populated for the QName-shaped kinds the extractor cares about
// (class/instance names, trait names); the runtime-qualified and
// namespace-set-qualified shapes carry an empty Namespace since their
// actual namespace is resolved at AVM2 execution time, not parse time.
type Multiname struct {
	Kind      MultinameKind
	Namespace Namespace // valid for QName-shaped kinds only
	Name      string
}

// rawMultiname is the pre-resolution wire form: indices into the
// constant pool rather than resolved values, since the pool itself must
// be fully loaded before indices can be dereferenced.
type rawMultiname struct {
	kind        MultinameKind
	nsIdx       uint32 // QName
	nameIdx     uint32 // QName, RTQName, Multiname
	nsSetIdx    uint32 // Multiname, MultinameL
}

func readRawMultiname(r *byteio.Reader) (rawMultiname, error) {
	kindByte, err := r.Take(1)
	if err != nil {
		return rawMultiname{}, errInsufficientBytes(1, r.Len())
	}
	kind := MultinameKind(kindByte[0])
	m := rawMultiname{kind: kind}

	switch kind {
	case MultinameKindQName, MultinameKindQNameA:
		m.nsIdx, err = readVarUint(r)
		if err != nil {
			return m, err
		}
		m.nameIdx, err = readVarUint(r)
		if err != nil {
			return m, err
		}
	case MultinameKindRTQName, MultinameKindRTQNameA:
		m.nameIdx, err = readVarUint(r)
		if err != nil {
			return m, err
		}
	case MultinameKindRTQNameL, MultinameKindRTQNameLA:
		// no operands; namespace and name are both resolved at runtime
	case MultinameKindMultiname, MultinameKindMultinameA:
		m.nameIdx, err = readVarUint(r)
		if err != nil {
			return m, err
		}
		m.nsSetIdx, err = readVarUint(r)
		if err != nil {
			return m, err
		}
	case MultinameKindMultinameL, MultinameKindMultinameLA:
		m.nsSetIdx, err = readVarUint(r)
		if err != nil {
			return m, err
		}
	default:
		return m, errInvalidFlag(uint32(kind), "multiname kind")
	}

	return m, nil
}

func (m rawMultiname) String() string {
	return fmt.Sprintf("multiname{kind=0x%02x}", m.kind)
}
