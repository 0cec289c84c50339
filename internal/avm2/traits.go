package avm2

import "rotmg-proxy/internal/byteio"

// TraitKind is the low nibble of a trait's kind byte.
type TraitKind uint8

const (
	TraitKindSlot TraitKind = iota
	TraitKindMethod
	TraitKindGetter
	TraitKindSetter
	TraitKindClass
	TraitKindFunction
	TraitKindConst
)

// Trait attribute bits, the high nibble of the kind byte.
const (
	traitFlagFinal    = 0x1
	traitFlagOverride = 0x2
	traitFlagMetadata = 0x4
)

// valueKind tags which constant pool a slot/const trait's value lives in.
const (
	valueKindUndefined = 0x00
	valueKindUtf8      = 0x01
	valueKindInt       = 0x03
	valueKindUInt      = 0x04
	valueKindDouble    = 0x06
	valueKindTrue      = 0x0B
	valueKindFalse     = 0x0A
	valueKindNull      = 0x0C
)

// TraitValueKind classifies the concrete Go type a slot/const's Value
// holds, for the subset of value kinds the extractor resolves.
type TraitValueKind int

const (
	TraitValueNone TraitValueKind = iota
	TraitValueString
	TraitValueInt
	TraitValueUInt
	TraitValueDouble
	TraitValueBool
)

// Trait is a named member of a class/instance/script. Only Name, Kind,
// Final, Override and — for Slot/Const — ValueKind/Value are populated; method/getter/
// setter/class/function bodies are parsed only far enough to skip past
// (per spec.md §4.C), so their operand fields are discarded.
type Trait struct {
	Name       Multiname
	Kind       TraitKind
	Final      bool
	Override   bool
	ValueKind  TraitValueKind
	Value      interface{} // string, int32, uint32, float64, or bool
}

func parseTraits(r *byteio.Reader, pool *ConstantPool) ([]Trait, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	traits := make([]Trait, 0, count)
	for i := uint32(0); i < count; i++ {
		t, err := parseTrait(r, pool)
		if err != nil {
			return nil, err
		}
		traits = append(traits, t)
	}
	return traits, nil
}

func parseTrait(r *byteio.Reader, pool *ConstantPool) (Trait, error) {
	nameIdx, err := readVarUint(r)
	if err != nil {
		return Trait{}, err
	}
	name, err := multinameAt(pool, nameIdx)
	if err != nil {
		return Trait{}, err
	}

	kindByte, err := r.Take(1)
	if err != nil {
		return Trait{}, errInsufficientBytes(1, r.Len())
	}
	kind := TraitKind(kindByte[0] & 0x0f)
	flags := (kindByte[0] >> 4) & 0x0f

	t := Trait{
		Name:     name,
		Kind:     kind,
		Final:    flags&traitFlagFinal != 0,
		Override: flags&traitFlagOverride != 0,
	}

	switch kind {
	case TraitKindSlot, TraitKindConst:
		if _, err := readVarUint(r); err != nil { // slot_id
			return t, err
		}
		if _, err := readVarUint(r); err != nil { // type_name index
			return t, err
		}
		vindex, err := readVarUint(r)
		if err != nil {
			return t, err
		}
		if vindex != 0 {
			vkindByte, err := r.Take(1)
			if err != nil {
				return t, errInsufficientBytes(1, r.Len())
			}
			kindTag, value, err := resolveTraitValue(vkindByte[0], vindex, pool)
			if err != nil {
				return t, err
			}
			t.ValueKind = kindTag
			t.Value = value
		}
	case TraitKindMethod, TraitKindGetter, TraitKindSetter:
		if _, err := readVarUint(r); err != nil { // disp_id
			return t, err
		}
		if _, err := readVarUint(r); err != nil { // method index
			return t, err
		}
	case TraitKindClass:
		if _, err := readVarUint(r); err != nil { // slot_id
			return t, err
		}
		if _, err := readVarUint(r); err != nil { // class index
			return t, err
		}
	case TraitKindFunction:
		if _, err := readVarUint(r); err != nil { // slot_id
			return t, err
		}
		if _, err := readVarUint(r); err != nil { // function index
			return t, err
		}
	default:
		return t, errInvalidFlag(uint32(kind), "trait kind")
	}

	if flags&traitFlagMetadata != 0 {
		metaCount, err := readVarUint(r)
		if err != nil {
			return t, err
		}
		for i := uint32(0); i < metaCount; i++ {
			if _, err := readVarUint(r); err != nil {
				return t, err
			}
		}
	}

	return t, nil
}

func resolveTraitValue(vkind byte, vindex uint32, pool *ConstantPool) (TraitValueKind, interface{}, error) {
	switch vkind {
	case valueKindUndefined:
		return TraitValueNone, nil, nil
	case valueKindUtf8:
		s, err := stringAt(pool.Strings, vindex)
		if err != nil {
			return TraitValueNone, nil, err
		}
		return TraitValueString, s, nil
	case valueKindInt:
		if int(vindex) >= len(pool.Ints) {
			return TraitValueNone, nil, errInsufficientBytes(0, 0)
		}
		return TraitValueInt, pool.Ints[vindex], nil
	case valueKindUInt:
		if int(vindex) >= len(pool.UInts) {
			return TraitValueNone, nil, errInsufficientBytes(0, 0)
		}
		return TraitValueUInt, pool.UInts[vindex], nil
	case valueKindDouble:
		if int(vindex) >= len(pool.Doubles) {
			return TraitValueNone, nil, errInsufficientBytes(0, 0)
		}
		return TraitValueDouble, pool.Doubles[vindex], nil
	case valueKindTrue:
		return TraitValueBool, true, nil
	case valueKindFalse:
		return TraitValueBool, false, nil
	case valueKindNull:
		return TraitValueNone, nil, nil
	default:
		// Namespace-typed and other rarer constants: not needed by the
		// extractor's symbol queries, recorded as "no value" rather than
		// failing the whole parse.
		return TraitValueNone, nil, nil
	}
}

func multinameAt(pool *ConstantPool, idx uint32) (Multiname, error) {
	if int(idx) >= len(pool.Multinames) {
		return Multiname{}, errInsufficientBytes(0, 0)
	}
	return pool.Multinames[idx], nil
}
