package avm2

import "rotmg-proxy/internal/byteio"

// method signature flag bits (ABC MethodInfo.flags).
const (
	methodFlagHasOptional   = 0x08
	methodFlagHasParamNames = 0x80
)

// instance flag bits (ABC InstanceInfo.flags).
const (
	instanceFlagProtectedNs = 0x08
)

// MethodSignature is parsed far enough to skip past; the extractor never
// inspects method bodies or signatures directly, only class/instance
// trait tables, so only enough structure is kept to know where the next
// table entry starts.
type MethodSignature struct {
	ReturnType Multiname
	ParamTypes []Multiname
}

// Instance is an ABC instance_info entry paired 1:1 by index with a
// Class entry of the same index.
type Instance struct {
	Name           Multiname
	SuperName      Multiname
	ProtectedNs    *Namespace
	Interfaces     []Multiname
	InitializerIdx uint32
	Traits         []Trait
}

// Class is an ABC class_info entry.
type Class struct {
	InitializerIdx uint32
	Traits         []Trait
}

// Script is an ABC script_info entry (top-level initializer + traits).
type Script struct {
	InitializerIdx uint32
	Traits         []Trait
}

// File is the parsed subset of an ABC file this package understands:
// enough to serve the symbol-directed queries in query.go.
type File struct {
	MinorVersion, MajorVersion uint16
	Pool                       *ConstantPool
	Methods                    []MethodSignature
	Instances                  []Instance
	Classes                    []Class
	Scripts                    []Script
}

// ParseABC parses an entire ABC file payload (the bytes of a DoABC tag,
// minus its own 4-byte flags word and NUL-terminated name which the
// caller strips — see swf.go) in the exact field order spec.md §4.C mandates.
func ParseABC(data []byte) (*File, error) {
	r := byteio.New(data)

	minorB, err := r.Take(2)
	if err != nil {
		return nil, errInsufficientBytes(2, r.Len())
	}
	majorB, err := r.Take(2)
	if err != nil {
		return nil, errInsufficientBytes(2, r.Len())
	}
	minor := uint16(minorB[0]) | uint16(minorB[1])<<8
	major := uint16(majorB[0]) | uint16(majorB[1])<<8

	pool, err := parseConstantPool(r)
	if err != nil {
		return nil, err
	}

	methods, err := parseMethodSignatures(r, pool)
	if err != nil {
		return nil, err
	}

	if err := skipMetadata(r); err != nil {
		return nil, err
	}

	instanceCount, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	instances := make([]Instance, 0, instanceCount)
	for i := uint32(0); i < instanceCount; i++ {
		inst, err := parseInstance(r, pool)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}

	classes := make([]Class, 0, instanceCount)
	for i := uint32(0); i < instanceCount; i++ {
		cls, err := parseClass(r, pool)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cls)
	}

	scriptCount, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	scripts := make([]Script, 0, scriptCount)
	for i := uint32(0); i < scriptCount; i++ {
		s, err := parseScript(r, pool)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	if err := skipMethodBodies(r, pool); err != nil {
		return nil, err
	}

	return &File{
		MinorVersion: minor,
		MajorVersion: major,
		Pool:         pool,
		Methods:      methods,
		Instances:    instances,
		Classes:      classes,
		Scripts:      scripts,
	}, nil
}

func parseMethodSignatures(r *byteio.Reader, pool *ConstantPool) ([]MethodSignature, error) {
	count, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	out := make([]MethodSignature, 0, count)
	for i := uint32(0); i < count; i++ {
		paramCount, err := readVarUint(r)
		if err != nil {
			return nil, err
		}
		retIdx, err := readVarUint(r)
		if err != nil {
			return nil, err
		}
		ret, err := multinameAt(pool, retIdx)
		if err != nil {
			return nil, err
		}
		params := make([]Multiname, 0, paramCount)
		for p := uint32(0); p < paramCount; p++ {
			pIdx, err := readVarUint(r)
			if err != nil {
				return nil, err
			}
			pn, err := multinameAt(pool, pIdx)
			if err != nil {
				return nil, err
			}
			params = append(params, pn)
		}
		if _, err := readVarUint(r); err != nil { // name index
			return nil, err
		}
		flagsB, err := r.Take(1)
		if err != nil {
			return nil, errInsufficientBytes(1, r.Len())
		}
		flags := flagsB[0]
		if flags&methodFlagHasOptional != 0 {
			optCount, err := readVarUint(r)
			if err != nil {
				return nil, err
			}
			for o := uint32(0); o < optCount; o++ {
				if _, err := readVarUint(r); err != nil {
					return nil, err
				}
				if _, err := r.Take(1); err != nil {
					return nil, errInsufficientBytes(1, r.Len())
				}
			}
		}
		if flags&methodFlagHasParamNames != 0 {
			for p := uint32(0); p < paramCount; p++ {
				if _, err := readVarUint(r); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, MethodSignature{ReturnType: ret, ParamTypes: params})
	}
	return out, nil
}

func skipMetadata(r *byteio.Reader) error {
	count, err := readVarUint(r)
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		if _, err := readVarUint(r); err != nil { // name index
			return err
		}
		itemCount, err := readVarUint(r)
		if err != nil {
			return err
		}
		for j := uint32(0); j < itemCount; j++ {
			if _, err := readVarUint(r); err != nil { // key
				return err
			}
			if _, err := readVarUint(r); err != nil { // value
				return err
			}
		}
	}
	return nil
}

func parseInstance(r *byteio.Reader, pool *ConstantPool) (Instance, error) {
	nameIdx, err := readVarUint(r)
	if err != nil {
		return Instance{}, err
	}
	name, err := multinameAt(pool, nameIdx)
	if err != nil {
		return Instance{}, err
	}
	superIdx, err := readVarUint(r)
	if err != nil {
		return Instance{}, err
	}
	super, err := multinameAt(pool, superIdx)
	if err != nil {
		return Instance{}, err
	}
	flagsB, err := r.Take(1)
	if err != nil {
		return Instance{}, errInsufficientBytes(1, r.Len())
	}
	flags := flagsB[0]

	inst := Instance{Name: name, SuperName: super}

	if flags&instanceFlagProtectedNs != 0 {
		nsIdx, err := readVarUint(r)
		if err != nil {
			return inst, err
		}
		ns, err := namespaceAt(pool.Namespaces, nsIdx)
		if err != nil {
			return inst, err
		}
		inst.ProtectedNs = &ns
	}

	ifaceCount, err := readVarUint(r)
	if err != nil {
		return inst, err
	}
	for i := uint32(0); i < ifaceCount; i++ {
		idx, err := readVarUint(r)
		if err != nil {
			return inst, err
		}
		mn, err := multinameAt(pool, idx)
		if err != nil {
			return inst, err
		}
		inst.Interfaces = append(inst.Interfaces, mn)
	}

	initIdx, err := readVarUint(r)
	if err != nil {
		return inst, err
	}
	inst.InitializerIdx = initIdx

	traits, err := parseTraits(r, pool)
	if err != nil {
		return inst, err
	}
	inst.Traits = traits

	return inst, nil
}

func parseClass(r *byteio.Reader, pool *ConstantPool) (Class, error) {
	cinit, err := readVarUint(r)
	if err != nil {
		return Class{}, err
	}
	traits, err := parseTraits(r, pool)
	if err != nil {
		return Class{}, err
	}
	return Class{InitializerIdx: cinit, Traits: traits}, nil
}

func parseScript(r *byteio.Reader, pool *ConstantPool) (Script, error) {
	init, err := readVarUint(r)
	if err != nil {
		return Script{}, err
	}
	traits, err := parseTraits(r, pool)
	if err != nil {
		return Script{}, err
	}
	return Script{InitializerIdx: init, Traits: traits}, nil
}

func skipMethodBodies(r *byteio.Reader, pool *ConstantPool) error {
	count, err := readVarUint(r)
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		if _, err := readVarUint(r); err != nil { // method index
			return err
		}
		if _, err := readVarUint(r); err != nil { // max_stack
			return err
		}
		if _, err := readVarUint(r); err != nil { // local_count
			return err
		}
		if _, err := readVarUint(r); err != nil { // init_scope_depth
			return err
		}
		if _, err := readVarUint(r); err != nil { // max_scope_depth
			return err
		}
		codeLen, err := readVarUint(r)
		if err != nil {
			return err
		}
		if _, err := r.Take(int(codeLen)); err != nil {
			return errInsufficientBytes(int(codeLen), r.Len())
		}
		excCount, err := readVarUint(r)
		if err != nil {
			return err
		}
		for e := uint32(0); e < excCount; e++ {
			for f := 0; f < 3; f++ { // from, to, target
				if _, err := readVarUint(r); err != nil {
					return err
				}
			}
			if _, err := readVarUint(r); err != nil { // exc type index
				return err
			}
			if _, err := readVarUint(r); err != nil { // var name index
				return err
			}
		}
		if _, err := parseTraits(r, pool); err != nil {
			return err
		}
	}
	return nil
}
