package avm2

// LinkedClass is the derived projection joining an ABC class with its
// instance, resolving multiname indices to (namespace, local-name) pairs
// and surfacing the slot/const traits with a concrete value as the
// surface the extractor's symbol queries operate on.
type LinkedClass struct {
	Namespace Namespace
	Name      string
	Consts    []Trait // slot/const traits from both instance and class trait lists, value present
}

// LinkedClasses joins every ABC class with its same-index instance.
// Instance and Class tables are written to the ABC file in lockstep (see
// spec.md §3 "Instance and class"), so pairing by index is correct.
func (f *File) LinkedClasses() []LinkedClass {
	out := make([]LinkedClass, 0, len(f.Instances))
	for i, inst := range f.Instances {
		lc := LinkedClass{
			Namespace: inst.Name.Namespace,
			Name:      inst.Name.Name,
		}
		lc.Consts = append(lc.Consts, constTraitsWithValue(inst.Traits)...)
		if i < len(f.Classes) {
			lc.Consts = append(lc.Consts, constTraitsWithValue(f.Classes[i].Traits)...)
		}
		out = append(out, lc)
	}
	return out
}

func constTraitsWithValue(traits []Trait) []Trait {
	var out []Trait
	for _, t := range traits {
		if (t.Kind == TraitKindConst || t.Kind == TraitKindSlot) && t.ValueKind != TraitValueNone {
			out = append(out, t)
		}
	}
	return out
}

// AllStrings returns the flat string pool, sentinel omitted.
func (f *File) AllStrings() []string {
	return f.Pool.AllStrings()
}

// FindClass returns the first linked class whose local name (namespace
// ignored) matches name exactly.
func (f *File) FindClass(name string) (LinkedClass, error) {
	for _, lc := range f.LinkedClasses() {
		if lc.Name == name {
			return lc, nil
		}
	}
	return LinkedClass{}, &ErrClassNotFound{Name: name}
}
