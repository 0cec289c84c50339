package avm2

import (
	"fmt"
	"strings"
)

// ExtractRC4Key implements the "rc4" literal scan: find the string "rc4"
// in the flat string pool and return the string two positions after it
// (the second string following the "rc4" token). This is positional and
// fragile against client rebuilds — spec.md §9 calls this out
// explicitly and directs that a faithful rewrite preserve it rather
// than switch to resolving the key by multiname.
func ExtractRC4Key(f *File) (string, error) {
	strs := f.AllStrings()
	for i, s := range strs {
		if s == "rc4" && i+2 < len(strs) {
			return strs[i+2], nil
		}
	}
	return "", ErrRC4KeyNotFound
}

// normalizePacketName implements the catalog name-normalization rule:
// lowercase, then strip underscores. spec.md §9 notes this can conflate
// e.g. A_B and AB; no such collision exists in the current catalog, and
// BuildPacketMapping below detects one if it ever does rather than
// silently overwriting an entry.
func normalizePacketName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "")
}

// BuildPacketMapping implements packet-mapping extraction: locate the
// class named gameServerConnectionClass, and for each of its integer-
// valued const traits, normalize the trait name and match it against the
// normalized symbolic packet names supplied by the caller (the codec
// catalog — see internal/codec). A wire ID is returned per symbolic name
// that matched; callers detect incomplete extraction via the length of
// the returned map versus len(symbolicNames).
func BuildPacketMapping(f *File, symbolicNames []string) (map[string]uint8, error) {
	const gameServerConnectionClass = "GameServerConnection"

	class, err := f.FindClass(gameServerConnectionClass)
	if err != nil {
		return nil, err
	}

	normalized := make(map[string]string, len(symbolicNames))
	seen := make(map[string]string, len(symbolicNames))
	for _, name := range symbolicNames {
		key := normalizePacketName(name)
		if prior, dup := seen[key]; dup {
			return nil, fmt.Errorf("avm2: packet names %q and %q collide after normalization to %q", prior, name, key)
		}
		seen[key] = name
		normalized[key] = name
	}

	out := make(map[string]uint8, len(symbolicNames))
	for _, trait := range class.Consts {
		if trait.ValueKind != TraitValueInt {
			continue
		}
		key := normalizePacketName(trait.Name.Name)
		symbolic, ok := normalized[key]
		if !ok {
			continue
		}
		out[symbolic] = uint8(trait.Value.(int32))
	}

	return out, nil
}

// BasicParameters is the set of named constants extracted from the
// client's Parameters class (spec.md §4.C "Basic parameter extraction").
type BasicParameters struct {
	Version            string // "{BUILD_VERSION}.{MINOR_VERSION}"
	Port               uint16
	TutorialGameID     int32
	NexusGameID        int32
	RandomRealmGameID  int32
}

// ExtractBasicParameters reads BUILD_VERSION, MINOR_VERSION, PORT,
// TUTORIAL_GAMEID, NEXUS_GAMEID and RANDOM_REALM_GAMEID const traits off
// the client's Parameters class.
func ExtractBasicParameters(f *File) (BasicParameters, error) {
	const parametersClass = "Parameters"

	class, err := f.FindClass(parametersClass)
	if err != nil {
		return BasicParameters{}, err
	}

	byName := make(map[string]Trait, len(class.Consts))
	for _, t := range class.Consts {
		byName[t.Name.Name] = t
	}

	getString := func(name string) (string, error) {
		t, ok := byName[name]
		if !ok || t.ValueKind != TraitValueString {
			return "", &ErrParameterNotFound{Name: name}
		}
		return t.Value.(string), nil
	}
	getInt := func(name string) (int32, error) {
		t, ok := byName[name]
		if !ok || t.ValueKind != TraitValueInt {
			return 0, &ErrParameterNotFound{Name: name}
		}
		return t.Value.(int32), nil
	}

	build, err := getString("BUILD_VERSION")
	if err != nil {
		return BasicParameters{}, err
	}
	minor, err := getString("MINOR_VERSION")
	if err != nil {
		return BasicParameters{}, err
	}
	port, err := getInt("PORT")
	if err != nil {
		return BasicParameters{}, err
	}
	tutorial, err := getInt("TUTORIAL_GAMEID")
	if err != nil {
		return BasicParameters{}, err
	}
	nexus, err := getInt("NEXUS_GAMEID")
	if err != nil {
		return BasicParameters{}, err
	}
	randomRealm, err := getInt("RANDOM_REALM_GAMEID")
	if err != nil {
		return BasicParameters{}, err
	}

	return BasicParameters{
		Version:           fmt.Sprintf("%s.%s", build, minor),
		Port:              uint16(port),
		TutorialGameID:    tutorial,
		NexusGameID:       nexus,
		RandomRealmGameID: randomRealm,
	}, nil
}
