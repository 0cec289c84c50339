package codec

import "fmt"

// PacketMappings is the bijection between symbolic packet names and
// their on-the-wire byte id, built once at bootstrap from the AVM2
// extractor's output (internal/avm2.BuildPacketMapping) and consulted
// at the boundary between raw and structured packets.
type PacketMappings struct {
	toWire     map[string]uint8
	toSymbolic map[uint8]string
}

// NewPacketMappings builds the bijection from a symbolic-name -> wire-id
// map, as produced by the extractor.
func NewPacketMappings(ids map[string]uint8) *PacketMappings {
	m := &PacketMappings{
		toWire:     make(map[string]uint8, len(ids)),
		toSymbolic: make(map[uint8]string, len(ids)),
	}
	for name, id := range ids {
		m.toWire[name] = id
		m.toSymbolic[id] = name
	}
	return m
}

func (m *PacketMappings) WireID(symbolic string) (uint8, bool) {
	id, ok := m.toWire[symbolic]
	return id, ok
}

func (m *PacketMappings) Symbolic(id uint8) (string, error) {
	name, ok := m.toSymbolic[id]
	if !ok {
		return "", errUnmappedID(id)
	}
	return name, nil
}

// Unmapped returns every catalog symbolic name with no wire-id binding —
// the signal that the extraction which produced this mapping is stale
// against the compiled-in catalog (spec.md §4.D "get_unmapped()").
func (m *PacketMappings) Unmapped() []string {
	var out []string
	for _, name := range SymbolicNames() {
		if _, ok := m.toWire[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Decode resolves a raw packet's wire id to its symbolic type and
// decodes the payload into a fresh instance.
func (m *PacketMappings) Decode(raw *RawPacket) (Packet, error) {
	name, err := m.Symbolic(raw.ID)
	if err != nil {
		return nil, err
	}
	p, ok := newPacket(name)
	if !ok {
		return nil, fmt.Errorf("codec: %s is mapped to id %d but is not in the compiled catalog", name, raw.ID)
	}
	if err := p.Decode(NewReader(raw.Payload)); err != nil {
		return nil, fmt.Errorf("codec: decoding %s: %w", name, err)
	}
	return p, nil
}

// Encode encodes a structured packet into a raw wire frame (payload
// only; ciphering and length-prefixing happen in Encoder).
func (m *PacketMappings) Encode(p Packet) (*RawPacket, error) {
	id, ok := m.WireID(p.TypeName())
	if !ok {
		return nil, fmt.Errorf("codec: encoding %s: %w", p.TypeName(), errUnmappedSymbolic(p.TypeName()))
	}
	w := NewWriter()
	if err := p.Encode(w); err != nil {
		return nil, err
	}
	return &RawPacket{ID: id, Payload: w.Bytes()}, nil
}

func errUnmappedSymbolic(name string) error {
	return fmt.Errorf("no wire id bound to symbolic packet %q", name)
}
