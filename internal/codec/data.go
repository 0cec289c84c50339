package codec

// Shared composite field types, each an ordered group of primitive
// fields embedded directly (not behind the framing/id machinery) inside
// packets and vectors. Grounded on rotmg_packets' define_packet_data!
// catalog (WorldPosData, SlotObjectData, GroundTileData, TradeItem,
// ObjectStatusData, ObjectData).

type WorldPosData struct {
	X, Y float32
}

func (d WorldPosData) Encode(w *Writer) error {
	w.F32(d.X)
	w.F32(d.Y)
	return nil
}

func (d *WorldPosData) Decode(r *Reader) error {
	x, err := r.F32()
	if err != nil {
		return err
	}
	y, err := r.F32()
	if err != nil {
		return err
	}
	d.X, d.Y = x, y
	return nil
}

type SlotObjectData struct {
	ObjectID   uint32
	SlotID     uint8
	ObjectType uint32
}

func (d SlotObjectData) Encode(w *Writer) error {
	w.U32(d.ObjectID)
	w.U8(d.SlotID)
	w.U32(d.ObjectType)
	return nil
}

func (d *SlotObjectData) Decode(r *Reader) error {
	var err error
	if d.ObjectID, err = r.U32(); err != nil {
		return err
	}
	if d.SlotID, err = r.U8(); err != nil {
		return err
	}
	if d.ObjectType, err = r.U32(); err != nil {
		return err
	}
	return nil
}

type GroundTileData struct {
	X, Y     int16
	TileType uint16
}

func (d GroundTileData) Encode(w *Writer) error {
	w.I16(d.X)
	w.I16(d.Y)
	w.U16(d.TileType)
	return nil
}

func (d *GroundTileData) Decode(r *Reader) error {
	var err error
	if d.X, err = r.I16(); err != nil {
		return err
	}
	if d.Y, err = r.I16(); err != nil {
		return err
	}
	if d.TileType, err = r.U16(); err != nil {
		return err
	}
	return nil
}

type TradeItem struct {
	Item      uint32
	SlotType  uint32
	Tradeable bool
	Included  bool
}

func (d TradeItem) Encode(w *Writer) error {
	w.U32(d.Item)
	w.U32(d.SlotType)
	w.Bool(d.Tradeable)
	w.Bool(d.Included)
	return nil
}

func (d *TradeItem) Decode(r *Reader) error {
	var err error
	if d.Item, err = r.U32(); err != nil {
		return err
	}
	if d.SlotType, err = r.U32(); err != nil {
		return err
	}
	if d.Tradeable, err = r.Bool(); err != nil {
		return err
	}
	if d.Included, err = r.Bool(); err != nil {
		return err
	}
	return nil
}

type ObjectStatusData struct {
	ObjectID uint32
	Pos      WorldPosData
	Stats    []StatData
}

func (d ObjectStatusData) Encode(w *Writer) error {
	w.U32(d.ObjectID)
	if err := d.Pos.Encode(w); err != nil {
		return err
	}
	return w.LPVector16(len(d.Stats), func(i int) error { return d.Stats[i].Encode(w) })
}

func (d *ObjectStatusData) Decode(r *Reader) error {
	var err error
	if d.ObjectID, err = r.U32(); err != nil {
		return err
	}
	if err := d.Pos.Decode(r); err != nil {
		return err
	}
	_, err = r.LPVector16(func(i int) error {
		var s StatData
		if err := s.Decode(r); err != nil {
			return err
		}
		d.Stats = append(d.Stats, s)
		return nil
	})
	return err
}

type ObjectData struct {
	ObjectType uint16
	Status     ObjectStatusData
}

func (d ObjectData) Encode(w *Writer) error {
	w.U16(d.ObjectType)
	return d.Status.Encode(w)
}

func (d *ObjectData) Decode(r *Reader) error {
	var err error
	if d.ObjectType, err = r.U16(); err != nil {
		return err
	}
	return d.Status.Decode(r)
}
