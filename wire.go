package search

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// ═══════════════════════════════════════════════════════════════════════════════
// WIRE-LEVEL DOCUMENT RECORD
// ═══════════════════════════════════════════════════════════════════════════════
// A fixed-size wire record for a single search result: (id: i32,
// relevance: f64, rating: i32), 16 bytes, little-endian. This is a
// fixed-size frame for one Document, for a caller that owns a process
// boundary and wants to hand results across it without reaching for
// encoding/json.
// ═══════════════════════════════════════════════════════════════════════════════

const wireRecordSize = 4 + 8 + 4

// MarshalBinary encodes d into its 16-byte wire record: little-endian
// int32 id, float64 relevance (via its IEEE-754 bit pattern), int32
// rating.
func (d Document) MarshalBinary() ([]byte, error) {
	buf := make([]byte, wireRecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(int32(d.ID)))
	binary.LittleEndian.PutUint64(buf[4:12], math.Float64bits(d.Relevance))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(int32(d.MeanRating)))
	return buf, nil
}

// UnmarshalBinary decodes a 16-byte wire record produced by
// MarshalBinary back into d.
func (d *Document) UnmarshalBinary(data []byte) error {
	if len(data) != wireRecordSize {
		return fmt.Errorf("search: wire record must be %d bytes, got %d", wireRecordSize, len(data))
	}
	r := bytes.NewReader(data)
	var id, rating int32
	var relevanceBits uint64

	if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &relevanceBits); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &rating); err != nil {
		return err
	}

	d.ID = int(id)
	d.Relevance = math.Float64frombits(relevanceBits)
	d.MeanRating = int(rating)
	return nil
}
