package reveal

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// A BoundsRow is the visibility contract for one sub-element: the
// sub-range of its drawable extent to show, plus the fill
// interpolation for two-phase and fading variants.
type BoundsRow struct {
	ID    string
	Lower float64
	Upper float64
	Fill  float64
}

// A BoundsFrame carries one tick's rows in family order, ready to
// hand to a sketchrx renderer.
type BoundsFrame struct {
	Handle    string
	Rows      []BoundsRow
	FillColor colorful.Color
}

// NewBoundsFrame creates an empty frame for the given animation.
func NewBoundsFrame(handle string, capacity int) *BoundsFrame {
	f := new(BoundsFrame)
	f.Handle = handle
	f.Rows = make([]BoundsRow, 0, capacity)
	return f
}

// MarshalBinary converts a BoundsFrame into binary data for the
// stream topic: a little-endian row count, then per row the id
// (length-prefixed), the three bounds values as float32 and the
// blended fill color as RGB bytes.
func (f *BoundsFrame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, 2+len(f.Rows)*24)
	binary.LittleEndian.PutUint16(data, uint16(len(f.Rows)))
	for _, row := range f.Rows {
		id := []byte(row.ID)
		if len(id) > 255 {
			id = id[:255]
		}
		data = append(data, byte(len(id)))
		data = append(data, id...)
		data = appendFloat32(data, row.Lower)
		data = appendFloat32(data, row.Upper)
		data = appendFloat32(data, row.Fill)

		base := colorful.Color{}
		r, g, b := base.BlendHcl(f.FillColor, clamp01(row.Fill)).Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

func appendFloat32(data []byte, v float64) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
	return append(data, buf[:]...)
}
