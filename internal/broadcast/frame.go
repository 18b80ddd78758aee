package broadcast

import (
	"bytes"
	"encoding/binary"

	"github.com/iburimskiy/orbit-network/internal/motion"
)

// EncodeFrame packs the network state little-endian:
//
//	uint64  frame number
//	uint16  point count P
//	uint16  segment count S
//	P x (float32 x, float32 y)
//	S x (uint8 start, uint8 end)
func EncodeFrame(n *motion.Network) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(12 + 8*len(n.Points) + 2*len(n.Segments))

	binary.Write(buf, binary.LittleEndian, n.Frame())
	binary.Write(buf, binary.LittleEndian, uint16(len(n.Points)))
	binary.Write(buf, binary.LittleEndian, uint16(len(n.Segments)))
	for _, p := range n.Points {
		binary.Write(buf, binary.LittleEndian, float32(p.Position.X))
		binary.Write(buf, binary.LittleEndian, float32(p.Position.Y))
	}
	for _, s := range n.Segments {
		buf.WriteByte(uint8(s.Start))
		buf.WriteByte(uint8(s.End))
	}
	return buf.Bytes()
}
