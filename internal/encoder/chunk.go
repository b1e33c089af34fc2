package encoder

import (
	"encoding/binary"
	"hash/crc32"
	"io"
)

// Chunk is one length-prefixed, CRC-protected block of a PNG stream.
type Chunk struct {
	Type [4]byte
	Data []byte
}

func newChunk(typ string, data []byte) Chunk {
	var c Chunk
	copy(c.Type[:], typ)
	c.Data = data
	return c
}

// CRC returns the IEEE CRC-32 of Type followed by Data.
func (c Chunk) CRC() uint32 {
	h := crc32.NewIEEE()
	h.Write(c.Type[:])
	h.Write(c.Data)
	return h.Sum32()
}

// Size returns the serialized size: length, type, data and crc.
func (c Chunk) Size() int {
	return 12 + len(c.Data)
}

// AppendTo appends the serialized chunk to b.
func (c Chunk) AppendTo(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(c.Data)))
	b = append(b, c.Type[:]...)
	b = append(b, c.Data...)
	return binary.BigEndian.AppendUint32(b, c.CRC())
}

// WriteTo implements io.WriterTo. The chunk is written in three parts so
// Data is never copied.
func (c Chunk) WriteTo(w io.Writer) (int64, error) {
	var head [8]byte
	var tail [4]byte
	binary.BigEndian.PutUint32(head[:4], uint32(len(c.Data)))
	copy(head[4:], c.Type[:])
	binary.BigEndian.PutUint32(tail[:], c.CRC())

	var n int64
	for _, p := range [][]byte{head[:], c.Data, tail[:]} {
		if len(p) == 0 {
			continue
		}
		m, err := w.Write(p)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
