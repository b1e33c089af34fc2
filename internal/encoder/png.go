// Package encoder serializes raw RGB pixel buffers as truecolor PNG files.
//
// The output is always 8-bit RGB (color type 2), non-interlaced, with filter
// type 0 on every scanline and a single IDAT chunk.
package encoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Signature is the fixed 8-byte PNG file signature.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	bitDepth       = 8
	colorTrueColor = 2
)

// ErrSizeMismatch is returned when the pixel buffer length does not equal
// width*height*3.
var ErrSizeMismatch = errors.New("pixel buffer size mismatch")

// RGBImage is anything that exposes a packed row-major RGB buffer.
type RGBImage interface {
	Width() int
	Height() int
	Pixels() []byte
}

// Encode returns the PNG encoding of a width×height RGB buffer.
func Encode(width, height uint32, pixels []byte) ([]byte, error) {
	chunks, err := encodeChunks(width, height, pixels)
	if err != nil {
		return nil, err
	}

	n := len(Signature)
	for _, ch := range chunks {
		n += ch.Size()
	}
	out := make([]byte, 0, n)
	out = append(out, Signature[:]...)
	for _, ch := range chunks {
		out = ch.AppendTo(out)
	}
	return out, nil
}

// Write encodes the buffer and streams the signature and chunks to w.
// Nothing is written when encoding fails; a sink error aborts the stream
// and is returned wrapped.
func Write(w io.Writer, width, height uint32, pixels []byte) error {
	chunks, err := encodeChunks(width, height, pixels)
	if err != nil {
		return err
	}
	if _, err := w.Write(Signature[:]); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	for _, ch := range chunks {
		if _, err := ch.WriteTo(w); err != nil {
			return fmt.Errorf("write png %s: %w", ch.Type[:], err)
		}
	}
	return nil
}

// WriteImage writes img to w with Write.
func WriteImage(w io.Writer, img RGBImage) error {
	width, height, err := imageSize(img)
	if err != nil {
		return err
	}
	return Write(w, width, height, img.Pixels())
}

// encodeChunks validates the buffer and builds IHDR, IDAT and IEND.
func encodeChunks(width, height uint32, pixels []byte) ([3]Chunk, error) {
	if err := checkSize(width, height, len(pixels)); err != nil {
		return [3]Chunk{}, err
	}
	idat, err := compress(width, height, pixels)
	if err != nil {
		return [3]Chunk{}, fmt.Errorf("compress scanlines: %w", err)
	}
	return [3]Chunk{
		newChunk("IHDR", header(width, height)),
		newChunk("IDAT", idat),
		newChunk("IEND", nil),
	}, nil
}

func imageSize(img RGBImage) (uint32, uint32, error) {
	w, h := img.Width(), img.Height()
	if w <= 0 || h <= 0 || uint64(w) > 1<<32-1 || uint64(h) > 1<<32-1 {
		return 0, 0, fmt.Errorf("%w: invalid dimensions %dx%d", ErrSizeMismatch, w, h)
	}
	return uint32(w), uint32(h), nil
}

// checkSize verifies n == width*height*3 without overflowing.
func checkSize(width, height uint32, n int) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: zero dimension %dx%d", ErrSizeMismatch, width, height)
	}
	got := uint64(n)
	if got%3 == 0 {
		px := got / 3
		if px%uint64(width) == 0 && px/uint64(width) == uint64(height) {
			return nil
		}
	}
	return fmt.Errorf("%w: got %d bytes, want %dx%dx3", ErrSizeMismatch, n, width, height)
}

func header(width, height uint32) []byte {
	b := make([]byte, 13)
	binary.BigEndian.PutUint32(b[0:4], width)
	binary.BigEndian.PutUint32(b[4:8], height)
	b[8] = bitDepth
	b[9] = colorTrueColor
	b[10] = 0 // compression: deflate
	b[11] = 0 // filter method 0
	b[12] = 0 // no interlace
	return b
}

// compress builds the filtered scanline stream and deflates it at best
// compression inside a zlib container.
func compress(width, height uint32, pixels []byte) ([]byte, error) {
	stride := int(width) * 3
	raw := make([]byte, 0, int(height)*(stride+1))
	for y := 0; y < int(height); y++ {
		raw = append(raw, 0) // filter type None
		raw = append(raw, pixels[y*stride:(y+1)*stride]...)
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
