package encoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/sixtyxsix/brandgen/internal/canvas"
)

// patternPixels builds a w×h RGB buffer where every byte depends on its
// position, so row or channel mix-ups show up in round-trip tests.
func patternPixels(w, h int) []byte {
	p := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			p[i] = uint8(x * 37)
			p[i+1] = uint8(y * 53)
			p[i+2] = uint8(x*y + 7)
		}
	}
	return p
}

// parsedChunk is a chunk read back from an encoded stream.
type parsedChunk struct {
	typ  string
	data []byte
	crc  uint32
}

func parseChunks(t *testing.T, b []byte) []parsedChunk {
	t.Helper()
	if !bytes.Equal(b[:8], Signature[:]) {
		t.Fatalf("signature: got % x", b[:8])
	}
	b = b[8:]
	var out []parsedChunk
	for len(b) > 0 {
		if len(b) < 12 {
			t.Fatalf("truncated chunk: %d bytes left", len(b))
		}
		n := binary.BigEndian.Uint32(b[0:4])
		c := parsedChunk{
			typ:  string(b[4:8]),
			data: b[8 : 8+n],
			crc:  binary.BigEndian.Uint32(b[8+n : 12+n]),
		}
		out = append(out, c)
		b = b[12+n:]
	}
	return out
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {4, 4}, {7, 3}, {64, 33}} {
		w, h := sz[0], sz[1]
		pix := patternPixels(w, h)

		data, err := Encode(uint32(w), uint32(h), pix)
		if err != nil {
			t.Fatalf("%dx%d: encode: %v", w, h, err)
		}

		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%dx%d: decode config: %v", w, h, err)
		}
		if cfg.Width != w || cfg.Height != h {
			t.Errorf("dimensions: got %dx%d, want %dx%d", cfg.Width, cfg.Height, w, h)
		}
		if cfg.ColorModel != color.RGBAModel {
			t.Errorf("color model: got %v, want RGBA (8-bit truecolor)", cfg.ColorModel)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%dx%d: decode: %v", w, h, err)
		}
		rgba, ok := img.(*image.RGBA)
		if !ok {
			t.Fatalf("decoded type: got %T, want *image.RGBA", img)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := (y*w + x) * 3
				got := rgba.RGBAAt(x, y)
				want := color.RGBA{pix[i], pix[i+1], pix[i+2], 255}
				if got != want {
					t.Fatalf("%dx%d: pixel (%d,%d): got %v, want %v", w, h, x, y, got, want)
				}
			}
		}
	}
}

func TestEncode_ChunkLayout(t *testing.T) {
	pix := patternPixels(5, 2)
	data, err := Encode(5, 2, pix)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	chunks := parseChunks(t, data)
	if len(chunks) != 3 {
		t.Fatalf("chunks: got %d, want 3", len(chunks))
	}
	for i, want := range []string{"IHDR", "IDAT", "IEND"} {
		if chunks[i].typ != want {
			t.Errorf("chunk %d: got %q, want %q", i, chunks[i].typ, want)
		}
		crc := crc32.ChecksumIEEE(append([]byte(chunks[i].typ), chunks[i].data...))
		if chunks[i].crc != crc {
			t.Errorf("chunk %s crc: got %08x, want %08x", chunks[i].typ, chunks[i].crc, crc)
		}
	}

	wantHdr := []byte{0, 0, 0, 5, 0, 0, 0, 2, 8, 2, 0, 0, 0}
	if !bytes.Equal(chunks[0].data, wantHdr) {
		t.Errorf("IHDR: got % x, want % x", chunks[0].data, wantHdr)
	}
	if len(chunks[2].data) != 0 {
		t.Errorf("IEND data: got %d bytes, want 0", len(chunks[2].data))
	}

	// IDAT inflates to filter byte 0 + row bytes, per row.
	zr, err := zlib.NewReader(bytes.NewReader(chunks[1].data))
	if err != nil {
		t.Fatalf("zlib reader: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if len(raw) != 2*(1+15) {
		t.Fatalf("raw stream: got %d bytes, want %d", len(raw), 2*(1+15))
	}
	for y := 0; y < 2; y++ {
		row := raw[y*16 : (y+1)*16]
		if row[0] != 0 {
			t.Errorf("row %d filter: got %d, want 0", y, row[0])
		}
		if !bytes.Equal(row[1:], pix[y*15:(y+1)*15]) {
			t.Errorf("row %d bytes differ", y)
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	pix := patternPixels(32, 32)
	a, err := Encode(32, 32, pix)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := Encode(32, 32, pix)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodes of the same buffer differ")
	}
}

func TestEncode_SizeMismatch(t *testing.T) {
	cases := []struct {
		name string
		w, h uint32
		n    int
	}{
		{"short", 4, 4, 47},
		{"long", 4, 4, 49},
		{"empty", 2, 2, 0},
		{"swapped", 3, 5, 4 * 4 * 3},
		{"zero width", 0, 4, 0},
		{"zero height", 4, 0, 0},
		{"huge", 1<<32 - 1, 1<<32 - 1, 12},
	}
	for _, tc := range cases {
		_, err := Encode(tc.w, tc.h, make([]byte, tc.n))
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("%s: got %v, want ErrSizeMismatch", tc.name, err)
		}
	}
}

type failWriter struct{ calls int }

var errSink = errors.New("sink closed")

func (w *failWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errSink
}

func TestWrite_SinkError(t *testing.T) {
	w := &failWriter{}
	err := Write(w, 2, 2, make([]byte, 12))
	if !errors.Is(err, errSink) {
		t.Fatalf("got %v, want wrapped sink error", err)
	}
	if w.calls != 1 {
		t.Errorf("write calls: got %d, want 1", w.calls)
	}
}

func TestWrite_SizeMismatchWritesNothing(t *testing.T) {
	w := &failWriter{}
	if err := Write(w, 2, 2, make([]byte, 11)); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("got %v, want ErrSizeMismatch", err)
	}
	if w.calls != 0 {
		t.Errorf("write calls: got %d, want 0", w.calls)
	}
}

func TestWrite_MatchesEncode(t *testing.T) {
	pix := patternPixels(9, 4)
	var buf bytes.Buffer
	if err := Write(&buf, 9, 4, pix); err != nil {
		t.Fatalf("write: %v", err)
	}
	want, _ := Encode(9, 4, pix)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("Write output differs from Encode")
	}
}

// shortWriter accepts limit bytes and then fails.
type shortWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if room := w.limit - w.buf.Len(); len(p) > room {
		w.buf.Write(p[:room])
		return room, errSink
	}
	return w.buf.Write(p)
}

func TestWrite_SinkFailsMidStream(t *testing.T) {
	pix := patternPixels(16, 16)
	full, _ := Encode(16, 16, pix)

	// Signature and IHDR fit; the sink dies inside IDAT.
	w := &shortWriter{limit: 8 + 25 + 10}
	err := Write(w, 16, 16, pix)
	if !errors.Is(err, errSink) {
		t.Fatalf("got %v, want wrapped sink error", err)
	}
	if !strings.Contains(err.Error(), "IDAT") {
		t.Errorf("error %q does not name the failing chunk", err)
	}
	if !bytes.Equal(w.buf.Bytes(), full[:w.limit]) {
		t.Error("bytes written before the failure differ from Encode output")
	}
}

func TestWriteImage_MatchesEncode(t *testing.T) {
	c := canvas.New(6, 5, canvas.Color{R: 1, G: 2, B: 3})
	c.DrawCircle(3, 2, 2, canvas.Color{R: 200})

	var buf bytes.Buffer
	if err := WriteImage(&buf, c); err != nil {
		t.Fatalf("write: %v", err)
	}
	want, err := Encode(6, 5, c.Pixels())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("WriteImage output differs from Encode")
	}
}

// rawImage is an RGBImage with arbitrary, possibly inconsistent fields.
type rawImage struct {
	w, h int
	pix  []byte
}

func (r rawImage) Width() int     { return r.w }
func (r rawImage) Height() int    { return r.h }
func (r rawImage) Pixels() []byte { return r.pix }

func TestWriteImage_InvalidDimensions(t *testing.T) {
	for _, img := range []rawImage{{0, 3, nil}, {3, -1, nil}, {2, 2, make([]byte, 11)}} {
		w := &failWriter{}
		if err := WriteImage(w, img); !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("%dx%d/%d: got %v, want ErrSizeMismatch", img.w, img.h, len(img.pix), err)
		}
		if w.calls != 0 {
			t.Errorf("%dx%d: write calls: got %d, want 0", img.w, img.h, w.calls)
		}
	}
}

func TestWriteImage_CanvasScenario(t *testing.T) {
	black := canvas.Color{}
	white := canvas.Color{R: 255, G: 255, B: 255}
	c := canvas.New(4, 4, black)
	c.DrawRect(1, 1, 2, 2, white)

	var buf bytes.Buffer
	if err := WriteImage(&buf, c); err != nil {
		t.Fatalf("write: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.RGBA{0, 0, 0, 255}
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = color.RGBA{255, 255, 255, 255}
			}
			if got := color.RGBAModel.Convert(img.At(x, y)); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestChunk_WriteTo(t *testing.T) {
	c := newChunk("tEXt", []byte("k\x00v"))
	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != int64(c.Size()) || buf.Len() != 15 {
		t.Errorf("size: got n=%d len=%d, want 15", n, buf.Len())
	}
	if got := binary.BigEndian.Uint32(buf.Bytes()[11:]); got != c.CRC() {
		t.Errorf("crc: got %08x, want %08x", got, c.CRC())
	}
	if !bytes.Equal(buf.Bytes(), c.AppendTo(nil)) {
		t.Error("WriteTo differs from AppendTo")
	}
}

func TestChunk_IENDCRC(t *testing.T) {
	// The IEND CRC is a well-known constant.
	if got := newChunk("IEND", nil).CRC(); got != 0xAE426082 {
		t.Errorf("IEND crc: got %08x, want ae426082", got)
	}
}

func BenchmarkEncode1024(b *testing.B) {
	c := canvas.New(1024, 1024, canvas.Color{R: 11, G: 15, B: 14})
	c.DrawRing(512, 512, 260, 190, canvas.Color{R: 44, G: 241, B: 176})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := WriteImage(io.Discard, c); err != nil {
			b.Fatal(err)
		}
	}
}
