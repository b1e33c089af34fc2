// Package hasher computes the short content hashes recorded in the build
// manifest and used in hash-named output files.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ManifestLen is the number of hex chars stored in the manifest (64 bits).
const ManifestLen = 16

// ContentHash returns the xxHash64 of data as hex, truncated to hexLen
// chars when 0 < hexLen < 16.
func ContentHash(data []byte, hexLen int) string {
	return format(xxhash.Sum64(data), hexLen)
}

// ContentHashReader is ContentHash over a stream.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return format(h.Sum64(), hexLen), nil
}

// FileHash hashes the file at path.
func FileHash(path string, hexLen int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sum, err := ContentHashReader(f, hexLen)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return sum, nil
}

// Writer hashes and counts everything written through it, so a file can be
// hashed while it is being written.
type Writer struct {
	d *xxhash.Digest
	n int64
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{d: xxhash.New()}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return w.d.Write(p)
}

// Sum returns the hash of the bytes written so far, formatted as ContentHash.
func (w *Writer) Sum(hexLen int) string { return format(w.d.Sum64(), hexLen) }

// Len returns the number of bytes written.
func (w *Writer) Len() int64 { return w.n }

func format(v uint64, hexLen int) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	full := hex.EncodeToString(b[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
