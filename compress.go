// Compressed archives.
//
// Exports are often shipped compressed. Zstd and gzip streams are supported,
// selected explicitly through Config.Compression or, by default, from the
// file extension (.zst, .gz).
package mtif

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the archive codec.
type Compression int

const (
	CompressionAuto Compression = iota // by file extension
	CompressionNone
	CompressionZstd
	CompressionGzip
)

// Shared zstd encoder/decoder; both are safe for concurrent use and costly
// to construct.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// detect resolves CompressionAuto against a file name.
func (c Compression) detect(name string) Compression {
	if c != CompressionAuto {
		return c
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".gz", ".gzip":
		return CompressionGzip
	default:
		return CompressionNone
	}
}

func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionZstd:
		return zstdEncoder.EncodeAll(data, nil), nil
	case CompressionGzip:
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return data, nil
	}
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionZstd:
		out, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
		}
		return out, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecompress, err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecompress, err)
		}
		return out, nil
	default:
		return data, nil
	}
}
