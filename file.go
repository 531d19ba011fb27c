// File load and save.
//
// Thin wrappers around Read and Bytes that add archive compression. Files
// are read and written whole.
package mtif

import (
	"bytes"
	"fmt"
	"os"
)

// LoadFile reads and parses the document at path.
func LoadFile(path string, cfg Config) (*Document, error) {
	cfg = cfg.withDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	codec := cfg.Compression.detect(path)
	data, err = decompress(data, codec)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	doc, err := Read(bytes.NewReader(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	cfg.Logger.Debug("mtif.load", "path", path, "bytes", len(data), "posts", doc.Len())
	return doc, nil
}

// SaveFile serializes doc to path, replacing any existing file.
func SaveFile(path string, doc *Document, cfg Config) error {
	cfg = cfg.withDefaults()

	data, err := compress(doc.Bytes(), cfg.Compression.detect(path))
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	cfg.Logger.Debug("mtif.save", "path", path, "bytes", len(data), "posts", doc.Len())
	return nil
}
