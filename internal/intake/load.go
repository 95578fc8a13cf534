package intake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is enough for mimetype to recognise every accepted format.
const sniffLen = 3072

// LoadFile reads the image at path. The content type is sniffed from the
// data. Files above MaxFileSize are not read past the sniffed header, so the
// returned File fails Validate without holding the whole image in memory.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return File{}, fmt.Errorf("failed to stat image: %w", err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}

	name := filepath.Base(path)

	if info.Size() > MaxFileSize {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(f, head)
		if err != nil && err != io.ErrUnexpectedEOF {
			return File{}, fmt.Errorf("failed to read image: %w", err)
		}
		return File{Name: name, ContentType: sniff(head[:n]), Size: info.Size()}, nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return File{}, fmt.Errorf("failed to read image: %w", err)
	}
	return NewFile(name, sniff(data), data), nil
}

func sniff(data []byte) string {
	detected := mimetype.Detect(data)
	for mt := detected; mt != nil; mt = mt.Parent() {
		if _, ok := acceptedTypes[mt.String()]; ok {
			return mt.String()
		}
	}
	return detected.String()
}
