// Package intake turns user-selected images into upload-ready JPEG payloads.
package intake

import (
	"errors"
	"fmt"
)

// Limits applied to every selection.
const (
	MaxImages    = 3
	MaxFileSize  = 5 * 1024 * 1024
	MaxDimension = 1200
	JPEGQuality  = 80
)

// Accepted source types.
var acceptedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFileTooLarge    = errors.New("image file too large")
	ErrTooManyImages   = errors.New("too many images")
	ErrDecode          = errors.New("failed to decode image")
	ErrBatchClosed     = errors.New("image batch already released")
	ErrIndexOutOfRange = errors.New("image index out of range")
)

// File is a user-selected source image. ContentType is the declared type.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// NewFile builds a File whose size is the length of data.
func NewFile(name, contentType string, data []byte) File {
	return File{Name: name, ContentType: contentType, Size: int64(len(data)), Data: data}
}

// Payload is a compressed image ready for multipart upload.
type Payload struct {
	Name        string
	ContentType string
	Width       int
	Height      int
	Data        []byte
}

// Validate checks the declared type and size of f. It does not read the data.
func Validate(f File) error {
	if _, ok := acceptedTypes[f.ContentType]; !ok {
		return fmt.Errorf("%w (got %q)", ErrUnsupportedType, f.ContentType)
	}
	if f.Size > MaxFileSize {
		return fmt.Errorf("%w (got %d bytes)", ErrFileTooLarge, f.Size)
	}
	return nil
}

// UserMessage returns the text shown to the user for an intake error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedType):
		return "Invalid file type. Please upload JPEG, PNG, or WebP images."
	case errors.Is(err, ErrFileTooLarge):
		return "File size too large. Maximum size is 5MB."
	case errors.Is(err, ErrTooManyImages):
		return fmt.Sprintf("Maximum %d images allowed", MaxImages)
	case errors.Is(err, ErrDecode):
		return "Error processing images"
	default:
		return err.Error()
	}
}
