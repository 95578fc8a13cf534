package minio

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/repairctl/internal/model"
)

const previewPrefix = "previews/"

var _ model.PreviewStore = (*PreviewStore)(nil)

// PreviewStore keeps image previews as objects so other viewers can fetch them.
// Releasing a handle deletes its object.
type PreviewStore struct {
	storage model.ObjectStorage

	mu       sync.Mutex
	live     map[model.PreviewHandle]struct{}
	released map[model.PreviewHandle]struct{}
}

func NewPreviewStore(storage model.ObjectStorage) *PreviewStore {
	return &PreviewStore{
		storage:  storage,
		live:     make(map[model.PreviewHandle]struct{}),
		released: make(map[model.PreviewHandle]struct{}),
	}
}

func (s *PreviewStore) Create(ctx context.Context, name string, data []byte) (model.PreviewHandle, error) {
	key := previewPrefix + uuid.NewString() + "/" + path.Base(name)

	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to store preview: %w", err)
	}

	h := model.PreviewHandle(key)

	s.mu.Lock()
	s.live[h] = struct{}{}
	s.mu.Unlock()

	return h, nil
}

func (s *PreviewStore) Release(ctx context.Context, handle model.PreviewHandle) error {
	s.mu.Lock()
	if _, ok := s.released[handle]; ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", model.ErrPreviewReleased, handle)
	}
	if _, ok := s.live[handle]; !ok || !strings.HasPrefix(string(handle), previewPrefix) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", model.ErrUnknownPreview, handle)
	}
	// Out of live while the delete runs so a concurrent Release cannot race it.
	delete(s.live, handle)
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, string(handle)); err != nil {
		s.mu.Lock()
		s.live[handle] = struct{}{}
		s.mu.Unlock()
		return fmt.Errorf("failed to delete preview: %w", err)
	}

	s.mu.Lock()
	s.released[handle] = struct{}{}
	s.mu.Unlock()

	return nil
}
