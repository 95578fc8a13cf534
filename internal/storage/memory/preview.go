package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/repairctl/internal/model"
)

var _ model.PreviewStore = (*PreviewStore)(nil)

// PreviewStore keeps preview bytes in memory behind opaque handles.
// A released handle stays known so that a second release is reported.
type PreviewStore struct {
	mu       sync.Mutex
	previews map[model.PreviewHandle][]byte
	released map[model.PreviewHandle]int
}

// NewPreviewStore creates an empty PreviewStore.
func NewPreviewStore() *PreviewStore {
	return &PreviewStore{
		previews: make(map[model.PreviewHandle][]byte),
		released: make(map[model.PreviewHandle]int),
	}
}

func (s *PreviewStore) Create(_ context.Context, name string, data []byte) (model.PreviewHandle, error) {
	h := model.PreviewHandle(fmt.Sprintf("preview://%s/%s", uuid.NewString(), name))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.previews[h] = data
	return h, nil
}

func (s *PreviewStore) Release(_ context.Context, handle model.PreviewHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.previews[handle]; !ok {
		if s.released[handle] > 0 {
			s.released[handle]++
			return fmt.Errorf("%w: %s", model.ErrPreviewReleased, handle)
		}
		return fmt.Errorf("%w: %s", model.ErrUnknownPreview, handle)
	}

	delete(s.previews, handle)
	s.released[handle]++
	return nil
}

// Data returns the preview bytes of a live handle.
func (s *PreviewStore) Data(handle model.PreviewHandle) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.previews[handle]
	return data, ok
}

// Live returns the number of unreleased previews.
func (s *PreviewStore) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.previews)
}

// ReleaseCount returns how many times handle was released, including rejected attempts.
func (s *PreviewStore) ReleaseCount(handle model.PreviewHandle) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.released[handle]
}
