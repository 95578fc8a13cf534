package intake

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
)

// Status is the lifecycle stage of a selected image. It only moves forward:
// Validating, then Compressing, then Ready or Error.
type Status int

const (
	StatusValidating Status = iota
	StatusCompressing
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusValidating:
		return "validating"
	case StatusCompressing:
		return "compressing"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// PendingImage is a snapshot of one selected image.
type PendingImage struct {
	ID      uuid.UUID
	Name    string
	Status  Status
	Preview model.PreviewHandle
	Payload *Payload
	Err     error
}

type entry struct {
	id      uuid.UUID
	source  File
	status  Status
	preview model.PreviewHandle
	payload *Payload
	err     error

	// ctx scopes the compression of this entry. RemoveFile cancels it.
	ctx    context.Context
	cancel context.CancelFunc
}

func (e *entry) snapshot() PendingImage {
	return PendingImage{
		ID:      e.id,
		Name:    e.source.Name,
		Status:  e.status,
		Preview: e.preview,
		Payload: e.payload,
		Err:     e.err,
	}
}

// CompressFunc converts a source file into an upload payload.
type CompressFunc func(ctx context.Context, f File) (Payload, error)

// Batch holds the images selected for one form. Entries are tracked by
// identity, so a removal never lets a late compression land in another slot.
type Batch struct {
	previews model.PreviewStore
	logger   *logger.Logger
	metrics  *Metrics
	compress CompressFunc
	onChange func([]PendingImage)

	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group
	limit  int64
	sem    *semaphore.Weighted

	mu      sync.Mutex
	entries []*entry
	closed  bool
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithMetrics records outcomes and compression time.
func WithMetrics(m *Metrics) BatchOption {
	return func(b *Batch) { b.metrics = m }
}

// WithCompressor replaces Compress.
func WithCompressor(fn CompressFunc) BatchOption {
	return func(b *Batch) { b.compress = fn }
}

// OnChange is called with a snapshot after every status change.
func OnChange(fn func([]PendingImage)) BatchOption {
	return func(b *Batch) { b.onChange = fn }
}

// WithConcurrency bounds the number of simultaneous compressions. AddFiles
// never waits for a slot; queued entries stay in StatusCompressing.
func WithConcurrency(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.limit = int64(n)
		}
	}
}

func NewBatch(previews model.PreviewStore, logger *logger.Logger, opts ...BatchOption) *Batch {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Batch{
		previews: previews,
		logger:   logger,
		compress: Compress,
		ctx:      ctx,
		cancel:   cancel,
		limit:    MaxImages,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.sem = semaphore.NewWeighted(b.limit)
	return b
}

// AddFiles appends files to the batch. If the batch would exceed MaxImages it
// fails with ErrTooManyImages and nothing changes. Invalid files go straight
// to StatusError; valid ones are compressed in the background.
func (b *Batch) AddFiles(ctx context.Context, files ...File) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBatchClosed
	}
	if len(b.entries)+len(files) > MaxImages {
		n := len(b.entries)
		b.mu.Unlock()
		b.logger.Info("Image intake: selection rejected",
			"current", n,
			"selected", len(files))
		return fmt.Errorf("%w: %d selected, %d already attached", ErrTooManyImages, len(files), n)
	}

	added := make([]*entry, 0, len(files))
	for _, f := range files {
		e := &entry{id: uuid.New(), source: f, status: StatusValidating}
		b.entries = append(b.entries, e)
		added = append(added, e)
	}
	b.mu.Unlock()
	b.changed()

	for _, e := range added {
		verr := Validate(e.source)

		b.mu.Lock()
		if !b.present(e) {
			b.mu.Unlock()
			continue
		}
		if verr != nil {
			e.status = StatusError
			e.err = verr
			b.mu.Unlock()

			b.logger.Info("Image intake: file rejected",
				"name", e.source.Name,
				"error", verr.Error())
			b.metrics.outcome(OutcomeInvalid)
			b.changed()
			continue
		}
		e.status = StatusCompressing
		e.ctx, e.cancel = context.WithCancel(b.ctx)
		b.mu.Unlock()
		b.changed()

		b.group.Go(func() error {
			b.process(e)
			return nil
		})
	}

	b.logger.Debug("Image intake: files added",
		"count", len(files))
	return nil
}

func (b *Batch) process(e *entry) {
	defer e.cancel()

	if err := b.sem.Acquire(e.ctx, 1); err != nil {
		// Only RemoveFile and ReleaseAll cancel e.ctx.
		b.discarded(e)
		return
	}
	start := time.Now()
	payload, err := b.compress(e.ctx, e.source)
	b.metrics.observe(time.Since(start).Seconds())
	b.sem.Release(1)

	b.mu.Lock()
	if !b.present(e) {
		b.mu.Unlock()
		b.discarded(e)
		return
	}
	if err != nil {
		e.status = StatusError
		e.err = err
		b.mu.Unlock()

		b.logger.Warn("Image intake: compression failed",
			"name", e.source.Name,
			"error", err.Error())
		b.metrics.outcome(OutcomeFailed)
		b.changed()
		return
	}
	b.mu.Unlock()

	handle, err := b.previews.Create(e.ctx, payload.Name, payload.Data)

	b.mu.Lock()
	if !b.present(e) {
		b.mu.Unlock()
		if err == nil {
			b.release(context.WithoutCancel(e.ctx), handle)
		}
		b.discarded(e)
		return
	}
	if err != nil {
		e.status = StatusError
		e.err = fmt.Errorf("failed to create preview: %w", err)
		b.mu.Unlock()

		b.logger.Error("Image intake: failed to create preview",
			"name", e.source.Name,
			"error", err.Error())
		b.metrics.outcome(OutcomeFailed)
		b.changed()
		return
	}
	e.status = StatusReady
	e.preview = handle
	e.payload = &payload
	b.mu.Unlock()

	b.logger.Debug("Image intake: image ready",
		"name", payload.Name,
		"width", payload.Width,
		"height", payload.Height,
		"bytes", len(payload.Data))
	b.metrics.outcome(OutcomeReady)
	b.changed()
}

func (b *Batch) discarded(e *entry) {
	b.logger.Debug("Image intake: result of removed image discarded",
		"name", e.source.Name)
	b.metrics.outcome(OutcomeDiscarded)
}

// present must be called with mu held.
func (b *Batch) present(e *entry) bool {
	if b.closed {
		return false
	}
	for _, x := range b.entries {
		if x == e {
			return true
		}
	}
	return false
}

// RemoveFile removes the entry at index and releases its preview.
func (b *Batch) RemoveFile(ctx context.Context, index int) error {
	b.mu.Lock()
	if index < 0 || index >= len(b.entries) {
		n := len(b.entries)
		b.mu.Unlock()
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, n)
	}
	e := b.entries[index]
	b.entries = append(b.entries[:index:index], b.entries[index+1:]...)
	handle := e.preview
	e.preview = ""
	cancel := e.cancel
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	b.changed()
	return b.release(ctx, handle)
}

// ReleaseAll releases every remaining preview and closes the batch. Results
// of compressions still running are discarded. Safe to call more than once.
func (b *Batch) ReleaseAll(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	b.cancel()

	var errs []error
	for _, e := range entries {
		if err := b.release(ctx, e.preview); err != nil {
			errs = append(errs, err)
		}
	}

	b.logger.Debug("Image intake: batch released",
		"entries", len(entries))
	b.changed()
	return errors.Join(errs...)
}

func (b *Batch) release(ctx context.Context, h model.PreviewHandle) error {
	if h == "" {
		return nil
	}
	if err := b.previews.Release(ctx, h); err != nil {
		b.logger.Error("Image intake: failed to release preview",
			"preview", string(h),
			"error", err.Error())
		return fmt.Errorf("failed to release preview: %w", err)
	}
	return nil
}

// CollectPayloads returns the payloads of READY entries in selection order.
func (b *Batch) CollectPayloads() []Payload {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Payload, 0, len(b.entries))
	for _, e := range b.entries {
		if e.status == StatusReady && e.payload != nil {
			out = append(out, *e.payload)
		}
	}
	return out
}

// Entries returns a snapshot of the batch in selection order.
func (b *Batch) Entries() []PendingImage {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshotLocked()
}

func (b *Batch) snapshotLocked() []PendingImage {
	out := make([]PendingImage, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.snapshot()
	}
	return out
}

// Len returns the number of entries.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}

// Wait blocks until all compressions started so far have finished or ctx is done.
func (b *Batch) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		_ = b.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Batch) changed() {
	if b.onChange == nil {
		return
	}
	b.onChange(b.Entries())
}
