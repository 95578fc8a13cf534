package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr      error
	putKey      string
	putSize     int64
	putType     string
	putData     []byte
	removeErr   error
	removedKeys []string
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, name string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = name
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	data, _ := io.ReadAll(r)
	f.putKey, f.putSize, f.putType, f.putData = key, size, opts.ContentType, data
	return minioLib.UploadInfo{Key: key, Size: size}, nil
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, key string, _ minioLib.RemoveObjectOptions) error {
	f.removedKeys = append(f.removedKeys, key)
	return f.removeErr
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		c, err := NewClientWithAPI(ctx, api, "b")
		require.NoError(t, err)
		assert.Equal(t, "b", c.bucket)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("bucket created", func(t *testing.T) {
		api := &fakeMinio{}
		_, err := NewClientWithAPI(ctx, api, "previews")
		require.NoError(t, err)
		assert.Equal(t, "previews", api.madeBucket)
	})

	t.Run("exists check fails", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{bucketExistsErr: errors.New("boom")}, "b")
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ensure bucket exists")
	})

	t.Run("make bucket fails", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{makeBucketErr: errors.New("fail")}, "b")
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create bucket")
	})
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		err := c.Upload(ctx, "k", bytes.NewReader([]byte("data")), 4, "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "k", api.putKey)
		assert.Equal(t, int64(4), api.putSize)
		assert.Equal(t, "image/jpeg", api.putType)
		assert.Equal(t, []byte("data"), api.putData)
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{putErr: errors.New("put-fail")}, bucket: "b"}
		err := c.Upload(ctx, "k", bytes.NewReader(nil), 0, "image/jpeg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := &Client{api: &fakeMinio{}, bucket: "b"}
		assert.NoError(t, c.Delete(ctx, "k"))
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{removeErr: errors.New("remove-fail")}, bucket: "b"}
		err := c.Delete(ctx, "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete object")
	})
}
