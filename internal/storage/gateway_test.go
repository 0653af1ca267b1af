package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is an in-memory Provider with injectable failures.
type fakeProvider struct {
	name        string
	saveErr     error
	publicErr   error
	mu          sync.Mutex
	objects     map[string][]byte
	deleted     []string
	publicCalls int
}

func newFakeProvider(name string) *fakeProvider {
	return &fakeProvider{name: name, objects: map[string][]byte{}}
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.objects[key] = data
	return nil
}

func (p *fakeProvider) MakePublic(ctx context.Context, key string) error {
	p.mu.Lock()
	p.publicCalls++
	p.mu.Unlock()
	return p.publicErr
}

func (p *fakeProvider) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (p *fakeProvider) Delete(ctx context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.objects, key)
	p.deleted = append(p.deleted, key)
	return nil
}

func TestStorePrimarySuccess(t *testing.T) {
	primary := newFakeProvider("primary")
	fallback := newFakeProvider("fallback")
	g := NewGateway(primary, fallback)

	ref, err := g.Store(context.Background(), []byte("payload"), "photo.png", "image/png")
	require.NoError(t, err)
	assert.Contains(t, ref, "photo.png")

	assert.Len(t, primary.objects, 1)
	assert.Empty(t, fallback.objects, "the fallback is untouched when the primary works")
}

func TestStoreFallsBackOnSaveFailure(t *testing.T) {
	primary := newFakeProvider("primary")
	primary.saveErr = errors.New("bucket exploded")
	fallback := newFakeProvider("fallback")
	g := NewGateway(primary, fallback)

	ref, err := g.Store(context.Background(), []byte("payload"), "photo.png", "image/png")
	require.NoError(t, err)
	assert.Len(t, fallback.objects, 1)

	rc, err := g.Retrieve(context.Background(), ref)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestStoreVisibilityFailureRemovesHalfStoredObject(t *testing.T) {
	primary := newFakeProvider("primary")
	primary.publicErr = errors.New("acl denied")
	fallback := newFakeProvider("fallback")
	g := NewGateway(primary, fallback)

	_, err := g.Store(context.Background(), []byte("payload"), "doc.pdf", "application/pdf")
	require.NoError(t, err)

	// The primary uploaded but could not set visibility: the object must
	// be cleaned up and the fallback must hold the real copy.
	assert.Empty(t, primary.objects)
	assert.Len(t, primary.deleted, 1)
	assert.Len(t, fallback.objects, 1)
}

func TestStoreAllProvidersFail(t *testing.T) {
	primary := newFakeProvider("primary")
	primary.saveErr = errors.New("down")
	fallback := newFakeProvider("fallback")
	fallback.saveErr = context.DeadlineExceeded
	g := NewGateway(primary, fallback)

	_, err := g.Store(context.Background(), []byte("payload"), "x", "text/plain")
	require.Error(t, err)

	var ue *UploadError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "fallback", ue.Provider, "the error names the last provider tried")
	assert.Equal(t, FailureTimeout, ue.Kind)
}

func TestStoreNoProviders(t *testing.T) {
	g := NewGateway()
	_, err := g.Store(context.Background(), []byte("x"), "x", "text/plain")
	require.Error(t, err)
}

func TestRetrieveSearchesTheChain(t *testing.T) {
	primary := newFakeProvider("primary")
	fallback := newFakeProvider("fallback")
	fallback.objects["somewhere_else"] = []byte("found me")
	g := NewGateway(primary, fallback)

	rc, err := g.Retrieve(context.Background(), "somewhere_else")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("found me"), data)

	_, err = g.Retrieve(context.Background(), "never_stored")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateKey(t *testing.T) {
	key := generateKey("my holiday photo.png")
	assert.False(t, strings.Contains(key, " "))
	assert.True(t, strings.HasSuffix(key, "_my_holiday_photo.png"))

	// Path components are stripped, empty names get a placeholder.
	key = generateKey("../../etc/passwd")
	assert.True(t, strings.HasSuffix(key, "_passwd"))
	key = generateKey("")
	assert.True(t, strings.HasSuffix(key, "_file"))

	assert.NotEqual(t, generateKey("a.png"), generateKey("a.png"), "keys never collide")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, FailureTimeout, Classify(context.DeadlineExceeded))
	assert.Equal(t, FailureUnknown, Classify(errors.New("weird")))
	assert.Equal(t, FailureUnknown, Classify(nil))
}

func TestLocalProviderRoundTrip(t *testing.T) {
	local, err := NewLocalProvider(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "dir/file.txt", strings.NewReader("hello"), "text/plain"))
	require.NoError(t, local.MakePublic(ctx, "dir/file.txt"))

	rc, err := local.Open(ctx, "dir/file.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello", string(data))

	require.NoError(t, local.Delete(ctx, "dir/file.txt"))
	_, err = local.Open(ctx, "dir/file.txt")
	assert.Error(t, err)

	// Deleting a missing object is not an error.
	assert.NoError(t, local.Delete(ctx, "dir/file.txt"))
}
