package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"nexivo_backend/internal/logger"

	"github.com/google/uuid"
)

const (
	// UploadTimeout bounds the object transfer itself.
	UploadTimeout = 30 * time.Second
	// MetaTimeout bounds follow-up metadata calls (ACL, open, delete).
	MetaTimeout = 10 * time.Second
)

// Gateway stores files on the first provider in the chain that accepts
// them. Every stored object is made publicly readable as part of the same
// logical operation; a provider that uploads but cannot set visibility is
// treated as failed, the half-stored object is removed best-effort and the
// next provider is tried.
type Gateway struct {
	providers []Provider
}

// NewGateway builds a gateway over providers, tried in order.
func NewGateway(providers ...Provider) *Gateway {
	return &Gateway{providers: providers}
}

// Store uploads data under a generated name and returns the opaque
// reference used by Retrieve and the image proxy.
func (g *Gateway) Store(ctx context.Context, data []byte, suggestedName, mimeType string) (string, error) {
	key := generateKey(suggestedName)

	var lastErr *UploadError
	for _, p := range g.providers {
		err := g.storeOn(ctx, p, key, data, mimeType)
		if err == nil {
			return key, nil
		}

		lastErr = &UploadError{
			Kind:     Classify(err),
			Provider: p.Name(),
			Err:      err,
		}
		logger.CtxWarn(ctx, "storage provider failed, trying next",
			"provider", p.Name(), "kind", string(lastErr.Kind), "error", err.Error())
	}

	if lastErr == nil {
		return "", &UploadError{Kind: FailureUnknown, Provider: "none", Err: fmt.Errorf("no storage providers configured")}
	}
	return "", lastErr
}

func (g *Gateway) storeOn(ctx context.Context, p Provider, key string, data []byte, mimeType string) error {
	uploadCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	if err := p.Save(uploadCtx, key, bytes.NewReader(data), mimeType); err != nil {
		return err
	}

	aclCtx, aclCancel := context.WithTimeout(ctx, MetaTimeout)
	defer aclCancel()

	if err := p.MakePublic(aclCtx, key); err != nil {
		// Don't leave a half-visible object behind.
		delCtx, delCancel := context.WithTimeout(context.WithoutCancel(ctx), MetaTimeout)
		defer delCancel()
		if delErr := p.Delete(delCtx, key); delErr != nil {
			logger.CtxWarn(ctx, "failed to remove object after visibility failure",
				"provider", p.Name(), "key", key, "error", delErr.Error())
		}
		return fmt.Errorf("visibility step failed: %w", err)
	}

	return nil
}

// Retrieve streams the object back from whichever provider holds it, so
// storage credentials never reach the browser.
func (g *Gateway) Retrieve(ctx context.Context, reference string) (io.ReadCloser, error) {
	// No extra timeout here: the stream lives beyond the call, and the
	// caller's own ctx already bounds the request.
	for _, p := range g.providers {
		rc, err := p.Open(ctx, reference)
		if err == nil {
			return rc, nil
		}
	}
	return nil, ErrNotFound
}

// generateKey builds "<uuid>_<sanitized original name>" so uploads never
// collide and the reference stays opaque.
func generateKey(suggestedName string) string {
	base := filepath.Base(suggestedName)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." {
		base = "file"
	}
	return fmt.Sprintf("%s_%s", uuid.NewString(), base)
}
