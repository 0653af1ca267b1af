package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// Provider is one storage backend. The gateway composes several of them
// into an ordered fallback chain.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string

	// Save stores the object under key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// MakePublic marks the object world-readable. Part of the same logical
	// store operation; callers must not treat its failure as success.
	MakePublic(ctx context.Context, key string) error

	// Open streams the object back.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Used to undo a half-finished store.
	Delete(ctx context.Context, key string) error
}

// FailureKind classifies why a provider call failed.
type FailureKind string

const (
	FailureTimeout    FailureKind = "timeout"
	FailureNetwork    FailureKind = "network"
	FailurePermission FailureKind = "permission-denied"
	FailureUnknown    FailureKind = "unknown"
)

// UploadError is returned when every provider in the chain failed.
type UploadError struct {
	Kind     FailureKind
	Provider string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed (%s, provider %s): %v", e.Kind, e.Provider, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ErrNotFound is returned by Retrieve when no provider holds the reference.
var ErrNotFound = errors.New("object not found")

// Classify inspects an error and names its failure kind.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var aerr awserr.Error
	if errors.As(err, &aerr) {
		switch aerr.Code() {
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return FailurePermission
		case "RequestCanceled":
			return FailureTimeout
		}
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		if nerr.Timeout() {
			return FailureTimeout
		}
		return FailureNetwork
	}

	return FailureUnknown
}
