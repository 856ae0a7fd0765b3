// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
)

// Store persists computed results between process runs. Entries are
// write-once: a Write for an existing key is a no-op, matching the
// in-memory cache contract.
type Store interface {
	// Read returns the stored payload for key, with ok reporting whether
	// the key was present.
	Read(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Write persists the payload under key unless the key already exists.
	Write(ctx context.Context, key string, data []byte) error
	String() string
	Type() string
}

// New constructs a Store from a target spec. An s3://bucket/prefix spec
// yields an S3-backed store; anything else is treated as a local
// directory (empty means the default cache dir).
func New(ctx context.Context, target string) (Store, error) {
	if strings.HasPrefix(target, "s3://") {
		bucket, prefix, err := splitS3(target)
		if err != nil {
			return nil, err
		}
		return NewS3Store(ctx, bucket, prefix)
	}

	st, err := NewDirStore(target)
	if err != nil {
		return nil, err
	}
	log.Debugf("store: %s", st)
	return st, nil
}

// splitS3 parses s3://bucket/prefix into its parts. The prefix may be
// empty; the bucket may not.
func splitS3(target string) (bucket string, prefix string, err error) {
	rest := strings.TrimPrefix(target, "s3://")
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid s3 target %q", target)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}
