// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package fetch retrieves remote documents with a transparent disk cache.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/apex/log"

	"github.com/staranto/memoctlgo/internal/cachedir"
	"github.com/staranto/memoctlgo/internal/config"
)

// cacheSubdir partitions fetched documents from other cached artifacts.
var cacheSubdir = []string{"fetch"}

// Hitter returns the document at url, consulting the disk cache first.
// Expired cache entries are purged on the way in.
func Hitter(ctx context.Context, url string) (bytes.Buffer, error) {
	maxAge, _ := config.GetInt("cache.hours", 24) //nolint:mnd
	if err := cachedir.Purge(maxAge); err != nil {
		log.Warnf("failed to purge cache: %v", err)
	}

	if entry, ok := cachedir.Read(cacheSubdir, url); ok {
		log.Debugf("cache hit: %s", entry.Path)
		return *bytes.NewBuffer(entry.Data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to create request: %w", err)
	}

	if token := os.Getenv("MEMOCTL_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return bytes.Buffer{}, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to read response: %w", err)
	}

	if err := cachedir.Write(cacheSubdir, url, doc.Bytes()); err != nil {
		log.Warnf("failed to write document to cache: %v", err)
	}

	return doc, nil
}
