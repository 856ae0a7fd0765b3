// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package store persists computed results across runs, either to a local
// directory or to S3. Entries are write-once.
package store
