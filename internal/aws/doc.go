// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package aws centralizes AWS SDK v2 config loading and client
// construction so commands never touch the SDK directly.
package aws
