// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version carries the build version, overridden at release time via
// -ldflags "-X github.com/staranto/memoctlgo/internal/version.Version=...".
package version

var Version = "dev"
