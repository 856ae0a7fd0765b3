// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output provides sorting, transformation, and emission utilities
// used by commands to present result sets in various formats.
package output
