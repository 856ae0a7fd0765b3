// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package driller extracts values from JSON documents by dotted path,
// drilling through single-element arrays and honoring explicit [n] indexes.
package driller
