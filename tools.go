//go:build tools
// +build tools

// Package tools imports development tools for dependency tracking.
// This file is not compiled as part of the bridge binary.
package tools

import (
	// Import management tool
	_ "golang.org/x/tools/cmd/goimports"

	// Test coverage reporting
	_ "golang.org/x/tools/cmd/cover"
)
