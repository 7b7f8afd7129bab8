// +build tools

// Package tools pins the code generation and lint tooling used by this module, so that the
// versions are tracked in go.mod.
package tools

import (
	_ "golang.org/x/lint/golint"
	_ "golang.org/x/tools/cmd/stringer"
)
