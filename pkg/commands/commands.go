// Package commands provides high-level command implementations for templater.
//
// Each command is implemented in its own subdirectory:
//   - render/ - RenderTree command
//
// This file re-exports the command functions so callers depend on a single
// package.
package commands

import (
	"context"

	"github.com/arthur-debert/templater/pkg/commands/render"
	"github.com/arthur-debert/templater/pkg/types"
)

// RenderTreeOptions defines the options for RenderTree.
type RenderTreeOptions = render.RenderTreeOptions

// RenderTree renders a template tree into a destination tree.
func RenderTree(ctx context.Context, opts RenderTreeOptions) (*types.RenderTreeResult, error) {
	return render.RenderTree(ctx, opts)
}
