package resourcescmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/looprevenue/loop-cms/internal/commands"
	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/internal/resources"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
)

const reindexOperation = "resources.reindex"

// ErrResourcesFeatureDisabled is returned when the resources feature flag is
// disabled at runtime.
var ErrResourcesFeatureDisabled = errors.New("resources command: feature disabled")

var _ command.Commander[ReindexCommand] = (*ReindexHandler)(nil)

// DirectoryImporter rebuilds the resource index from a directory tree.
type DirectoryImporter interface {
	ImportDirectory(ctx context.Context, dir string) (resources.ImportResult, error)
}

// FeatureGates exposes the runtime feature toggles the handlers honour.
// Callers supply closures reading from the runtime configuration so handlers
// stay decoupled from it.
type FeatureGates struct {
	ResourcesEnabled func() bool
}

func (g FeatureGates) resourcesEnabled() bool {
	if g.ResourcesEnabled == nil {
		return true
	}
	return g.ResourcesEnabled()
}

// ReindexHandler orchestrates resource index rebuilds via the shared command
// handler foundation.
type ReindexHandler struct {
	inner *commands.Handler[ReindexCommand]
}

// NewReindexHandler creates a handler bound to the supplied importer.
func NewReindexHandler(importer DirectoryImporter, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ReindexCommand]) *ReindexHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ReindexCommand) error {
		if !gates.resourcesEnabled() {
			return ErrResourcesFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := importer.ImportDirectory(ctx, msg.Directory)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"indexed_count": result.Indexed,
			"skipped_count": result.Skipped,
			"error_count":   len(result.Errors),
		}).Info("resources.command.reindex.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ReindexCommand]{
		commands.WithLogger[ReindexCommand](baseLogger),
		commands.WithOperation[ReindexCommand](reindexOperation),
		commands.WithMessageFields(func(msg ReindexCommand) map[string]any {
			return map[string]any{
				"directory": msg.Directory,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ReindexCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReindexHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ReindexCommand].
func (h *ReindexHandler) Execute(ctx context.Context, msg ReindexCommand) error {
	return h.inner.Execute(ctx, msg)
}
