package generate

import (
	"fmt"
	"log/slog"

	"github.com/dhodcz2/check50-workflow/pkg/api"
	"github.com/dhodcz2/check50-workflow/pkg/render"
	"github.com/dhodcz2/check50-workflow/pkg/workflow"
)

// Run executes one generation pass: overwrite guard, document build,
// render, write. The guard runs first, so when the output file already
// exists and force is unset no document is ever built and the error
// matches render.ErrExists.
func Run(req *api.Request) error {
	if err := render.CheckTarget(req.Outfile, req.Force); err != nil {
		return err
	}

	doc, err := workflow.Build(req)
	if err != nil {
		return fmt.Errorf("building workflow: %w", err)
	}

	data, err := render.Marshal(doc, render.DefaultOptions())
	if err != nil {
		return fmt.Errorf("rendering workflow: %w", err)
	}

	if err := render.WriteFile(req.Outfile, data); err != nil {
		return err
	}

	slog.Info("workflow written", "outfile", req.Outfile, "slugs", len(req.Slugs), "steps", len(doc.Job.Steps))
	return nil
}
