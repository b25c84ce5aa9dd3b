package workflow

import (
	"fmt"
	"strings"

	"github.com/dhodcz2/check50-workflow/pkg/api"
)

// Build assembles the autograding workflow document for the request's
// slugs. Each slug contributes a grading step and an export step, in
// the order given; duplicate slugs are kept as-is. The final reporter
// step collects one results variable per produced runner name.
func Build(req *api.Request) (*Document, error) {
	doc := &Document{
		Name: workflowName,
		On:   []string{"push", "repository_dispatch"},
		Permissions: []Permission{
			{Scope: "checks", Level: "write"},
			{Scope: "actions", Level: "read"},
			{Scope: "contents", Level: "read"},
		},
		JobID: jobID,
		Job: Job{
			Image:  containerImage,
			RunsOn: runnerLabel,
		},
	}

	doc.Job.Steps = append(doc.Job.Steps,
		Step{Uses: checkoutAction},
		Step{Name: installStepName, Run: installScript},
	)

	names := make([]string, 0, len(req.Slugs))
	for _, slug := range req.Slugs {
		clean := strings.TrimRight(slug, "/")
		name := SlugName(slug)

		command, err := commandLine(clean, name)
		if err != nil {
			return nil, err
		}
		grader := Step{Name: name, ID: name, Uses: graderAction}
		grader.With.Set("test-name", name)
		grader.With.Set("setup-command", setupScript)
		grader.With.Set("command", command)

		export, err := exportLine(name)
		if err != nil {
			return nil, err
		}

		doc.Job.Steps = append(doc.Job.Steps,
			grader,
			Step{Name: "Assign file contents to " + resultsVar(name), Run: export},
		)
		names = append(names, name)
	}

	runners, err := runnersList(names)
	if err != nil {
		return nil, err
	}

	reporter := Step{Name: reporterStepName, Uses: reporterAction}
	for _, name := range names {
		reporter.Env.Set(resultsVar(name), fmt.Sprintf("${{ env.%s }}", resultsVar(name)))
	}
	reporter.With.Set("runners", runners)
	doc.Job.Steps = append(doc.Job.Steps, reporter)

	return doc, nil
}
