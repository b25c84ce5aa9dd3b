package workflow

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	workflowName   = "Autograding Tests"
	jobID          = "run-autograding-tests"
	containerImage = "python:3.12-slim"
	runnerLabel    = "ubuntu-latest"

	checkoutAction = "actions/checkout@v4"
	graderAction   = "classroom-resources/autograding-command-grader@v1"
	reporterAction = "classroom-resources/autograding-grading-reporter@v1"

	installStepName  = "Install dependencies (node, git, jq)"
	reporterStepName = "Autograding Reporter"
)

// installScript provisions the tools the grader steps rely on inside
// the container. The trailing newline keeps it a clipped literal block.
const installScript = `apt-get update
apt-get install -y nodejs git jq
apt-get clean
rm -rf /var/lib/apt/lists/*
`

// setupScript replaces any preinstalled check50 with the autograder fork.
const setupScript = `pip uninstall -y check50
pip install --no-cache-dir git+https://github.com/dhodcz2/check50.git
`

var (
	commandTmpl = template.Must(template.New("command").Funcs(sprig.FuncMap()).Parse(
		`check50 {{ .Slug }} --dev -o json --autograder ./autograder/{{ .Name }}.json --feedback ./feedback/{{ .Name }}.txt`))

	exportTmpl = template.Must(template.New("export").Funcs(sprig.FuncMap()).Parse(
		`echo "{{ .Var }}=$(base64 -w0 ./{{ .Name }}.json)" >> $GITHUB_ENV`))

	runnersTmpl = template.Must(template.New("runners").Funcs(sprig.FuncMap()).Parse(
		`{{ .Names | join " " }}`))
)

// resultsVar names the environment variable that carries a runner's
// base64-encoded results file.
func resultsVar(name string) string {
	return name + "_RESULTS"
}

func commandLine(slug, name string) (string, error) {
	var buf bytes.Buffer
	data := struct{ Slug, Name string }{Slug: slug, Name: name}
	if err := commandTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing command template: %w", err)
	}
	return buf.String(), nil
}

func exportLine(name string) (string, error) {
	var buf bytes.Buffer
	data := struct{ Var, Name string }{Var: resultsVar(name), Name: name}
	if err := exportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing export template: %w", err)
	}
	return buf.String(), nil
}

func runnersList(names []string) (string, error) {
	var buf bytes.Buffer
	data := struct{ Names []string }{Names: names}
	if err := runnersTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing runners template: %w", err)
	}
	return buf.String(), nil
}
