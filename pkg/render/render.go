package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dhodcz2/check50-workflow/pkg/workflow"
	"gopkg.in/yaml.v3"
)

// Options control the YAML layout of a rendered workflow.
type Options struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// SpaceSteps inserts one blank line between adjacent step entries.
	SpaceSteps bool
}

// DefaultOptions returns the layout used for generated workflow files.
func DefaultOptions() Options {
	return Options{Indent: 2, SpaceSteps: true}
}

// Marshal renders the document as GitHub Actions workflow YAML. Mapping
// keys keep their insertion order, multi-line scripts become literal
// blocks, and every string scalar is tagged as such so values like "on"
// or "3.12" never re-resolve to booleans or numbers.
//
// The header is encoded as one node tree; the steps are then encoded
// one block each and re-indented under the job's steps key, which is
// what allows a plain blank line between entries. The blank lines are
// insignificant to YAML, so parsing the output yields exactly the
// logical steps.
func Marshal(doc *workflow.Document, opts Options) ([]byte, error) {
	if opts.Indent <= 0 {
		opts.Indent = DefaultOptions().Indent
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(opts.Indent)
	if err := enc.Encode(headerNode(doc)); err != nil {
		return nil, fmt.Errorf("encoding workflow header: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding workflow header: %w", err)
	}

	// The job mapping is two levels deep: jobs -> job id -> steps.
	buf.WriteString(strings.Repeat(" ", 2*opts.Indent))
	buf.WriteString("steps:\n")

	for i, step := range doc.Job.Steps {
		block, err := marshalStep(step, opts)
		if err != nil {
			return nil, fmt.Errorf("encoding step %d: %w", i, err)
		}
		if i > 0 && opts.SpaceSteps {
			buf.WriteByte('\n')
		}
		buf.Write(block)
	}

	return buf.Bytes(), nil
}

// marshalStep encodes a single step at the top level and shifts it
// under a list marker at the steps indentation. The uniform shift
// keeps literal blocks and wrapped scalars intact.
func marshalStep(step workflow.Step, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(opts.Indent)
	if err := enc.Encode(stepNode(step)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	item := strings.Repeat(" ", 3*opts.Indent)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	var out bytes.Buffer
	for i, line := range lines {
		switch {
		case i == 0:
			out.WriteString(item)
			out.WriteString("- ")
			out.WriteString(line)
		case line != "":
			out.WriteString(item)
			out.WriteString("  ")
			out.WriteString(line)
		}
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

func headerNode(doc *workflow.Document) *yaml.Node {
	on := mappingNode()
	for _, trigger := range doc.On {
		appendPair(on, scalarNode(trigger), mappingNode())
	}

	permissions := mappingNode()
	for _, perm := range doc.Permissions {
		appendPair(permissions, scalarNode(perm.Scope), scalarNode(perm.Level))
	}

	container := mappingNode()
	appendPair(container, scalarNode("image"), scalarNode(doc.Job.Image))

	job := mappingNode()
	appendPair(job, scalarNode("container"), container)
	appendPair(job, scalarNode("runs-on"), scalarNode(doc.Job.RunsOn))

	jobs := mappingNode()
	appendPair(jobs, scalarNode(doc.JobID), job)

	root := mappingNode()
	appendPair(root, scalarNode("name"), scalarNode(doc.Name))
	appendPair(root, scalarNode("on"), on)
	appendPair(root, scalarNode("permissions"), permissions)
	appendPair(root, scalarNode("jobs"), jobs)
	return root
}

func stepNode(step workflow.Step) *yaml.Node {
	node := mappingNode()
	if step.Name != "" {
		appendPair(node, scalarNode("name"), scalarNode(step.Name))
	}
	if step.ID != "" {
		appendPair(node, scalarNode("id"), scalarNode(step.ID))
	}
	if step.Uses != "" {
		appendPair(node, scalarNode("uses"), scalarNode(step.Uses))
	}
	if len(step.Env) > 0 {
		appendPair(node, scalarNode("env"), paramsNode(step.Env))
	}
	if len(step.With) > 0 {
		appendPair(node, scalarNode("with"), paramsNode(step.With))
	}
	if step.Run != "" {
		appendPair(node, scalarNode("run"), scalarNode(step.Run))
	}
	return node
}

func paramsNode(params workflow.Params) *yaml.Node {
	node := mappingNode()
	for _, kv := range params {
		appendPair(node, scalarNode(kv.Key), scalarNode(kv.Value))
	}
	return node
}

func scalarNode(value string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if strings.Contains(value, "\n") {
		node.Style = yaml.LiteralStyle
	}
	return node
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func appendPair(m *yaml.Node, key, value *yaml.Node) {
	m.Content = append(m.Content, key, value)
}
