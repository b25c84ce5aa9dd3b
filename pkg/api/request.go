package api

// DefaultOutfile is the conventional location for the generated
// workflow inside an assignment repository. It is documentation only;
// every invocation names its output file explicitly.
const DefaultOutfile = "./.github/workflows/classroom.yml"

// Request describes one generation run.
type Request struct {
	// Slugs are the check50 slugs to grade, in invocation order.
	Slugs []string
	// Outfile is the path the workflow is written to.
	Outfile string
	// Force overwrites an existing output file.
	Force bool
}
