package api

import (
	"fmt"
	"slices"
)

// ParseRequest builds a Request from the positional arguments: one or
// more slugs followed by the output file path. The slug list is cloned
// so later changes to args do not reach the request.
func ParseRequest(args []string, force bool) (*Request, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one slug is required")
	}
	if len(args) == 1 {
		return nil, fmt.Errorf("an output file path is required after the slugs")
	}

	req := &Request{
		Slugs:   slices.Clone(args[:len(args)-1]),
		Outfile: args[len(args)-1],
		Force:   force,
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validating request: %w", err)
	}

	return req, nil
}
