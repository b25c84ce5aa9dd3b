package api

import "fmt"

// Validate checks the request for errors.
func (r *Request) Validate() error {
	if len(r.Slugs) == 0 {
		return fmt.Errorf("at least one slug is required")
	}
	if r.Outfile == "" {
		return fmt.Errorf("output file path is empty")
	}
	return nil
}
