package workflow

import (
	"path"
	"strings"
)

// SlugName derives a runner name from a check50 slug: the last path
// component with trailing separators removed and the final extension
// dropped. "project/hw1/" becomes "hw1", "project/tests.py" becomes
// "tests". A leading or trailing dot is not treated as an extension,
// so ".hidden" and "tests." keep their dots.
func SlugName(slug string) string {
	name := path.Base(strings.TrimRight(slug, "/"))
	if i := strings.LastIndex(name, "."); i > 0 && i < len(name)-1 {
		name = name[:i]
	}
	return name
}
