package api

import (
	"flag"
	"strings"
)

// boolFlags returns the names of registered flags that take no value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	names := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			names[f.Name] = true
		}
	})
	return names
}

// SplitArgs separates flag tokens from positional arguments so flags
// may appear before, between, or after the slugs. A "--" token ends
// flag parsing; everything after it is positional. The flagArgs result
// is meant for fs.Parse.
func SplitArgs(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	valueless := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !valueless[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return flagArgs, posArgs
}
