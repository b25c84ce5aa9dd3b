package api

import (
	"flag"
	"reflect"
	"testing"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Bool("force", false, "")
	fs.String("log-level", "warn", "")
	return fs
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		argv      []string
		wantFlags []string
		wantPos   []string
	}{
		{
			"flags first",
			[]string{"-force", "example/", "out.yml"},
			[]string{"-force"},
			[]string{"example/", "out.yml"},
		},
		{
			"flags after positionals",
			[]string{"example/", "out.yml", "-force"},
			[]string{"-force"},
			[]string{"example/", "out.yml"},
		},
		{
			"flag between positionals",
			[]string{"example/", "-force", "out.yml"},
			[]string{"-force"},
			[]string{"example/", "out.yml"},
		},
		{
			"value flag consumes next token",
			[]string{"-log-level", "debug", "example/", "out.yml"},
			[]string{"-log-level", "debug"},
			[]string{"example/", "out.yml"},
		},
		{
			"equals form consumes nothing",
			[]string{"-log-level=debug", "example/", "out.yml"},
			[]string{"-log-level=debug"},
			[]string{"example/", "out.yml"},
		},
		{
			"double dash ends flag parsing",
			[]string{"-force", "--", "-log-level", "out.yml"},
			[]string{"-force"},
			[]string{"-log-level", "out.yml"},
		},
		{
			"single dash is positional",
			[]string{"example/", "-", "out.yml"},
			nil,
			[]string{"example/", "-", "out.yml"},
		},
		{
			"no flags",
			[]string{"example/", "out.yml"},
			nil,
			[]string{"example/", "out.yml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFlags, gotPos := SplitArgs(newTestFlagSet(), tt.argv)
			if !reflect.DeepEqual(gotFlags, tt.wantFlags) {
				t.Errorf("flags = %v, want %v", gotFlags, tt.wantFlags)
			}
			if !reflect.DeepEqual(gotPos, tt.wantPos) {
				t.Errorf("positionals = %v, want %v", gotPos, tt.wantPos)
			}
		})
	}
}

func TestSplitArgs_ParsesWithFlagSet(t *testing.T) {
	fs := newTestFlagSet()
	flagArgs, posArgs := SplitArgs(fs, []string{"example/", "out.yml", "-force", "-log-level", "debug"})
	if err := fs.Parse(flagArgs); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if got := fs.Lookup("force").Value.String(); got != "true" {
		t.Errorf("expected force=true, got %s", got)
	}
	if got := fs.Lookup("log-level").Value.String(); got != "debug" {
		t.Errorf("expected log-level=debug, got %s", got)
	}
	if len(posArgs) != 2 {
		t.Errorf("expected 2 positionals, got %v", posArgs)
	}
}
