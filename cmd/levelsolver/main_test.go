package main

import (
	"context"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long running solves")
	}

	tests := []struct {
		args []string
		code int
	}{
		{[]string{"levelsolver", "--cwd", t.TempDir(), "check", "x1.2x"}, 0},
		{[]string{"levelsolver", "--cwd", t.TempDir(), "solve", "--out", "out.txt", "x" + strings.Repeat("3x", 50)}, 0},
		{[]string{"levelsolver", "--cwd", t.TempDir(), "check", "y"}, 1},
	}

	for _, test := range tests {
		if code := run(context.Background(), test.args); code != test.code {
			t.Fatalf("%v: exit code %d - expected %d", test.args, code, test.code)
		}
	}
}
