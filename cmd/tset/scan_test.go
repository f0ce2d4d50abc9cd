package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trieset.cli")
	defer teardown()
	//
	var inputs = []struct {
		line string
		args []string
	}{
		{"", nil},
		{"   ", nil},
		{"size", []string{"size"}},
		{"add cat  car\tcart", []string{"add", "cat", "car", "cart"}},
		{`add "two words" ""`, []string{"add", "two words", ""}},
		{`contains x-y_z!`, []string{"contains", "x-y_z!"}},
	}
	for i, input := range inputs {
		args, err := splitCommand(input.line)
		if err != nil {
			t.Errorf("test #%d: unexpected error %v", i, err)
			continue
		}
		if len(args) != len(input.args) {
			t.Errorf("test #%d: expected %v, got %v", i, input.args, args)
			continue
		}
		for j := range args {
			if args[j] != input.args[j] {
				t.Errorf("test #%d: expected %q at %d, got %q", i, input.args[j], j, args[j])
			}
		}
	}
}

func TestSplitCommandUnterminated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trieset.cli")
	defer teardown()
	//
	if _, err := splitCommand(`add "open`); err == nil {
		t.Errorf("expected error for unterminated string")
	}
}
