package ui

import (
	"testing"

	"falling-sand/internal/core"
)

func TestReadOnlyLinesSkipBoundControls(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("w", "Width", 64),
			core.IntParam("mass", "Mass", 12),
		}},
		{Name: "Scheduler", Params: []core.Parameter{
			core.IntParam("threads", "Threads", 4),
		}},
	}}
	controls := []core.ParameterControl{{Key: "threads", Label: "Threads", Type: core.ParamTypeInt}}

	got := readOnlyLines(snap, controls)
	want := []string{"Width: 64", "Mass: 12"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
