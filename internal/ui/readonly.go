package ui

import "falling-sand/internal/core"

// readOnlyLines renders every snapshot parameter that no control adjusts as
// a "Label: value" line, in group order.
func readOnlyLines(snap core.ParameterSnapshot, controls []core.ParameterControl) []string {
	bound := make(map[string]bool, len(controls))
	for _, c := range controls {
		bound[c.Key] = true
	}
	var lines []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if bound[p.Key] {
				continue
			}
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
