package flowchart

import "strings"

// Connection is one directed edge. The destination node is owned by the
// graph builder; the edge only references it. Labels are rendered inside
// parentheses on the edge line, deduplicated and comma-joined:
//
//	cond2(yes, left)->cond0
type Connection struct {
	Target Element
	Labels []string
}

// renderLabels joins edge labels into the "(a, b)" edge specification.
// Duplicates and empty labels are dropped; no labels yields "".
func renderLabels(labels []string) string {
	kept := labels[:0:0]
	for _, l := range labels {
		if l == "" {
			continue
		}
		dup := false
		for _, k := range kept {
			if k == l {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return "(" + strings.Join(kept, ", ") + ")"
}
