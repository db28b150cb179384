package outletmap

import (
	"fmt"
	"strings"
)

// FormatOutlets formats outlets as bullet lines for display or LLM context.
// Each line carries the name, address, and raw operating-hours text.
func FormatOutlets(outlets []*Outlet) string {
	if len(outlets) == 0 {
		return ""
	}

	lines := make([]string, 0, len(outlets))
	for _, o := range outlets {
		hours := o.OperatingHours
		if hours == "" {
			hours = "not listed"
		}
		lines = append(lines, fmt.Sprintf("• %s: Located at %s, Operating hours: %s", o.Name, o.Address, hours))
	}

	return strings.Join(lines, "\n")
}
