package status

import (
	"fmt"
	"strings"
)

type Row struct {
	Label string
	Value string
}

type Info struct {
	Name    string
	Address string
	Rows    []Row
}

// Render produces the styled status view for one TV.
func Render(info Info) string {
	s := newStyles()

	lines := []string{
		s.title.Render("LG TV Status"),
		s.header.Render(fmt.Sprintf("%s (%s)", info.Name, info.Address)),
	}

	if len(info.Rows) == 0 {
		lines = append(lines, s.empty.Render("no settings reported"))
		return strings.Join(lines, "\n") + "\n"
	}

	for _, row := range info.Rows {
		value := row.Value
		if value == "" {
			value = s.empty.Render("unknown")
		} else {
			value = s.value.Render(value)
		}
		lines = append(lines, fmt.Sprintf("%s %s", s.label.Render(row.Label+":"), value))
	}

	return strings.Join(lines, "\n") + "\n"
}
