package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-agent/models"
)

// RenderEntry renders the output of `get`. Without full only the password
// is printed, so it can be piped. With full the username, folder and notes
// follow.
func RenderEntry(e models.Entry, full bool) string {
	if !full {
		return e.Password
	}

	var b strings.Builder
	b.WriteString(e.Password)
	b.WriteString("\n")
	if e.Username != "" {
		b.WriteString(field("Username", e.Username))
	}
	if e.Folder != "" {
		b.WriteString(field("Folder", e.Folder))
	}
	if e.Notes != "" {
		b.WriteString("\n")
		b.WriteString(e.Notes)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value + "\n"
}
