package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/charmbracelet/lipgloss"
)

const nameColumnMax = 40

// RenderList prints one entry per line: name, then user and folder in
// aligned columns when any entry has them.
func RenderList(entries []models.EntrySummary) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(fitText(e.Name, nameColumnMax)))
	}

	var b strings.Builder
	for _, e := range entries {
		name := fitText(e.Name, nameColumnMax)
		line := name
		if e.Username != "" || e.Folder != "" {
			line += strings.Repeat(" ", width-lipgloss.Width(name)) + "  " + e.Username
		}
		if e.Folder != "" {
			line += "  [" + e.Folder + "]"
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderStatus prints the answer to `status`.
func RenderStatus(s models.AgentStatus) string {
	var b strings.Builder

	state := "unlocked"
	if s.Locked {
		state = lockedStyle.Render("locked")
	}
	b.WriteString(field("Agent", fmt.Sprintf("pid %d, version %s, %s", s.PID, s.Version, state)))

	if !s.LoggedIn {
		b.WriteString(field("Account", "not logged in"))
		return strings.TrimRight(b.String(), "\n")
	}

	b.WriteString(field("Account", fmt.Sprintf("%s (%s)", s.Email, s.KDF)))
	b.WriteString(field("Entries", fmt.Sprintf("%d, %d not synced", s.Entries, s.Dirty)))
	b.WriteString(field("Last sync", formatTime(s.LastSync)))
	if !s.Locked {
		b.WriteString(field("Locks at", formatTime(s.ExpiresAt)))
	}

	if len(s.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Recent activity"))
		b.WriteString("\n")
		for _, e := range s.Recent {
			line := fmt.Sprintf("  %s  %-9s %s", formatTime(e.CreatedAt), e.Operation, e.Result)
			if e.ErrorCode != "" {
				line += " (" + e.ErrorCode + ")"
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
