// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/ecostats/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E7D32"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	tokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9A825"))
	tableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
)

func newTable(headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableStyle)
	if len(headers) > 0 {
		t.Headers(headers...)
	}
	return t
}

func renderKeyValues(title string, pairs [][2]string) string {
	t := newTable()
	for _, p := range pairs {
		t.Row(p[0], p[1])
	}
	return titleStyle.Render(title) + "\n" + t.String()
}

// renderGrouped prints counts sorted by descending count, then key.
func renderGrouped(title string, stats models.GroupedStats) string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if stats[keys[i]] != stats[keys[j]] {
			return stats[keys[i]] > stats[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if len(keys) == 0 {
		return titleStyle.Render(title) + "\n" + mutedStyle.Render("no data")
	}

	t := newTable("key", "count")
	for _, k := range keys {
		t.Row(k, fmt.Sprint(stats[k]))
	}
	return titleStyle.Render(title) + "\n" + t.String()
}

func renderUser(title string, user models.UserSummary) string {
	pairs := [][2]string{
		{"id", user.ID},
		{"name", user.Name},
		{"email", user.Email},
		{"role", string(user.Role)},
	}
	if user.LastLogin != nil {
		pairs = append(pairs, [2]string{"last login", user.LastLogin.UTC().Format(models.TimestampLayout)})
	}
	return renderKeyValues(title, pairs)
}

func renderToken(token string) string {
	return mutedStyle.Render("token: ") + tokenStyle.Render(token)
}

func renderActivities(resp models.ActivitiesResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Activity"))
	b.WriteString("\n")

	if len(resp.Activities) == 0 {
		b.WriteString(mutedStyle.Render("no activities"))
	} else {
		t := newTable("time", "type", "project", "description")
		for _, a := range resp.Activities {
			project := ""
			if a.ProjectName != nil {
				project = *a.ProjectName
			}
			t.Row(a.Timestamp.UTC().Format(models.TimestampLayout), string(a.Type), project, a.Description)
		}
		b.WriteString(t.String())
	}

	p := resp.Pagination
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("page %d of %d, %d total", p.Page, p.TotalPages, p.TotalItems)))
	return b.String()
}
