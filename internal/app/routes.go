package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/relay/internal/core/domain"
)

var (
	iris  = lipgloss.Color("#8B5CF6")
	slate = lipgloss.Color("#667085")
)

// Routes writes the validated routing table to w.
func (a *App) Routes(w io.Writer, opts Options) error {
	_, routes, err := a.load(opts)
	if err != nil {
		return err
	}

	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(iris).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(slate)).
		Headers("ACTIVITY", "CHANNEL", "DEFAULT", "CACHE", "RESOURCE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, route := range routes.Routes() {
		t.Row(routeRow(route)...)
	}

	_, err = fmt.Fprintln(w, t.Render())
	return err
}

func routeRow(route domain.Route) []string {
	def := "-"
	if route.Default != nil {
		def = *route.Default
	}
	cache := "no"
	resource := "-"
	if route.Cache {
		cache = "yes"
		resource = route.Resource + domain.ResourceExt
	}
	return []string{route.Activity, route.Channel, def, cache, resource}
}
