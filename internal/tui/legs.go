package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"globetrot/internal/geo"
)

// refreshLegsTable rebuilds the legs table from the loaded journey.
func (m *Model) refreshLegsTable() {
	if m.builder == nil {
		m.showLegs = false
		m.status = "no journey loaded"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "date", Width: 10},
		{Title: "vehicle", Width: 8},
		{Title: "from", Width: 16},
		{Title: "to", Width: 16},
		{Title: "km", Width: 7},
	}
	legs := m.builder.Legs()
	rows := make([]table.Row, 0, len(legs))
	for i, leg := range legs {
		km := geo.Haversine(leg.Source.Lat, leg.Source.Lon, leg.Target.Lat, leg.Target.Lon)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			leg.Date.Format("2006-01-02"),
			leg.Vehicle,
			leg.Source.City,
			leg.Target.City,
			fmt.Sprintf("%.0f", km),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
