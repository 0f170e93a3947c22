package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fit-tools/energy-atlas/pkg/services/balance"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderReport(w io.Writer, report *balance.Report) {
	fmt.Fprintf(w, "Energy balance %s to %s (%d day(s) used)\n\n",
		report.From.Format("2006-01-02"), report.To.Format("2006-01-02"),
		report.Summary.DaysUsed)

	dayRows := make([][]string, 0, len(report.Days))
	for _, day := range report.Days {
		dayRows = append(dayRows, []string{
			day.Date,
			fmt.Sprintf("%.0f", day.ConsumedCalories),
			fmt.Sprintf("%.0f", day.BurnedCalories),
			fmt.Sprintf("%+.0f", day.NetCalories),
			string(day.Status),
			string(day.BurnedSource),
			strings.Join(day.MissingBurnComponents, ","),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Date", "Consumed", "Burned", "Net", "Status", "Source", "Missing"},
		dayRows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
	))

	summary := report.Summary
	summaryRows := [][]string{
		{"Total consumed", fmt.Sprintf("%.0f kcal", summary.TotalConsumedCalories)},
		{"Total burned", fmt.Sprintf("%.0f kcal", summary.TotalBurnedCalories)},
		{"Total net", fmt.Sprintf("%+.0f kcal", summary.TotalNetCalories)},
		{"Average net per day", fmt.Sprintf("%+.2f kcal", summary.AverageNetPerDay)},
		{"Average status", string(summary.AverageStatus)},
		{"Data quality", string(summary.DataQuality)},
		{"Days complete / incomplete", fmt.Sprintf("%d / %d", summary.DaysComplete, summary.DaysIncomplete)},
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Summary", "Value"},
		summaryRows,
		[]columnAlignment{alignLeft, alignRight},
	))

	if len(summary.MissingComponentCounts) > 0 {
		names := make([]string, 0, len(summary.MissingComponentCounts))
		for name := range summary.MissingComponentCounts {
			names = append(names, name)
		}
		sort.Strings(names)

		missingRows := make([][]string, 0, len(names))
		for _, name := range names {
			missingRows = append(missingRows, []string{
				name, fmt.Sprintf("%d", summary.MissingComponentCounts[name]),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Missing component", "Days"},
			missingRows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}
}
