// Package report prints simulation results for the terminal.
package report

import (
	"My-Supps-Backend/domain"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	fullColor    = color.New(color.FgGreen)
	partialColor = color.New(color.FgYellow)
	lowColor     = color.New(color.FgRed)
	warningColor = color.New(color.FgRed, color.Bold)
)

// coverageColor picks the color for a coverage value: green once the
// recommended amount is met, yellow from half of it, red below.
func coverageColor(coverage float64) *color.Color {
	switch {
	case coverage >= 100:
		return fullColor
	case coverage >= 50:
		return partialColor
	default:
		return lowColor
	}
}

// PrintSimulation renders one row per covered nutrient, followed by the
// warnings and the overall coverage.
func PrintSimulation(w io.Writer, res domain.SimulationResponse) error {
	fmt.Fprintf(w, "Body weight: %.1f kg, supplements: %d\n", res.WeightKg, len(res.Supplements))
	if len(res.Nutrients) == 0 {
		fmt.Fprintln(w, "No nutrients supplied by the current selection.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Nutrient", "Amount", "Recommended", "Coverage", "Sources"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, n := range res.Nutrients {
		name := n.Nutrient.NameEn
		if name == "" {
			name = n.Nutrient.NameJa
		}

		recommended := "-"
		if n.RecommendedAmount > 0 {
			recommended = fmt.Sprintf("%.2f%s", n.RecommendedAmount, n.Nutrient.Unit)
		}

		sources := make([]string, 0, len(n.Contributions))
		for _, c := range n.Contributions {
			sources = append(sources, fmt.Sprintf("%s %.0f%%", c.SupplementName, c.Percentage))
		}

		data = append(data, []string{
			name,
			n.Display,
			recommended,
			coverageColor(n.Coverage).Sprintf("%.0f%%", n.Coverage),
			strings.Join(sources, ", "),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, warning := range res.Warnings {
		fmt.Fprintln(w, warningColor.Sprint("! "+warning))
	}
	fmt.Fprintf(w, "Overall coverage: %s\n",
		coverageColor(float64(res.CoveragePercentage)).Sprintf("%d%%", res.CoveragePercentage))
	return nil
}
