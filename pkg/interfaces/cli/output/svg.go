package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsinha/supplyflow/pkg/application/dto"
)

// AllocationChart renders a solve result as an SVG share chart: one row per
// chosen flow, bar width proportional to the flow's share of the requested
// volume, so a full-width bar would carry the entire request.
type AllocationChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	RowHeight    int
}

// barPalette cycles across flow rows
var barPalette = []string{
	"#4CAF50", // green
	"#2196F3", // blue
	"#9C27B0", // purple
	"#FF9800", // orange
	"#00BCD4", // cyan
	"#8BC34A", // light green
}

// NewAllocationChart creates a chart sized for the result's allocation count
func NewAllocationChart(result *dto.SolveResult) *AllocationChart {
	rowHeight := 32
	height := len(result.Allocations)*rowHeight + 150
	if len(result.Allocations) == 0 {
		height = 200
	}

	return &AllocationChart{
		Width:        1000,
		Height:       height,
		MarginLeft:   230,
		MarginTop:    70,
		MarginRight:  60,
		MarginBottom: 70,
		RowHeight:    rowHeight,
	}
}

// GenerateSVG creates an SVG representation of the allocation plan
func (ac *AllocationChart) GenerateSVG(result *dto.SolveResult) string {
	if len(result.Allocations) == 0 {
		return ac.generateEmptyChart(result)
	}

	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, ac.Width, ac.Height))
	svg.WriteString(`<defs>`)
	svg.WriteString(`<style>`)
	svg.WriteString(`.flow-label { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }`)
	svg.WriteString(`.share-label { font-family: Arial, sans-serif; font-size: 10px; fill: #666; }`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.subtitle { font-family: Arial, sans-serif; font-size: 11px; fill: #666; }`)
	svg.WriteString(`.grid-line { stroke: #e0e0e0; stroke-width: 1; }`)
	svg.WriteString(`.alloc-bar { stroke: #333; stroke-width: 1; }`)
	svg.WriteString(`.alloc-text { font-family: Arial, sans-serif; font-size: 10px; fill: white; }`)
	svg.WriteString(`</style>`)
	svg.WriteString(`</defs>`)

	// Background
	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, ac.Width, ac.Height))

	// Title and solve summary
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="28" class="title" text-anchor="middle">Supply Allocation: %s to %s</text>`,
		ac.Width/2, result.Category, result.Destination))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="48" class="subtitle" text-anchor="middle">Status: %s | %d of %d units | Total landed cost $%s</text>`,
		ac.Width/2, result.Status, result.TotalUnits, result.Volume, result.TotalCost.StringFixed(2)))

	ac.drawShareGrid(&svg, len(result.Allocations))
	ac.drawFlowRows(&svg, result)
	ac.drawShareAxis(&svg, result)

	svg.WriteString(`</svg>`)
	return svg.String()
}

// drawShareGrid draws vertical share gridlines at each quarter of the request
func (ac *AllocationChart) drawShareGrid(svg *strings.Builder, numRows int) {
	chartWidth := ac.Width - ac.MarginLeft - ac.MarginRight
	gridBottom := ac.MarginTop + numRows*ac.RowHeight

	for i := 0; i <= 4; i++ {
		x := ac.MarginLeft + chartWidth*i/4
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			x, ac.MarginTop, x, gridBottom))
	}
}

// drawShareAxis labels the quarter gridlines and captions the axis
func (ac *AllocationChart) drawShareAxis(svg *strings.Builder, result *dto.SolveResult) {
	chartWidth := ac.Width - ac.MarginLeft - ac.MarginRight
	axisY := ac.MarginTop + len(result.Allocations)*ac.RowHeight

	for i := 0; i <= 4; i++ {
		x := ac.MarginLeft + chartWidth*i/4
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="share-label" text-anchor="middle">%d%%</text>`,
			x, axisY+18, i*25))
	}

	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="share-label" text-anchor="middle">Share of requested volume (%d units)</text>`,
		ac.MarginLeft+chartWidth/2, axisY+38, result.Volume))
}

// drawFlowRows draws one labeled bar per allocation entry
func (ac *AllocationChart) drawFlowRows(svg *strings.Builder, result *dto.SolveResult) {
	chartWidth := ac.Width - ac.MarginLeft - ac.MarginRight

	for i, entry := range result.Allocations {
		y := ac.MarginTop + i*ac.RowHeight
		share := float64(entry.Units) / float64(result.Volume)

		width := int(share * float64(chartWidth))
		if width < 2 {
			width = 2 // Minimum width for visibility
		}

		label := fmt.Sprintf("%s via %s", entry.Factory, entry.Hub)
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="flow-label" text-anchor="end">%s</text>`,
			ac.MarginLeft-15, y+ac.RowHeight/2+4, label))

		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			ac.MarginLeft, y+ac.RowHeight, ac.Width-ac.MarginRight, y+ac.RowHeight))

		color := barPalette[i%len(barPalette)]
		barHeight := ac.RowHeight - 6
		barY := y + 3
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="alloc-bar"/>`,
			ac.MarginLeft, barY, width, barHeight, color))

		// Bar annotation if there is room for it
		if width > 90 {
			svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="alloc-text" text-anchor="middle">%d units (%.0f%%)</text>`,
				ac.MarginLeft+width/2, barY+barHeight/2+3, entry.Units, share*100))
		}

		// Tooltip (SVG title element)
		tooltip := fmt.Sprintf("Factory: %s, Hub: %s, Units: %d, Cost/Unit: $%.2f, Transit: %d days, Score: %.4f",
			entry.Factory, entry.Hub, entry.Units, entry.CostPerUnit, entry.TransitDays, entry.Score)
		svg.WriteString(fmt.Sprintf(`<title>%s</title>`, tooltip))
	}
}

// generateEmptyChart creates an empty chart when the solve chose no flows
func (ac *AllocationChart) generateEmptyChart(result *dto.SolveResult) string {
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
		<rect width="%d" height="%d" fill="white"/>
		<text x="%d" y="%d" class="title" text-anchor="middle">No Allocations (%s)</text>
		<style>
			.title { font-family: Arial, sans-serif; font-size: 16px; fill: #666; }
		</style>
	</svg>`, ac.Width, ac.Height, ac.Width, ac.Height, ac.Width/2, ac.Height/2, result.Status)
}

// generateSVGOutput writes the allocation chart as an SVG file
func generateSVGOutput(result *dto.SolveResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for SVG format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	chart := NewAllocationChart(result)
	svg := chart.GenerateSVG(result)

	filename := filepath.Join(config.OutputDir, "allocation_chart.svg")
	if err := os.WriteFile(filename, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 Allocation chart saved to: %s\n", filename)
	}
	return nil
}
