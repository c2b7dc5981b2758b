package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/supplyflow/pkg/application/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLReport generates a self-contained HTML page for one solve: allocation
// shares, the allocation table, and the tiered ranking when present.
type HTMLReport struct{}

// FlowShare is one allocation entry's share of the requested volume,
// precomputed for the report's share bars.
type FlowShare struct {
	Label   string  `json:"label"`
	Units   int64   `json:"units"`
	Percent float64 `json:"percent"`
}

// ReportData is the payload embedded into the report page as JSON
type ReportData struct {
	Result  *dto.SolveResult  `json:"result"`
	Ranking *dto.RankedResult `json:"ranking,omitempty"`
	Shares  []FlowShare       `json:"shares"`
}

// TemplateData contains all data for rendering the HTML template
type TemplateData struct {
	*ReportData
	DataJSON    template.JS
	GeneratedAt string
}

// NewHTMLReport creates a new HTML report generator
func NewHTMLReport() *HTMLReport {
	return &HTMLReport{}
}

// GenerateHTML renders the solve report page
func (hr *HTMLReport) GenerateHTML(result *dto.SolveResult, ranked *dto.RankedResult, config Config) (string, error) {
	data := hr.buildReportData(result, ranked)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report data: %w", err)
	}

	if config.Verbose {
		fmt.Printf("  📄 Serialized %d bytes of report data\n", len(jsonData))
	}

	templateData := &TemplateData{
		ReportData:  data,
		DataJSON:    template.JS(jsonData),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	tmpl, err := template.ParseFS(templateFS, "templates/solve_report.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// buildReportData converts the solve result into report-ready data
func (hr *HTMLReport) buildReportData(result *dto.SolveResult, ranked *dto.RankedResult) *ReportData {
	data := &ReportData{
		Result:  result,
		Ranking: ranked,
		Shares:  []FlowShare{},
	}

	for _, entry := range result.Allocations {
		share := FlowShare{
			Label: fmt.Sprintf("%s via %s", entry.Factory, entry.Hub),
			Units: int64(entry.Units),
		}
		if result.Volume > 0 {
			share.Percent = float64(entry.Units) / float64(result.Volume) * 100
		}
		data.Shares = append(data.Shares, share)
	}

	return data
}

// generateHTMLOutput writes the solve report as an HTML file
func generateHTMLOutput(result *dto.SolveResult, ranked *dto.RankedResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for HTML format")
	}

	report := NewHTMLReport()
	html, err := report.GenerateHTML(result, ranked, config)
	if err != nil {
		return fmt.Errorf("failed to generate HTML report: %w", err)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "solve_report.html")
	if err := os.WriteFile(filename, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("🌐 Solve report saved to: %s\n", filename)
	}
	return nil
}
