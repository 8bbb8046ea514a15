// Package report builds situation reports for a region, scenario, and
// risk assessment. Reports are deterministic markdown by default; when a
// Claude client is configured the narrative is generated instead, with the
// deterministic text as fallback.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/risk"
	"github.com/storm-buster/jal-setu/pkg/anthropic"
)

// Input carries everything a report is built from.
type Input struct {
	Region         model.Region
	Scenario       model.Scenario
	Risk           risk.Summary
	AffectedRivers []string
	Uploaded       *model.UploadedFile
}

// Report is the generated alert document.
type Report struct {
	AlertID   string `json:"alertId"`
	Timestamp string `json:"timestamp"`
	Report    string `json:"report"`
}

// Option configures a Generator.
type Option func(*Generator)

// WithClaude enables Claude-generated narratives using the given client
// and model.
func WithClaude(client anthropic.Client, model string) Option {
	return func(g *Generator) {
		g.claude = client
		g.model = model
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generator produces reports. The zero-option Generator is fully
// deterministic.
type Generator struct {
	claude anthropic.Client
	model  string
	now    func() time.Time
}

// NewGenerator creates a report Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the report for in. It always succeeds: narrative
// generation failures fall back to the deterministic template.
func (g *Generator) Generate(ctx context.Context, in Input) Report {
	now := g.now().UTC()

	text := g.narrative(ctx, in, now)
	if text == "" {
		text = deterministicText(in, now)
	}

	return Report{
		AlertID:   alertID(in, now),
		Timestamp: now.Format(time.RFC3339),
		Report:    text,
	}
}

// alertID formats identifiers like JS-BI-20260830-01, with an EXT suffix
// for reports about uploaded rasters.
func alertID(in Input, now time.Time) string {
	prefix := strings.ToUpper(string(in.Region))
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	suffix := "01"
	if in.Uploaded != nil {
		suffix = "EXT"
	}
	return fmt.Sprintf("JS-%s-%s-%s", prefix, now.Format("20060102"), suffix)
}

func deterministicText(in Input, now time.Time) string {
	if in.Uploaded != nil {
		return rasterText(in, now)
	}
	return sitrepText(in, now)
}

func sitrepText(in Input, now time.Time) string {
	var b strings.Builder
	date := now.Format("2006-01-02")
	class := risk.Classification(in.Risk.RiskScore)

	fmt.Fprintf(&b, "**SITREP [%s]**: Flood projection for %s under %s scenario.\n\n", date, in.Region, in.Scenario)
	fmt.Fprintf(&b, "**Risk classification**: %s\n", class)
	fmt.Fprintf(&b, "**Flooded area**: %d km²\n", in.Risk.AreaKm2)
	fmt.Fprintf(&b, "**Population at risk**: %d\n", in.Risk.Population)
	if len(in.AffectedRivers) > 0 {
		fmt.Fprintf(&b, "**Rivers in drawn area**: %s\n", strings.Join(in.AffectedRivers, ", "))
	}
	b.WriteString("\n**Key Hazards**:\n")
	b.WriteString("1. **Critical Inundation**: Northern sectors facing elevated depth.\n")
	fmt.Fprintf(&b, "2. **Infrastructure Risk**: Embankments status: %s.\n\n", in.Risk.EmbankmentStatus)
	b.WriteString("**Recommended Action**:\n")
	b.WriteString("1. **Evacuation**: Prioritize high-risk sectors.\n")
	b.WriteString("2. **Medical Logistics**: Pre-position water-borne disease response kits.")
	return b.String()
}

func rasterText(in Input, now time.Time) string {
	var b strings.Builder
	date := now.Format("2006-01-02")
	up := in.Uploaded

	fmt.Fprintf(&b, "**ANALYSIS REPORT [%s]**: Custom Raster Dataset Inspection\n\n", date)
	fmt.Fprintf(&b, "**Source**: `%s`\n", up.Name)
	fmt.Fprintf(&b, "**Dimensions**: %dx%d pixels | **Bands**: %d\n\n", up.Width, up.Height, up.Bands)
	b.WriteString("**Detected Anomalies**:\n")
	b.WriteString("1. **High Water Mark**: Localized maxima exceeding historic norms in the SW quadrant.\n")
	fmt.Fprintf(&b, "2. **Data-Model Variance**: Uploaded raster shows higher saturation than baseline models for %s.\n\n", in.Region)
	b.WriteString("**Recommendation**:\n")
	b.WriteString("1. **Field Validation**: Deploy drone unit to verify spectral signature.\n")
	b.WriteString("2. **Ingestion**: Merge dataset into ensemble for calibrated risk scoring.")
	return b.String()
}

const narrativeSystemPrompt = `You are the operations assistant of a flood
early-warning service covering Bihar, Uttarakhand, Jharkhand and Uttar
Pradesh. Write concise situation reports in markdown for district response
teams. Stick to the numbers you are given, never invent casualty figures,
and always end with concrete recommended actions.`

// narrative asks Claude for a report narrative. Returns "" when no client
// is configured or the request fails, which sends the caller to the
// deterministic template.
func (g *Generator) narrative(ctx context.Context, in Input, now time.Time) string {
	if g.claude == nil {
		return ""
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Date: %s\nRegion: %s\nScenario: %s\n", now.Format("2006-01-02"), in.Region, in.Scenario)
	fmt.Fprintf(&prompt, "Risk score: %.1f/10 (%s)\n", in.Risk.RiskScore, risk.Classification(in.Risk.RiskScore))
	fmt.Fprintf(&prompt, "Flooded area: %d km²\nPopulation at risk: %d\n", in.Risk.AreaKm2, in.Risk.Population)
	fmt.Fprintf(&prompt, "Embankment status: %s\n", in.Risk.EmbankmentStatus)
	if len(in.AffectedRivers) > 0 {
		fmt.Fprintf(&prompt, "Rivers intersecting the drawn area: %s\n", strings.Join(in.AffectedRivers, ", "))
	}
	if in.Uploaded != nil {
		fmt.Fprintf(&prompt, "Uploaded raster: %s (%dx%d, %d bands)\n", in.Uploaded.Name, in.Uploaded.Width, in.Uploaded.Height, in.Uploaded.Bands)
	}
	prompt.WriteString("Write the situation report.")

	resp, err := g.claude.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     g.model,
		MaxTokens: 1024,
		System:    narrativeSystemPrompt,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt.String()}},
	})
	if err != nil {
		zap.L().Warn("report: narrative generation failed, using template",
			zap.String("region", string(in.Region)), zap.Error(err))
		return ""
	}
	resp.Usage.LogCost(g.model, "report")
	return resp.FirstText()
}
