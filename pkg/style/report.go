package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/report"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// Glyphs tag each report line with its severity
const (
	GlyphPass        = "✓"
	GlyphWarn        = "!"
	GlyphFail        = "✗"
	GlyphRemediation = "→"
)

// RemediationsHeading introduces the ordered list of fixes
const RemediationsHeading = "to fix"

// RenderOptions control RenderReport
type RenderOptions struct {
	// Color enables lipgloss styling. Off means plain text.
	Color bool
	// Verbose lists the items of passing outcomes too
	Verbose bool
	// Styles defaults to Default()
	Styles Registry
}

// RenderReport writes r grouped by category, in plan order, followed by
// the summary line
func RenderReport(w io.Writer, r types.Report, opts RenderOptions) error {
	p := painter{color: opts.Color, styles: opts.Styles}
	if p.styles == nil {
		p.styles = Default()
	}

	var b strings.Builder
	order, groups := report.ByCategory(r.Outcomes)
	for i, category := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.paint("Category", category) + "\n")
		for _, o := range groups[category] {
			writeOutcome(&b, p, o, opts.Verbose)
		}
	}

	if len(order) > 0 {
		b.WriteString("\n")
	}
	if writeRemediations(&b, p, r.Remediations) {
		b.WriteString("\n")
	}
	b.WriteString(p.paint("Summary", Summary(r)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary returns "N passed, N warnings, N failed"
func Summary(r types.Report) string {
	return fmt.Sprintf("%d passed, %d warnings, %d failed", r.Passed, r.Warned, r.Failed)
}

func writeOutcome(b *strings.Builder, p painter, o types.CheckOutcome, verbose bool) {
	glyph, styleName := GlyphPass, "Pass"
	switch o.Severity {
	case types.SeverityWarn:
		glyph, styleName = GlyphWarn, "Warn"
	case types.SeverityFail:
		glyph, styleName = GlyphFail, "Fail"
	}

	line := "  " + p.paint(styleName, glyph) + " " + p.paint("Name", o.Name)
	if o.Detail != "" {
		line += "  " + p.paint("Detail", o.Detail)
	}
	b.WriteString(line + "\n")

	if o.Severity != types.SeverityPass || verbose {
		for _, item := range o.Items {
			b.WriteString("      " + p.paint("Item", item) + "\n")
		}
	}
	if o.Severity != types.SeverityPass && o.Remediation != "" {
		b.WriteString("    " + p.paint("Remediation", GlyphRemediation+" "+o.Remediation) + "\n")
	}
}

// writeRemediations lists the remediation of every non-pass outcome in
// declaration order. It reports whether anything was written.
func writeRemediations(b *strings.Builder, p painter, outcomes []types.CheckOutcome) bool {
	n := 0
	for _, o := range outcomes {
		if o.Remediation == "" {
			continue
		}
		if n == 0 {
			b.WriteString(p.paint("Category", RemediationsHeading) + "\n")
		}
		n++
		b.WriteString(fmt.Sprintf("  %d. %s  %s\n", n, p.paint("Name", o.Name), p.paint("Remediation", o.Remediation)))
	}
	return n > 0
}

type painter struct {
	color  bool
	styles Registry
}

func (p painter) paint(name, s string) string {
	if !p.color {
		return s
	}
	return p.styles.Get(name).Render(s)
}
