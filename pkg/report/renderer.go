// Package report renders a finished BatchReport for humans and
// machines: per-folder grouped results followed by an aggregate
// summary block.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/LiteObject/WindowsUtils/pkg/report/styles"
	"github.com/LiteObject/WindowsUtils/pkg/types"
)

const rule = "============================================================"

// Renderer writes a BatchReport to an output in one of the supported
// formats.
type Renderer struct {
	out    io.Writer
	format Format
}

// NewRenderer creates a renderer. FormatAuto is resolved against the
// output when it is a file, falling back to plain text otherwise.
func NewRenderer(out io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		} else {
			format = FormatText
		}
	}
	return &Renderer{out: out, format: format}
}

// Render writes the report.
func (r *Renderer) Render(rep *types.BatchReport) error {
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return r.renderText(rep, r.format == FormatTerminal)
}

func (r *Renderer) renderText(rep *types.BatchReport, styled bool) error {
	var b strings.Builder

	for _, folder := range rep.Folders {
		header := "Folder: " + folder.Path
		if styled {
			header = styles.Render("Folder", header)
		}
		b.WriteString(header + "\n")
		for _, res := range folder.Files {
			b.WriteString("  " + fileLine(res, styled) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(r.summary(rep, styled))

	_, err := io.WriteString(r.out, b.String())
	return err
}

func fileLine(res types.FileResult, styled bool) string {
	var icon, text string
	switch res.Status {
	case types.StatusInstalled:
		icon = "✓"
		text = fmt.Sprintf("%s - installed via %s", res.File.Name, res.Method)
	case types.StatusSkipped:
		icon = "⏭"
		text = fmt.Sprintf("%s - %s", res.File.Name, res.Reason)
	case types.StatusFailed:
		icon = "✗"
		text = fmt.Sprintf("%s - %s", res.File.Name, res.FailureReason())
	case types.StatusWouldInstall:
		icon = "📋"
		text = fmt.Sprintf("%s - would install via %s", res.File.Name, res.Method)
	case types.StatusWouldSkip:
		icon = "📋"
		text = fmt.Sprintf("%s - would skip: %s", res.File.Name, res.Reason)
	}
	if styled {
		return statusStyle(res.Status).Sprint(icon) + " " + text
	}
	return icon + " " + text
}

func (r *Renderer) summary(rep *types.BatchReport, styled bool) string {
	title := "FONT INSTALLATION SUMMARY"
	if rep.DryRun {
		title = "DRY RUN - FONT PREVIEW"
	}
	if styled {
		title = styles.Render("Header", title)
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")

	if rep.Counters.Processed == 0 {
		b.WriteString("No folders with font files were found to process.\n")
		b.WriteString(rule + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Folders with fonts processed: %d\n", rep.FoldersWithFonts())
	fmt.Fprintf(&b, "Total font files processed: %d\n", rep.Counters.Processed)
	if rep.DryRun {
		fmt.Fprintf(&b, "Fonts that would be installed: %d\n", rep.Counters.Installed)
		fmt.Fprintf(&b, "Fonts that would be skipped: %d\n", rep.Counters.Skipped)
	} else {
		fmt.Fprintf(&b, "Successfully installed: %d\n", rep.Counters.Installed)
		fmt.Fprintf(&b, "Failed installations: %d\n", rep.Counters.Failed)
		fmt.Fprintf(&b, "Skipped (already installed): %d\n", rep.Counters.Skipped)
	}
	b.WriteString(rule + "\n")
	return b.String()
}

// statusStyle maps a file status to its pterm style for terminal
// output.
func statusStyle(status types.FileStatus) *pterm.Style {
	switch status {
	case types.StatusInstalled:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StatusFailed:
		return pterm.NewStyle(pterm.FgRed)
	case types.StatusSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgCyan)
	}
}
