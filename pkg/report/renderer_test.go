// Test Type: Unit Test
// Description: Tests report rendering in text and JSON formats

package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/LiteObject/WindowsUtils/pkg/report"
	"github.com/LiteObject/WindowsUtils/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *types.BatchReport {
	rep := types.NewBatchReport(false)
	rep.Add("/tmp/fonts/roboto", types.Installed(types.NewFontFile("/tmp/fonts/roboto/Roboto-Regular.ttf"), "shell"))
	rep.Add("/tmp/fonts/roboto", types.Skipped(types.NewFontFile("/tmp/fonts/roboto/Roboto-Bold.ttf"), "already installed"))
	rep.Add("/tmp/fonts/broken", types.Failed(types.NewFontFile("/tmp/fonts/broken/Corrupt.otf"), []types.InstallationAttempt{
		{Strategy: "shell", Outcome: types.Recoverable("powershell exited with an error")},
		{Strategy: "direct", Outcome: types.Recoverable("copy failed")},
		{Strategy: "copy", Outcome: types.Recoverable("copy failed")},
		{Strategy: "resource", Outcome: types.Recoverable("session-scoped registration requires an overwrite grant")},
	}))
	return rep
}

func TestRenderText(t *testing.T) {
	var out bytes.Buffer
	r := report.NewRenderer(&out, report.FormatText)
	require.NoError(t, r.Render(sampleReport()))

	got := out.String()

	assert.Contains(t, got, "Folder: /tmp/fonts/roboto")
	assert.Contains(t, got, "✓ Roboto-Regular.ttf - installed via shell")
	assert.Contains(t, got, "⏭ Roboto-Bold.ttf - already installed")
	assert.Contains(t, got, "✗ Corrupt.otf - shell: powershell exited with an error; direct: copy failed")

	assert.Contains(t, got, "FONT INSTALLATION SUMMARY")
	assert.Contains(t, got, "Folders with fonts processed: 2")
	assert.Contains(t, got, "Total font files processed: 3")
	assert.Contains(t, got, "Successfully installed: 1")
	assert.Contains(t, got, "Failed installations: 1")
	assert.Contains(t, got, "Skipped (already installed): 1")

	// Folder sections precede the summary block
	assert.Less(t, strings.Index(got, "Folder:"), strings.Index(got, "FONT INSTALLATION SUMMARY"))
}

func TestRenderTextDryRun(t *testing.T) {
	rep := types.NewBatchReport(true)
	rep.Add("/tmp/fonts", types.WouldInstall(types.NewFontFile("/tmp/fonts/New.ttf"), "shell"))
	rep.Add("/tmp/fonts", types.WouldSkip(types.NewFontFile("/tmp/fonts/Old.ttf"), "already installed (would prompt)"))

	var out bytes.Buffer
	require.NoError(t, report.NewRenderer(&out, report.FormatText).Render(rep))

	got := out.String()
	assert.Contains(t, got, "DRY RUN - FONT PREVIEW")
	assert.Contains(t, got, "📋 New.ttf - would install via shell")
	assert.Contains(t, got, "📋 Old.ttf - would skip: already installed (would prompt)")
	assert.Contains(t, got, "Fonts that would be installed: 1")
	assert.Contains(t, got, "Fonts that would be skipped: 1")
	assert.NotContains(t, got, "Successfully installed")
}

func TestRenderTextEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, report.NewRenderer(&out, report.FormatText).Render(types.NewBatchReport(false)))

	got := out.String()
	assert.Contains(t, got, "No folders with font files were found to process.")
	assert.NotContains(t, got, "Total font files processed")
}

func TestRenderJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, report.NewRenderer(&out, report.FormatJSON).Render(sampleReport()))

	var decoded struct {
		Folders []struct {
			Path  string `json:"path"`
			Files []struct {
				Status string `json:"status"`
			} `json:"files"`
		} `json:"folders"`
		Counters types.Counters `json:"counters"`
		DryRun   bool           `json:"dryRun"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	require.Len(t, decoded.Folders, 2)
	assert.Equal(t, "/tmp/fonts/roboto", decoded.Folders[0].Path)
	assert.Equal(t, "installed", decoded.Folders[0].Files[0].Status)
	assert.Equal(t, 3, decoded.Counters.Processed)
	assert.True(t, decoded.Counters.Consistent())
	assert.False(t, decoded.DryRun)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    report.Format
		wantErr bool
	}{
		{"auto", report.FormatAuto, false},
		{"", report.FormatAuto, false},
		{"term", report.FormatTerminal, false},
		{"text", report.FormatText, false},
		{"json", report.FormatJSON, false},
		{"JSON", report.FormatJSON, false},
		{"yaml", report.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := report.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutoFallsBackToTextForNonFiles(t *testing.T) {
	var out bytes.Buffer
	r := report.NewRenderer(&out, report.FormatAuto)
	require.NoError(t, r.Render(sampleReport()))

	// A bytes.Buffer is not a terminal, so no escape sequences
	assert.NotContains(t, out.String(), "\x1b[")
}
