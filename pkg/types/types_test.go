// Test Type: Unit Test
// Description: Tests the core data model: font files, outcomes, results

package types_test

import (
	"path/filepath"
	"testing"

	"github.com/LiteObject/WindowsUtils/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestIsFontFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{"ttf", "Roboto-Regular.ttf", true},
		{"otf", "Lato.otf", true},
		{"ttc", "Meiryo.ttc", true},
		{"fon", "vga.fon", true},
		{"fnt", "terminal.fnt", true},
		{"uppercase_ttf", "ROBOTO.TTF", true},
		{"mixed_case", "Lato.OtF", true},
		{"woff_not_recognized", "web.woff", false},
		{"text_file", "readme.txt", false},
		{"no_extension", "fontfile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.IsFontFile(tt.file))
		})
	}
}

func TestNewFontFile(t *testing.T) {
	path := filepath.Join("/fonts", "roboto", "Roboto-Bold.TTF")
	f := types.NewFontFile(path)

	assert.Equal(t, path, f.Path)
	assert.Equal(t, "Roboto-Bold.TTF", f.Name)
	assert.Equal(t, ".ttf", f.Ext)
	assert.Equal(t, "Roboto-Bold", f.Stem())
	assert.Equal(t, filepath.Join("/fonts", "roboto"), f.Folder())
}

func TestOutcomeConstructors(t *testing.T) {
	assert.True(t, types.Succeeded().OK())
	assert.False(t, types.Recoverable("busy").OK())
	assert.False(t, types.Fatal("no privilege").OK())
	assert.Equal(t, "busy", types.Recoverable("busy").Reason)
	assert.Equal(t, types.FatalFailure, types.Fatal("no privilege").Kind)
}

func TestAttemptString(t *testing.T) {
	a := types.InstallationAttempt{Strategy: "shell", Outcome: types.Recoverable("powershell unavailable")}
	assert.Equal(t, "shell: powershell unavailable", a.String())

	ok := types.InstallationAttempt{Strategy: "copy", Outcome: types.Succeeded()}
	assert.Equal(t, "copy: success", ok.String())
}

func TestFileResultFailureReason(t *testing.T) {
	f := types.NewFontFile("/fonts/corrupted.ttf")
	res := types.Failed(f, []types.InstallationAttempt{
		{Strategy: "shell", Outcome: types.Recoverable("copy rejected")},
		{Strategy: "direct", Outcome: types.Fatal("access denied")},
	})

	assert.Equal(t, types.StatusFailed, res.Status)
	assert.Equal(t, "shell: copy rejected; direct: access denied", res.FailureReason())
	assert.Empty(t, types.Installed(f, "shell").FailureReason())
}

func TestParseOverwritePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OverwritePolicy
		wantErr bool
	}{
		{"yes", types.OverwriteYes, false},
		{"no", types.OverwriteNo, false},
		{"ask", types.OverwriteAsk, false},
		{"ASK", types.OverwriteAsk, false},
		{"", types.OverwriteAsk, false},
		{"maybe", types.OverwriteAsk, true},
	}

	for _, tt := range tests {
		t.Run("policy_"+tt.in, func(t *testing.T) {
			got, err := types.ParseOverwritePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
