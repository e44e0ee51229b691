package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sY116Guideline reproduces the pre-2023 discrimination rule, which keyed the
// AZFbc subtype on sY116 alone.
const sY116Guideline = `
revision: "EAA/EMQN 2013 (sY116)"
azfbc:
  p5_distal_p1:
    - marker: sY116
      status: absent
  p4_distal_p1:
    - marker: sY116
      status: present
`

func writeGuideline(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guideline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultGuideline(t *testing.T) {
	g := DefaultGuideline()
	assert.Equal(t, "EAA/EMQN 2023", g.Revision)
	require.NoError(t, g.validate())
}

func TestLoadGuideline(t *testing.T) {
	g, err := LoadGuideline(writeGuideline(t, sY116Guideline))
	require.NoError(t, err)
	assert.Equal(t, "EAA/EMQN 2013 (sY116)", g.Revision)
	require.Len(t, g.AZFbc.P5DistalP1, 1)
	assert.Equal(t, "sY116", g.AZFbc.P5DistalP1[0].Marker)
}

func TestLoadGuideline_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown marker",
			content: "azfbc:\n  p5_distal_p1:\n    - {marker: sY9999, status: absent}\n  p4_distal_p1:\n    - {marker: sY121, status: present}\n",
			wantErr: "unrecognized marker",
		},
		{
			name:    "bad status",
			content: "azfbc:\n  p5_distal_p1:\n    - {marker: sY105, status: maybe}\n  p4_distal_p1:\n    - {marker: sY121, status: present}\n",
			wantErr: "status must be present or absent",
		},
		{
			name:    "empty conditions",
			content: "azfbc: {}\n",
			wantErr: "must not be empty",
		},
		{
			name:    "not yaml",
			content: "\tmarker: [",
			wantErr: "parse guideline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGuideline(writeGuideline(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadGuideline_MissingFile(t *testing.T) {
	_, err := LoadGuideline(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestClassify_SY116GuidelineOverride(t *testing.T) {
	g, err := LoadGuideline(writeGuideline(t, sY116Guideline))
	require.NoError(t, err)
	c := New(g)

	base := normal()
	for _, m := range []string{"sY127", "sY134", "sY254", "sY255"} {
		base[m] = "absent"
	}

	t.Run("sY116 absent is P5/distal P1", func(t *testing.T) {
		calls := cloneCalls(base)
		calls["sY116"] = "absent"
		res, err := c.Classify(panelOf(t, calls))
		require.NoError(t, err)
		assert.Equal(t, CompleteAZFbcP5P1, res.Label)
	})

	t.Run("sY116 present is P4/distal P1", func(t *testing.T) {
		calls := cloneCalls(base)
		calls["sY116"] = "present"
		res, err := c.Classify(panelOf(t, calls))
		require.NoError(t, err)
		assert.Equal(t, CompleteAZFbcP4P1, res.Label)
	})

	t.Run("sY116 untested is undetermined", func(t *testing.T) {
		res, err := c.Classify(panelOf(t, base))
		require.NoError(t, err)
		assert.Equal(t, AZFbcUndetermined, res.Label)
	})
}
