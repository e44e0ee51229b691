package marker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Row
		wantErr string
	}{
		{
			name:  "two columns",
			input: "sY14\tpresent\nsY84\tabsent\n",
			want: []Row{
				{Name: "sY14", Status: "present", Line: 1},
				{Name: "sY84", Status: "absent", Line: 2},
			},
		},
		{
			name:  "blank lines skipped",
			input: "sY14\tpresent\n\nsY84\tabsent\n",
			want: []Row{
				{Name: "sY14", Status: "present", Line: 1},
				{Name: "sY84", Status: "absent", Line: 3},
			},
		},
		{
			name:  "extra columns ignored",
			input: "sY14\tpresent\tcomment\n",
			want:  []Row{{Name: "sY14", Status: "present", Line: 1}},
		},
		{
			name:    "single column",
			input:   "sY14\n",
			wantErr: "expected two tab-separated columns",
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: "empty marker file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readRows(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.tsv")
	require.NoError(t, os.WriteFile(path, []byte("marker\tstatus\nsY14\tpresent\n"), 0o644))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "sY14", rows[1].Name)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
