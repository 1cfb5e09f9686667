package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fitreport/internal/ingest"
)

func TestSamplePackages(t *testing.T) {
	pkgs := ingest.SamplePackages()
	require.Len(t, pkgs, 3)

	assert.Equal(t, "SWM", pkgs[0].Type)
	assert.Equal(t, []float64{720, 1, 80, 25, 40}, pkgs[0].Data)
	assert.Equal(t, "RUN", pkgs[1].Type)
	assert.Equal(t, []float64{15000, 1, 75}, pkgs[1].Data)
	assert.Equal(t, "WLK", pkgs[2].Type)
	assert.Equal(t, []float64{9000, 1, 75, 180}, pkgs[2].Data)

	// Callers get a fresh slice each time.
	pkgs[0].Data[0] = 1
	assert.InDelta(t, 720.0, ingest.SamplePackages()[0].Data[0], 0)
}

func TestParsePackagesYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []ingest.Package
		wantErr string
	}{
		{
			name: "packages mapping",
			content: `packages:
  - type: SWM
    data: [720, 1, 80, 25, 40]
  - type: RUN
    data: [15000, 1, 75]
`,
			want: []ingest.Package{
				{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}, Source: "in.yaml#1"},
				{Type: "RUN", Data: []float64{15000, 1, 75}, Source: "in.yaml#2"},
			},
		},
		{
			name:    "bare list",
			content: "- {type: WLK, data: [9000, 1, 75, 180]}\n",
			want: []ingest.Package{
				{Type: "WLK", Data: []float64{9000, 1, 75, 180}, Source: "in.yaml#1"},
			},
		},
		{
			name:    "json document",
			content: `{"packages": [{"type": "RUN", "data": [5000, 0.5, 60]}]}`,
			want: []ingest.Package{
				{Type: "RUN", Data: []float64{5000, 0.5, 60}, Source: "in.yaml#1"},
			},
		},
		{
			name:    "empty document",
			content: "",
			want:    nil,
		},
		{
			name:    "missing tag",
			content: "- data: [1, 2, 3]\n",
			wantErr: "no workout tag",
		},
		{
			name:    "scalar root",
			content: "just a string\n",
			wantErr: "expected a list",
		},
		{
			name:    "non-numeric data",
			content: "- {type: RUN, data: [a, b, c]}\n",
			wantErr: "in.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ingest.ParsePackagesYAML(context.Background(), []byte(tt.content), "in.yaml")
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

func TestParsePackagesText(t *testing.T) {
	input := `# morning session
SWM 720 1 80 25 40

RUN,15000,1,75
  WLK 9000, 1, 75, 180
`
	got, err := ingest.ParsePackagesText(context.Background(), strings.NewReader(input), "day.txt")
	require.NoError(t, err)

	want := []ingest.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}, Source: "day.txt:2"},
		{Type: "RUN", Data: []float64{15000, 1, 75}, Source: "day.txt:4"},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}, Source: "day.txt:5"},
	}
	assert.Equal(t, want, got)
}

func TestParsePackagesText_Errors(t *testing.T) {
	_, err := ingest.ParsePackagesText(context.Background(), strings.NewReader("RUN 1 2 3\nRUN 1 two 3\n"), "bad.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt:2")
	assert.Contains(t, err.Error(), `"two"`)
}

func TestParseFields(t *testing.T) {
	pkg, err := ingest.ParseFields([]string{"RUN", "15000", "1", "75"})
	require.NoError(t, err)
	assert.Equal(t, "RUN", pkg.Type)
	assert.Equal(t, []float64{15000, 1, 75}, pkg.Data)
	assert.Equal(t, "RUN [15000 1 75]", pkg.String())

	pkg, err = ingest.ParseFields([]string{"XYZ"})
	require.NoError(t, err)
	assert.Empty(t, pkg.Data)

	_, err = ingest.ParseFields(nil)
	require.ErrorIs(t, err, ingest.ErrNoTag)
}

func TestLoadPackages(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml by extension", func(t *testing.T) {
		path := filepath.Join(dir, "week.yml")
		require.NoError(t, os.WriteFile(path, []byte("packages:\n  - type: RUN\n    data: [1000, 1, 70]\n"), 0o600))

		got, err := ingest.LoadPackages(context.Background(), path, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "week.yml#1", got[0].Source)
	})

	t.Run("text otherwise", func(t *testing.T) {
		path := filepath.Join(dir, "week.log")
		require.NoError(t, os.WriteFile(path, []byte("RUN 1000 1 70\n"), 0o600))

		got, err := ingest.LoadPackages(context.Background(), path, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "week.log:1", got[0].Source)
	})

	t.Run("stdin", func(t *testing.T) {
		got, err := ingest.LoadPackages(context.Background(), ingest.StdinPath, strings.NewReader("WLK 9000 1 75 180\n"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "stdin:1", got[0].Source)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ingest.LoadPackages(context.Background(), filepath.Join(dir, "absent.txt"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading package file")
	})
}

func TestIsStructured(t *testing.T) {
	assert.True(t, ingest.IsStructured("a.yaml"))
	assert.True(t, ingest.IsStructured("a.YML"))
	assert.True(t, ingest.IsStructured("a.json"))
	assert.False(t, ingest.IsStructured("a.txt"))
	assert.False(t, ingest.IsStructured("-"))
}
