package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/trajlab/internal/phys"
)

func landedProjectile(t *testing.T) *phys.Projectile {
	t.Helper()
	p := phys.NewProjectile(phys.Params{AngleDeg: 45, Speed: 20, Mass: 1}.Sanitize(), phys.DefaultConfig(), "#ff7878")
	for i := 0; i < 100_000 && !p.Landed(); i++ {
		p.Step()
	}
	require.True(t, p.Landed())
	return p
}

func TestWriteCSVLayout(t *testing.T) {
	p := landedProjectile(t)
	generated := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*phys.Projectile{p}, generated))

	lines := strings.Split(buf.String(), "\n")

	// Preamble, blank, projectile header, column header.
	require.Contains(t, lines[0], "ProjectileSim Export")
	require.Contains(t, lines[0], "2026-08-24T12:00:00Z")
	require.Equal(t, "", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "Projectile 1,angle_deg,45,speed_m_s,20,mass_kg,1,air_resistance,false,start_height_m,0"))
	require.Equal(t, "time_s,x_m,y_m", lines[3])

	// First sample is the seed, then one row per step, then a blank
	// separator and the trailing newline split artifact.
	require.Equal(t, "0.00000,0.00000,0.00000", lines[4])
	samples := len(p.Trajectory())
	require.Equal(t, "", lines[4+samples])

	// Every sample row has 3 fields at 5 decimals.
	for _, line := range lines[4 : 4+samples] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 3)
		for _, f := range fields {
			dot := strings.Index(f, ".")
			require.Greater(t, dot, -1)
			require.Len(t, f[dot+1:], 5)
		}
	}
}

func TestWriteCSVMultipleBlocks(t *testing.T) {
	p1 := landedProjectile(t)
	p2 := landedProjectile(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*phys.Projectile{p1, p2}, time.Now()))

	out := buf.String()
	require.Contains(t, out, "Projectile 1,")
	require.Contains(t, out, "Projectile 2,")
	require.Equal(t, 2, strings.Count(out, "time_s,x_m,y_m"))
}

func TestWriteCSVLandedRowTouchesGround(t *testing.T) {
	p := landedProjectile(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*phys.Projectile{p}, time.Now()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Last non-blank row is the final sample; y must be exactly zero.
	last := lines[len(lines)-1]
	fields := strings.Split(last, ",")
	require.Len(t, fields, 3)
	require.Equal(t, "0.00000", fields[2])
}

func TestExportCSVFile(t *testing.T) {
	p := landedProjectile(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, ExportCSVFile(path, []*phys.Projectile{p}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Projectile 1,")
}

func TestExportCSVFileBadPath(t *testing.T) {
	err := ExportCSVFile("/nonexistent/dir/out.csv", nil)
	require.Error(t, err)
}

func TestDefaultFilename(t *testing.T) {
	ts := time.Date(2026, 8, 24, 15, 30, 4, 0, time.UTC)
	require.Equal(t, "trajectories_20260824_153004.csv", DefaultFilename("csv", ts))
	require.Equal(t, "trajectories_20260824_153004.svg", DefaultFilename("svg", ts))
}
