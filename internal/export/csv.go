// Package export writes recorded trajectories to CSV, JSON and SVG.
// Export is the only user-visible failure channel: errors are returned
// for the caller to display, never fatal.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/san-kum/trajlab/internal/phys"
)

// WriteCSV writes every projectile as a block: a header row with its
// launch parameters, a column row, one row per trajectory sample at 5
// decimal places, then a blank separator row. Downstream tooling
// depends on this exact nesting.
func WriteCSV(w io.Writer, projectiles []*phys.Projectile, generated time.Time) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ProjectileSim Export", "Generated " + generated.Format(time.RFC3339)}); err != nil {
		return err
	}
	if err := cw.Write(nil); err != nil {
		return err
	}

	for i, p := range projectiles {
		header := []string{
			fmt.Sprintf("Projectile %d", i+1),
			"angle_deg", formatParam(p.AngleDeg()),
			"speed_m_s", formatParam(p.Speed()),
			"mass_kg", formatParam(p.Mass()),
			"air_resistance", strconv.FormatBool(p.AirResistance()),
			"start_height_m", formatParam(p.StartHeight()),
		}
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.Write([]string{"time_s", "x_m", "y_m"}); err != nil {
			return err
		}
		for _, s := range p.Trajectory() {
			row := []string{
				strconv.FormatFloat(s.T, 'f', 5, 64),
				strconv.FormatFloat(s.X, 'f', 5, 64),
				strconv.FormatFloat(s.Y, 'f', 5, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		if err := cw.Write(nil); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFile writes the CSV export to path.
func ExportCSVFile(path string, projectiles []*phys.Projectile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, projectiles, time.Now())
}

// DefaultFilename returns the timestamped export name, e.g.
// trajectories_20260824_153004.csv.
func DefaultFilename(ext string, t time.Time) string {
	return fmt.Sprintf("trajectories_%s.%s", t.Format("20060102_150405"), ext)
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
