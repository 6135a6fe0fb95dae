package export

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/san-kum/trajlab/internal/phys"
)

type ExportData struct {
	Generated   time.Time        `json:"generated"`
	Count       int              `json:"count"`
	Projectiles []ProjectileData `json:"projectiles"`
}

type ProjectileData struct {
	Index         int           `json:"index"`
	AngleDeg      float64       `json:"angle_deg"`
	Speed         float64       `json:"speed_m_s"`
	Mass          float64       `json:"mass_kg"`
	StartHeight   float64       `json:"start_height_m"`
	AirResistance bool          `json:"air_resistance"`
	Landed        bool          `json:"landed"`
	MaxHeight     float64       `json:"max_height_m"`
	FlightTime    float64       `json:"flight_time_s"`
	Range         float64       `json:"range_m"`
	FinalSpeed    float64       `json:"final_speed_m_s"`
	Samples       []phys.Sample `json:"samples"`
}

func WriteJSON(w io.Writer, projectiles []*phys.Projectile, generated time.Time) error {
	data := ExportData{
		Generated:   generated,
		Count:       len(projectiles),
		Projectiles: make([]ProjectileData, len(projectiles)),
	}
	for i, p := range projectiles {
		data.Projectiles[i] = ProjectileData{
			Index:         i + 1,
			AngleDeg:      p.AngleDeg(),
			Speed:         p.Speed(),
			Mass:          p.Mass(),
			StartHeight:   p.StartHeight(),
			AirResistance: p.AirResistance(),
			Landed:        p.Landed(),
			MaxHeight:     p.MaxHeight(),
			FlightTime:    p.FlightTime(),
			Range:         p.Range(),
			FinalSpeed:    p.FinalSpeed(),
			Samples:       p.Trajectory(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONFile(path string, projectiles []*phys.Projectile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, projectiles, time.Now())
}
