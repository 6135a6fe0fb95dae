package phys

const (
	DefaultGravity    = 9.81  // m/s^2
	DefaultAirDensity = 1.225 // kg/m^3 at sea level
	DefaultDragCoeff  = 0.47  // sphere approximation
	DefaultDt         = 0.01  // s

	// MinMass is the floor callers coerce mass to before construction.
	MinMass = 0.0001

	// FallbackArea is substituted when the cross-section derivation
	// degenerates (non-positive volume).
	FallbackArea = 0.01
)

// Config holds the physical constants for one simulation. Values are
// fixed once a projectile is constructed with them.
type Config struct {
	Gravity    float64
	AirDensity float64
	DragCoeff  float64
	Dt         float64
}

func DefaultConfig() Config {
	return Config{
		Gravity:    DefaultGravity,
		AirDensity: DefaultAirDensity,
		DragCoeff:  DefaultDragCoeff,
		Dt:         DefaultDt,
	}
}
