package phys

import "math"

// Sample is one recorded trajectory point.
type Sample struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Params are the launch inputs for one projectile. Angle and speed are
// taken as-is (negative or >360 degree angles and backward launches are
// physically valid); mass and height are coerced by Sanitize.
type Params struct {
	AngleDeg      float64
	Speed         float64
	Mass          float64
	Height        float64
	AirResistance bool
}

// Sanitize floors mass above zero and height to ground level. Callers
// run this before construction; the model itself never validates.
func (p Params) Sanitize() Params {
	p.Mass = math.Max(MinMass, p.Mass)
	p.Height = math.Max(0, p.Height)
	return p
}

// Projectile is one simulated body. State mutates only through Step and
// freezes permanently once the body lands.
type Projectile struct {
	cfg Config

	angle    float64 // radians
	angleDeg float64
	v0       float64
	mass     float64
	y0       float64
	air      bool
	area     float64
	color    string

	x, y   float64
	vx, vy float64
	t      float64

	trajectory []Sample
	landed     bool

	maxHeight  float64
	flightTime float64
	rangeX     float64
	finalSpeed float64
}

// NewProjectile constructs a body at x=0, y=params.Height with velocity
// decomposed from the launch angle. The cross-sectional area comes from
// treating the mass as a unit-density sphere; a degenerate volume falls
// back to FallbackArea instead of failing construction.
func NewProjectile(params Params, cfg Config, color string) *Projectile {
	angle := params.AngleDeg * math.Pi / 180.0

	p := &Projectile{
		cfg:       cfg,
		angle:     angle,
		angleDeg:  params.AngleDeg,
		v0:        params.Speed,
		mass:      params.Mass,
		y0:        params.Height,
		air:       params.AirResistance,
		color:     color,
		vx:        params.Speed * math.Cos(angle),
		vy:        params.Speed * math.Sin(angle),
		y:         params.Height,
		maxHeight: params.Height,
	}
	p.trajectory = append(p.trajectory, Sample{T: 0, X: 0, Y: p.y0})

	volume := p.mass / 1000.0
	if volume <= 0 {
		p.area = FallbackArea
	} else {
		radius := math.Cbrt(3 * volume / (4 * math.Pi))
		p.area = math.Pi * radius * radius
	}

	return p
}

// Step advances the state by one fixed interval, or does nothing if the
// body has landed. Velocity is integrated before position; the ordering
// matters for numerical fidelity and must not be swapped.
func (p *Projectile) Step() {
	if p.landed {
		return
	}

	dt := p.cfg.Dt
	v := math.Hypot(p.vx, p.vy)

	ax, ay := 0.0, -p.cfg.Gravity
	if p.air && v > 0 {
		drag := 0.5 * p.cfg.AirDensity * p.cfg.DragCoeff * p.area * v * v
		ax = -(drag * (p.vx / v)) / p.mass
		ay = -(drag*(p.vy/v))/p.mass - p.cfg.Gravity
	}

	p.vx += ax * dt
	p.vy += ay * dt
	p.x += p.vx * dt
	p.y += p.vy * dt
	p.t += dt

	p.trajectory = append(p.trajectory, Sample{T: p.t, X: p.x, Y: p.y})

	if p.y > p.maxHeight {
		p.maxHeight = p.y
	}

	if p.y <= 0 {
		p.land()
	}
}

// land interpolates the exact ground crossing between the last two
// samples and freezes the body. The final speed deliberately stays the
// uninterpolated last-step velocity magnitude; at small dt the error is
// negligible.
func (p *Projectile) land() {
	n := len(p.trajectory)
	s1, s2 := p.trajectory[n-2], p.trajectory[n-1]

	frac := 0.0
	if s2.Y != s1.Y {
		frac = (0 - s1.Y) / (s2.Y - s1.Y)
	}
	frac = clamp(frac, 0, 1)

	tLand := s1.T + frac*(s2.T-s1.T)
	xLand := s1.X + frac*(s2.X-s1.X)

	p.flightTime = tLand
	p.rangeX = xLand
	p.finalSpeed = math.Hypot(p.vx, p.vy)
	p.landed = true

	// Pin the recorded path to the ground exactly.
	p.trajectory[n-1] = Sample{T: tLand, X: xLand, Y: 0.0}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Trajectory returns the recorded samples. The slice is append-only and
// shared; callers must not modify it.
func (p *Projectile) Trajectory() []Sample { return p.trajectory }

func (p *Projectile) Landed() bool   { return p.landed }
func (p *Projectile) Color() string  { return p.color }
func (p *Projectile) Area() float64  { return p.area }
func (p *Projectile) Mass() float64  { return p.mass }
func (p *Projectile) Speed() float64 { return p.v0 }
func (p *Projectile) Time() float64  { return p.t }

func (p *Projectile) AngleDeg() float64    { return p.angleDeg }
func (p *Projectile) StartHeight() float64 { return p.y0 }
func (p *Projectile) AirResistance() bool  { return p.air }

// Position returns the current (x, y).
func (p *Projectile) Position() (float64, float64) { return p.x, p.y }

// Velocity returns the current (vx, vy).
func (p *Projectile) Velocity() (float64, float64) { return p.vx, p.vy }

// MaxHeight is the running maximum y, valid whether or not the body has
// landed yet.
func (p *Projectile) MaxHeight() float64 { return p.maxHeight }

// FlightTime, Range and FinalSpeed hold zero until landing occurs.
func (p *Projectile) FlightTime() float64 { return p.flightTime }
func (p *Projectile) Range() float64      { return p.rangeX }
func (p *Projectile) FinalSpeed() float64 { return p.finalSpeed }
