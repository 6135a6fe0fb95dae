// Package phys implements the projectile motion model: drag-aware
// forward-Euler integration of a single launched body, trajectory
// recording, and landing detection via linear interpolation.
//
// All physical constants live in [Config], which is fixed at
// construction time so independent simulations can run side by side
// with different parameters:
//
//	p := phys.NewProjectile(params, phys.DefaultConfig(), "#78c8ff")
//	for !p.Landed() {
//	    p.Step()
//	}
//
// Degenerate inputs (zero mass, zero volume, zero velocity) are
// absorbed with fallback values rather than surfaced as errors.
package phys
