package phys

import "testing"

func BenchmarkStepDrag(b *testing.B) {
	p := NewProjectile(Params{AngleDeg: 45, Speed: 25, Mass: 1, AirResistance: true}, DefaultConfig(), "")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Step()
		if p.Landed() {
			b.StopTimer()
			p = NewProjectile(Params{AngleDeg: 45, Speed: 25, Mass: 1, AirResistance: true}, DefaultConfig(), "")
			b.StartTimer()
		}
	}
}

func BenchmarkStepVacuum(b *testing.B) {
	p := NewProjectile(Params{AngleDeg: 45, Speed: 25, Mass: 1}, DefaultConfig(), "")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Step()
		if p.Landed() {
			b.StopTimer()
			p = NewProjectile(Params{AngleDeg: 45, Speed: 25, Mass: 1}, DefaultConfig(), "")
			b.StartTimer()
		}
	}
}
