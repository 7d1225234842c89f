package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomUnitVector_IsUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		if length := v.Length(); math.Abs(length-1) > 1e-9 {
			t.Fatalf("Sample %d has length %g, expected 1", i, length)
		}
	}
}

func TestRandomVec3Range_StaysInRange(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomVec3Range(random, 0.5, 1.0)
		for _, component := range []float64{v.X, v.Y, v.Z} {
			if component < 0.5 || component >= 1.0 {
				t.Fatalf("Sample %d component %g outside [0.5, 1.0)", i, component)
			}
		}
	}
}

func TestRandomVec3_StaysInUnitCube(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomVec3(random)
		for _, component := range []float64{v.X, v.Y, v.Z} {
			if component < 0 || component >= 1 {
				t.Fatalf("Sample %d component %g outside [0, 1)", i, component)
			}
		}
	}
}
