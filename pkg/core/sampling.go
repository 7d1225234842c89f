package core

import (
	"math"
	"math/rand"
)

const twoPi = 2 * math.Pi

// RandomUnitVector generates a random direction on the unit sphere by
// drawing two independent angles in [0, 2π) and mapping them through
// spherical coordinates. The distribution is denser near the poles than
// a uniform sphere sample; this sampler is kept as-is because the
// renderer's output is calibrated against it.
func RandomUnitVector(random *rand.Rand) Vec3 {
	alpha := random.Float64() * twoPi
	beta := random.Float64() * twoPi
	return Vec3{
		X: math.Sin(alpha) * math.Cos(beta),
		Y: math.Sin(alpha) * math.Sin(beta),
		Z: math.Cos(alpha),
	}
}

// RandomVec3 returns a vector with each component drawn uniformly from [0, 1).
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{
		X: random.Float64(),
		Y: random.Float64(),
		Z: random.Float64(),
	}
}

// RandomVec3Range returns a vector with each component drawn uniformly
// from [minVal, maxVal).
func RandomVec3Range(random *rand.Rand, minVal, maxVal float64) Vec3 {
	span := maxVal - minVal
	return Vec3{
		X: minVal + span*random.Float64(),
		Y: minVal + span*random.Float64(),
		Z: minVal + span*random.Float64(),
	}
}
