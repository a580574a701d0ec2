package kinematics

import "math"

// Momentum returns √(E² − m²). Energies below the rest mass are Invalid.
func Momentum(e, m float64) Quantity {
	if e < m {
		return Invalid
	}
	return Valid(math.Sqrt(e*e - m*m))
}

// energyFromKE adds the rest mass to a non-negative kinetic energy.
func energyFromKE(m float64) func(float64) Quantity {
	return func(ke float64) Quantity {
		if ke < 0 {
			return Invalid
		}
		return Valid(ke + m)
	}
}

// kineticEnergy subtracts the rest mass from a total energy.
func kineticEnergy(m float64) func(float64) Quantity {
	return func(e float64) Quantity { return nonNegative(e - m) }
}
