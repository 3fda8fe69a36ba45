package domain

const kcalToKJ = 4.184

// ConvertEnergy converts an energy value between "kcal" and "kJ".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertEnergy(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == "kcal" && to == "kJ" {
		return v * kcalToKJ
	}
	if from == "kJ" && to == "kcal" {
		return v / kcalToKJ
	}
	return v
}
