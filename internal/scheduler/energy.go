package scheduler

// energyCurve is a fixed estimate of available energy (0..100) per hour of day.
var energyCurve = [24]int{
	10, 5, 5, 5, 5, 15, // 00-05
	35, 55, 70, 85, 90, 85, // 06-11
	70, 60, 55, 65, 70, 65, // 12-17
	55, 50, 40, 30, 20, 15, // 18-23
}

// EnergyAt returns the estimated energy level for an hour of day.
func EnergyAt(hour int) int {
	if hour < 0 || hour > 23 {
		return 0
	}
	return energyCurve[hour]
}
