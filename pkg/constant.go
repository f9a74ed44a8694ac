package pkg

const (
	// segments at or above this speed limit count as highway mileage for the scenic metric
	HIGHWAY_SPEED_LIMIT = 55

	// hard ceiling on the depth bound of iterative deepening
	IDS_MAX_DEPTH = 10000

	MINUTES_PER_HOUR = 60.0

	// rounding precision of the per-segment travel time (minutes)
	TIME_PRECISION = 2
	// rounding precision of the hours column of the machine-readable summary
	HOURS_PRECISION = 4
)
