package workoutlog

import "time"

// WorkoutRecord is one logged set-logging event: a client performed an
// exercise with the given sets/reps/weight on a date. Records are never
// updated after insert.
type WorkoutRecord struct {
	ID       int     `json:"id"`
	Client   string  `json:"client"`
	Date     string  `json:"date"` // free-form, normally YYYY-MM-DD
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	// CreatedAt is the insert timestamp, independent of the user-provided Date
	CreatedAt time.Time `json:"createdAt"`
}

// Volume is the training-load proxy for a single record: sets * reps * weight.
func (r WorkoutRecord) Volume() float64 {
	return float64(r.Sets) * float64(r.Reps) * r.Weight
}
