package app

import "time"

// SetClock replaces the time and ID sources for tests.
func (s *NutritionService) SetClock(now func() time.Time, newID func() string) {
	s.now = now
	s.newID = newID
}
