package analytics

import "github.com/shopspring/decimal"

// RunRateResponse compares the pace needed to hit a monthly target
// against the pace delivered so far.
type RunRateResponse struct {
	StaffID   string `json:"staff_id"`
	ServiceID string `json:"service_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`

	Target           int `json:"target"`
	Delivered        int `json:"delivered"`
	WorkingDays      int `json:"working_days"`
	WorkingDaysSoFar int `json:"working_days_so_far"`

	// RequiredPerDay is (target - delivered) / remaining working days.
	RequiredPerDay decimal.Decimal `json:"required_per_day"`
	// CurrentPerDay is delivered / elapsed working days.
	CurrentPerDay decimal.Decimal `json:"current_per_day"`

	OnTrack  bool `json:"on_track"`
	Fallback bool `json:"fallback,omitempty"`
}

// ConsistencyResponse reports the share of elapsed working days on
// which the staff member recorded at least one delivery.
type ConsistencyResponse struct {
	StaffID string `json:"staff_id"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`

	WorkingDaysSoFar int             `json:"working_days_so_far"`
	ActiveDays       int             `json:"active_days"`
	Percentage       decimal.Decimal `json:"percentage"`
	Fallback         bool            `json:"fallback,omitempty"`
}

// BagelStreakResponse reports zero-delivery working-day streaks. A
// "bagel day" is a working day with nothing recorded.
type BagelStreakResponse struct {
	StaffID string `json:"staff_id"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`

	BagelDays     int  `json:"bagel_days"`
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
	Fallback      bool `json:"fallback,omitempty"`
}
