package target

type SaveAnnualTargetRequest struct {
	StaffID   string `json:"staff_id"`
	ServiceID string `json:"service_id"`
	// Year is the financial-year start year.
	Year  int `json:"year"`
	Value int `json:"value"`
	// Overrides are manually fixed month values, keyed by calendar
	// month number ("1".."12"). February and March entries are ignored.
	Overrides map[string]int `json:"overrides,omitempty"`
}

type SaveMonthlyTargetRequest struct {
	StaffID   string `json:"staff_id"`
	ServiceID string `json:"service_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Value     int    `json:"value"`
}

type AnnualTargetResponse struct {
	StaffID   string      `json:"staff_id"`
	ServiceID string      `json:"service_id"`
	Year      int         `json:"year"`
	Value     int         `json:"value"`
	Months    map[int]int `json:"months"`
}

type MonthlyTargetResponse struct {
	StaffID   string `json:"staff_id"`
	ServiceID string `json:"service_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Value     int    `json:"value"`
}
