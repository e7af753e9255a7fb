package activity

type UpsertActivityRequest struct {
	StaffID   string  `json:"staff_id"`
	ServiceID string  `json:"service_id"`
	Date      string  `json:"date"`
	Delivered int     `json:"delivered"`
	Notes     *string `json:"notes,omitempty"`
}

type ActivityResponse struct {
	ID          string  `json:"id"`
	StaffID     string  `json:"staff_id"`
	StaffName   *string `json:"staff_name,omitempty"`
	ServiceID   string  `json:"service_id"`
	ServiceName *string `json:"service_name,omitempty"`
	Date        string  `json:"date"`
	Delivered   int     `json:"delivered"`
	Notes       *string `json:"notes,omitempty"`
}

func ToResponse(a DailyActivity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		StaffID:     a.StaffID,
		StaffName:   a.StaffName,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		Date:        a.Date.Format("2006-01-02"),
		Delivered:   a.Delivered,
		Notes:       a.Notes,
	}
}
