package leave

type SaveLeaveRequest struct {
	ID        string `json:"-"`
	StaffID   string `json:"staff_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
}

type LeaveResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	StaffName *string `json:"staff_name,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type"`
}

func ToResponse(l StaffLeave) LeaveResponse {
	return LeaveResponse{
		ID:        l.ID,
		StaffID:   l.StaffID,
		StaffName: l.StaffName,
		StartDate: l.StartDate.Format("2006-01-02"),
		EndDate:   l.EndDate.Format("2006-01-02"),
		Type:      string(l.Type),
	}
}
