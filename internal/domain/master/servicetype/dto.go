package servicetype

type SaveServiceTypeRequest struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type ServiceTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"is_active"`
}

func ToResponse(s ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ID:       s.ID,
		Name:     s.Name,
		Code:     s.Code,
		IsActive: s.IsActive,
	}
}
