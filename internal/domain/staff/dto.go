package staff

type CreateStaffRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	HomeRegion string `json:"home_region,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
}

type UpdateStaffRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	HomeRegion *string `json:"home_region,omitempty"`
	IsAdmin    *bool   `json:"is_admin,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type StaffResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	HomeRegion string `json:"home_region"`
	IsAdmin    bool   `json:"is_admin"`
	IsActive   bool   `json:"is_active"`
}

func ToResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:         s.ID,
		FullName:   s.FullName,
		Email:      s.Email,
		HomeRegion: string(s.Region()),
		IsAdmin:    s.IsAdmin,
		IsActive:   s.IsActive,
	}
}
