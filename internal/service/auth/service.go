package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
)

type ServiceImpl struct {
	staffRepo staff.Repository
	jwt       jwt.Service
}

func NewService(staffRepo staff.Repository, jwtService jwt.Service) auth.Service {
	return &ServiceImpl{staffRepo: staffRepo, jwt: jwtService}
}

// Login implements auth.Service. Unknown emails and wrong passwords
// return the same error so the response does not leak which emails are
// registered.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	member, err := s.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("fetch staff: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !member.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(member.ID, member.Email, member.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		StaffID:     member.ID,
		FullName:    member.FullName,
		IsAdmin:     member.IsAdmin,
	}, nil
}
