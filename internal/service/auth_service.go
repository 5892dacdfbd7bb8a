package service

import (
	"errors"
	"fmt"
	"time"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/pkg/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("incorrect old password")
)

type AuthService struct {
	adminRepo   *repository.AdminRepository
	studentRepo *repository.StudentRepository
	auditRepo   *repository.AuditRepository
}

func NewAuthService(adminRepo *repository.AdminRepository, studentRepo *repository.StudentRepository, auditRepo *repository.AuditRepository) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		studentRepo: studentRepo,
		auditRepo:   auditRepo,
	}
}

// LoginResponse represents the response structure for admin login
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Admin        AdminResponse `json:"admin"`
}

type AdminResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// StudentLoginResponse represents the response structure for student login
type StudentLoginResponse struct {
	AccessToken string `json:"access_token"`
	ID          uint   `json:"id"`
	RollNo      string `json:"roll_no"`
	Name        string `json:"name"`
}

// AdminLogin authenticates an admin and returns tokens
func (s *AuthService) AdminLogin(username, password string) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindAdminByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(admin.ID, "admin", "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		AdminID:   admin.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.adminRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	adminIDPtr := &admin.ID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "admin_login", fmt.Sprintf("Admin %s logged in", username))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin: AdminResponse{
			ID:       admin.ID,
			Name:     admin.Name,
			Username: admin.Username,
			Email:    admin.Email,
		},
	}, nil
}

// StudentLogin authenticates a student by roll number and returns an access token
func (s *AuthService) StudentLogin(rollNo, password string) (*StudentLoginResponse, error) {
	student, err := s.studentRepo.GetStudentByRollNo(rollNo)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(student.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(student.ID, "student", student.RollNo)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &StudentLoginResponse{
		AccessToken: accessToken,
		ID:          student.ID,
		RollNo:      student.RollNo,
		Name:        student.Name,
	}, nil
}

// ChangeStudentPassword verifies the old password and stores a new hash
func (s *AuthService) ChangeStudentPassword(studentID uint, oldPassword, newPassword string) error {
	student, err := s.studentRepo.GetStudentByID(studentID)
	if err != nil {
		return err
	}

	if !utils.ComparePassword(student.PasswordHash, oldPassword) {
		return ErrIncorrectPassword
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.studentRepo.UpdatePassword(studentID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.adminRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.Admin.ID, "admin", "")
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.adminRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
