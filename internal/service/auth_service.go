package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"hrflow/internal/auth"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when employee id or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid employee id or password")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// SessionEnder tears down per-session state at logout.
type SessionEnder interface {
	End(ctx context.Context, sessionID string) error
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	Employee     *model.Employee
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, empID, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	employeeRepo repository.EmployeeRepository
	jwtService   *auth.JWTService
	tokenStore   auth.TokenStoreInterface
	sessions     SessionEnder
}

// NewAuthService creates a new authentication service.
func NewAuthService(employeeRepo repository.EmployeeRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, sessions SessionEnder) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		sessions:     sessions,
	}
}

// Login authenticates an employee and opens a new session. Inactive employees
// may sign in; routing decides where they land.
func (s *authService) Login(ctx context.Context, empID, password string) (*LoginResult, error) {
	employee, err := s.employeeRepo.FindByID(ctx, empID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if employee.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := auth.NewSessionID()
	accessToken, err := s.jwtService.GenerateAccessToken(employee.EmpID, sessionID, employee.InAppRole)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(employee.EmpID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, employee.EmpID, sessionID, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
		Employee:     employee,
	}, nil
}

// RefreshToken validates a refresh token and returns a new access token for
// the same session.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.storedRefreshClaims(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	role := ""
	if employee, err := s.employeeRepo.FindByID(ctx, claims.EmpID); err == nil {
		role = employee.InAppRole
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.EmpID, claims.SessionID, role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates the refresh token and clears the session state.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.storedRefreshClaims(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	if err := s.sessions.End(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// storedRefreshClaims accepts only refresh tokens that are still in the token
// store for the same employee and session.
func (s *authService) storedRefreshClaims(ctx context.Context, refreshToken string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	storedEmpID, storedSessionID, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if storedEmpID != claims.EmpID || storedSessionID != claims.SessionID {
		return nil, ErrInvalidRefreshToken
	}
	return claims, nil
}
