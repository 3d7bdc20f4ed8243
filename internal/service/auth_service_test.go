package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	"hrflow/internal/model"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, empID string) (*model.Employee, error) {
	args := m.Called(ctx, empID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) List(ctx context.Context, company string) ([]model.Employee, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SetStatus(ctx context.Context, empID, status string) error {
	args := m.Called(ctx, empID, status)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, empID, sessionID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, empID, sessionID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockSessionEnder is a mock implementation of SessionEnder.
type MockSessionEnder struct {
	mock.Mock
}

func (m *MockSessionEnder) End(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		empID         string
		password      string
		setupMock     func(*testing.T, *MockEmployeeRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			empID:    "E100",
			password: "password123",
			setupMock: func(t *testing.T, mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mRepo.On("FindByID", mock.Anything, "E100").Return(&model.Employee{
					EmpID:        "E100",
					Status:       model.EmployeeActive,
					InAppRole:    "Employee",
					PasswordHash: hashed(t, "password123"),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, "E100", mock.Anything, auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "inactive employee can still sign in",
			empID:    "E101",
			password: "pw",
			setupMock: func(t *testing.T, mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mRepo.On("FindByID", mock.Anything, "E101").Return(&model.Employee{
					EmpID:        "E101",
					Status:       model.EmployeeInActive,
					PasswordHash: hashed(t, "pw"),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, "E101", mock.Anything, auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "unknown employee",
			empID:    "E404",
			password: "password123",
			setupMock: func(t *testing.T, mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mRepo.On("FindByID", mock.Anything, "E404").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			empID:    "E100",
			password: "nope",
			setupMock: func(t *testing.T, mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mRepo.On("FindByID", mock.Anything, "E100").Return(&model.Employee{
					EmpID:        "E100",
					PasswordHash: hashed(t, "password123"),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "employee without password",
			empID:    "E102",
			password: "",
			setupMock: func(t *testing.T, mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mRepo.On("FindByID", mock.Anything, "E102").Return(&model.Employee{EmpID: "E102"}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockEmployeeRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(t, mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore, new(MockSessionEnder))

			result, err := service.Login(context.Background(), tt.empID, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
				assert.NotEmpty(t, result.SessionID)
				assert.Equal(t, tt.empID, result.Employee.EmpID)

				claims, err := jwtService.ValidateToken(result.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, result.SessionID, claims.SessionID)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refresh, err := jwtService.GenerateRefreshToken("E100", "sid-1")
	require.NoError(t, err)
	access, err := jwtService.GenerateAccessToken("E100", "sid-1", "Employee")
	require.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockEmployeeRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:          "access token is not a refresh token",
			token:         access,
			setupMock:     func(*MockEmployeeRepository, *MockTokenStore) {},
			expectedError: ErrInvalidRefreshToken,
		},
		{
			name:  "valid refresh",
			token: refresh,
			setupMock: func(mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("E100", "sid-1", nil)
				mRepo.On("FindByID", mock.Anything, "E100").Return(&model.Employee{EmpID: "E100", InAppRole: "HR"}, nil)
			},
		},
		{
			name:  "revoked token",
			token: refresh,
			setupMock: func(mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("", "", auth.ErrRefreshTokenNotFound)
			},
			expectedError: ErrInvalidRefreshToken,
		},
		{
			name:  "session mismatch",
			token: refresh,
			setupMock: func(mRepo *MockEmployeeRepository, mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("E100", "sid-other", nil)
			},
			expectedError: ErrInvalidRefreshToken,
		},
		{
			name:          "garbage token",
			token:         "not-a-jwt",
			setupMock:     func(*MockEmployeeRepository, *MockTokenStore) {},
			expectedError: ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockEmployeeRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore, new(MockSessionEnder))
			access, err := service.RefreshToken(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, access)
			} else {
				require.NoError(t, err)
				claims, err := jwtService.ValidateToken(access)
				require.NoError(t, err)
				assert.Equal(t, "sid-1", claims.SessionID)
				assert.Equal(t, "HR", claims.Role)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refresh, err := jwtService.GenerateRefreshToken("E100", "sid-1")
	require.NoError(t, err)
	access, err := jwtService.GenerateAccessToken("E100", "sid-1", "Employee")
	require.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockTokenStore, *MockSessionEnder)
		expectedError error
	}{
		{
			name:  "ends session",
			token: refresh,
			setupMock: func(mToken *MockTokenStore, mSessions *MockSessionEnder) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("E100", "sid-1", nil)
				mToken.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
				mSessions.On("End", mock.Anything, "sid-1").Return(nil)
			},
		},
		{
			name:  "already revoked",
			token: refresh,
			setupMock: func(mToken *MockTokenStore, mSessions *MockSessionEnder) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("", "", auth.ErrRefreshTokenNotFound)
			},
			expectedError: ErrInvalidRefreshToken,
		},
		{
			name:          "access token rejected",
			token:         access,
			setupMock:     func(*MockTokenStore, *MockSessionEnder) {},
			expectedError: ErrInvalidRefreshToken,
		},
		{
			name:          "garbage token",
			token:         "garbage",
			setupMock:     func(*MockTokenStore, *MockSessionEnder) {},
			expectedError: ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenStore := new(MockTokenStore)
			sessions := new(MockSessionEnder)
			tt.setupMock(mockTokenStore, sessions)

			service := NewAuthService(new(MockEmployeeRepository), jwtService, mockTokenStore, sessions)
			err := service.Logout(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
			}

			mockTokenStore.AssertExpectations(t)
			sessions.AssertExpectations(t)
			if tt.expectedError != nil {
				sessions.AssertNotCalled(t, "End", mock.Anything, mock.Anything)
				mockTokenStore.AssertNotCalled(t, "DeleteRefreshToken", mock.Anything, mock.Anything)
			}
		})
	}
}
