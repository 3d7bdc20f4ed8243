package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	"hrflow/internal/cache"
	"hrflow/internal/flow"
	"hrflow/internal/handler"
	"hrflow/internal/model"
	"hrflow/internal/navigation"
	"hrflow/internal/router"
	"hrflow/internal/service"
	"hrflow/internal/session"
)

const apiKey = "test-api-key"

// memoryEmployeeRepository keeps employees in a map.
type memoryEmployeeRepository struct {
	mu        sync.Mutex
	employees map[string]model.Employee
}

func (r *memoryEmployeeRepository) Create(_ context.Context, employee *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[employee.EmpID] = *employee
	return nil
}

func (r *memoryEmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.Create(ctx, employee)
}

func (r *memoryEmployeeRepository) FindByID(_ context.Context, empID string) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.employees[empID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee, nil
}

func (r *memoryEmployeeRepository) List(_ context.Context, company string) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Employee
	for _, e := range r.employees {
		if company == "" || e.Company == company {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryEmployeeRepository) SetStatus(_ context.Context, empID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.employees[empID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	employee.Status = status
	r.employees[empID] = employee
	return nil
}

type testServer struct {
	e         *echo.Echo
	employees service.EmployeeService
	handoffs  []navigation.Handoff
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := cache.NewMemory()
	repo := &memoryEmployeeRepository{employees: map[string]model.Employee{}}
	jwtService := auth.NewJWTService("test-secret")
	sessions := session.NewManager(store, 0)

	employeeService := service.NewEmployeeService(repo, store)
	authService := service.NewAuthService(repo, jwtService, auth.NewTokenStore(store), sessions)

	ts := &testServer{e: echo.New(), employees: employeeService}
	routing := flow.New(service.NewLocalFetcher(employeeService), flow.HandoffFunc(
		func(_ context.Context, h navigation.Handoff) error {
			ts.handoffs = append(ts.handoffs, h)
			return nil
		},
	), zerolog.Nop())

	router.Register(ts.e, zerolog.Nop(), jwtService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Employee: handler.NewEmployeeHandler(employeeService, apiKey),
		Session:  handler.NewSessionHandler(sessions, routing),
		Seed:     handler.NewSeedHandler(employeeService),
	})

	ctx := context.Background()
	for _, e := range []model.Employee{
		{EmpID: "E100", Name: "Asha", Status: model.EmployeeActive, InAppRole: navigation.RoleEmployee, Company: "acme"},
		{EmpID: "E200", Name: "Vikram", Status: model.EmployeeInActive, InAppRole: navigation.RoleEmployee, Company: "acme"},
		{EmpID: "HR1", Name: "Neha", Status: model.EmployeeActive, InAppRole: navigation.RoleHR, Company: "acme"},
	} {
		employee := e
		_, err := employeeService.CreateEmployee(ctx, &employee, "password1")
		require.NoError(t, err)
	}
	return ts
}

func (ts *testServer) do(method, path, token string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(t *testing.T, empID string) handler.AuthResponse {
	t.Helper()
	rec := ts.do(http.MethodPost, "/api/auth/login", "", `{"emp_id":"`+empID+`","password":"password1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetEmpDetails(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name         string
		path         string
		expectedCode int
	}{
		{name: "valid key", path: "/api/v1/get/getEmpDetails/E100/" + apiKey, expectedCode: http.StatusOK},
		{name: "wrong key", path: "/api/v1/get/getEmpDetails/E100/nope", expectedCode: http.StatusUnauthorized},
		{name: "unknown employee", path: "/api/v1/get/getEmpDetails/E999/" + apiKey, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodGet, tt.path, "", "")
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}

	rec := ts.do(http.MethodGet, "/api/v1/get/getEmpDetails/E100/"+apiKey, "", "")
	body := decode[map[string]map[string]any](t, rec)
	assert.Equal(t, "E100", body["data"]["empId"])
	assert.Equal(t, "Active", body["data"]["status"])
	assert.Equal(t, "Employee", body["data"]["inAppRole"])
	assert.NotContains(t, body["data"], "PasswordHash")
}

func TestSessionRoute_ActiveEmployee(t *testing.T) {
	ts := newTestServer(t)
	tokens := ts.login(t, "E100")

	rec := ts.do(http.MethodPost, "/api/session/route", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	outcome := decode[flow.Outcome](t, rec)
	assert.Equal(t, flow.ActionNavigate, outcome.Action)
	require.NotNil(t, outcome.Target)
	assert.Equal(t, navigation.RouteEmployeeDashboard, outcome.Target.Route)
	assert.Equal(t, map[string]string{"role": "Employee", "id": "E100"}, outcome.Target.Params)
	assert.True(t, outcome.Changed)

	// Second run lands on the same screen without a transition.
	rec = ts.do(http.MethodPost, "/api/session/route", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[flow.Outcome](t, rec).Changed)

	rec = ts.do(http.MethodGet, "/api/session/screen", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, navigation.RouteEmployeeDashboard, decode[navigation.Target](t, rec).Route)

	rec = ts.do(http.MethodGet, "/api/session/profile", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, navigation.UserRecord{
		ID:      "E100",
		Status:  navigation.StatusActive,
		Role:    navigation.RoleEmployee,
		Company: "acme",
	}, decode[navigation.UserRecord](t, rec))
}

func TestSessionRoute_InactiveEmployeeIsQuarantined(t *testing.T) {
	ts := newTestServer(t)
	tokens := ts.login(t, "E200")

	rec := ts.do(http.MethodPost, "/api/session/route", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	outcome := decode[flow.Outcome](t, rec)
	require.NotNil(t, outcome.Target)
	assert.Equal(t, navigation.RouteQuarantine, outcome.Target.Route)
	assert.Empty(t, outcome.Target.Params)
}

func TestSessionRoute_OtherRoleIsHandedOff(t *testing.T) {
	ts := newTestServer(t)
	tokens := ts.login(t, "HR1")

	rec := ts.do(http.MethodPost, "/api/session/route", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	outcome := decode[flow.Outcome](t, rec)
	assert.Equal(t, flow.ActionHandoff, outcome.Action)
	assert.Nil(t, outcome.Target)
	assert.Equal(t, []navigation.Handoff{{ID: "HR1", Company: "acme"}}, ts.handoffs)

	// Profile is stored even though no screen was chosen.
	rec = ts.do(http.MethodGet, "/api/session/profile", tokens.AccessToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(http.MethodGet, "/api/session/screen", tokens.AccessToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionRoute_StatusChangeReroutes(t *testing.T) {
	ts := newTestServer(t)
	tokens := ts.login(t, "E100")

	rec := ts.do(http.MethodPost, "/api/session/route", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, ts.employees.SetStatus(context.Background(), "E100", model.EmployeeInActive))

	rec = ts.do(http.MethodPost, "/api/session/route", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	outcome := decode[flow.Outcome](t, rec)
	assert.Equal(t, navigation.RouteQuarantine, outcome.Target.Route)
	assert.True(t, outcome.Changed)
}

func TestSessionRoute_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/session/route", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodPost, "/api/session/route", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessions_AreIsolated(t *testing.T) {
	ts := newTestServer(t)
	first := ts.login(t, "E100")
	second := ts.login(t, "E100")
	require.NotEqual(t, first.SessionID, second.SessionID)

	rec := ts.do(http.MethodPost, "/api/session/route", first.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/api/session/profile", second.AccessToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogout_ClearsSessionState(t *testing.T) {
	ts := newTestServer(t)
	tokens := ts.login(t, "E100")

	rec := ts.do(http.MethodPost, "/api/session/route", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodPost, "/api/auth/logout", "", `{"refresh_token":"`+tokens.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/session/profile", tokens.AccessToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = ts.do(http.MethodGet, "/api/session/screen", tokens.AccessToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodPost, "/api/auth/refresh", "", `{"refresh_token":"`+tokens.RefreshToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSecuredRoutes_RejectRefreshToken(t *testing.T) {
	ts := newTestServer(t)
	tokens := ts.login(t, "E100")

	rec := ts.do(http.MethodPost, "/api/session/route", tokens.RefreshToken, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodPost, "/api/auth/logout", "", `{"refresh_token":"`+tokens.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// The ended session cannot be rebuilt with the revoked refresh token.
	rec = ts.do(http.MethodPost, "/api/session/route", tokens.RefreshToken, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = ts.do(http.MethodGet, "/api/session/profile", tokens.RefreshToken, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logging out twice with the same token is rejected.
	rec = ts.do(http.MethodPost, "/api/auth/logout", "", `{"refresh_token":"`+tokens.RefreshToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNavigationDecide(t *testing.T) {
	ts := newTestServer(t)
	tokens := ts.login(t, "E100")

	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectedErr  string
	}{
		{name: "employee", body: `{"id":"E1","status":"Active","inAppRole":"Employee"}`, expectedCode: http.StatusOK},
		{name: "missing id", body: `{"status":"Active","inAppRole":"Employee"}`, expectedCode: http.StatusUnprocessableEntity, expectedErr: "INVALID_RECORD"},
		{name: "malformed body", body: `{"id":`, expectedCode: http.StatusBadRequest, expectedErr: "INVALID_BODY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodPost, "/api/navigation/decide", tokens.AccessToken, tt.body)
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decode[map[string]string](t, rec)["code"])
			}
		})
	}

	// Decide never touches the session.
	rec := ts.do(http.MethodGet, "/api/session/screen", tokens.AccessToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeesAdmin_RequiresHR(t *testing.T) {
	ts := newTestServer(t)
	employee := ts.login(t, "E100")
	hr := ts.login(t, "HR1")

	rec := ts.do(http.MethodGet, "/api/employees", employee.AccessToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodGet, "/api/employees?company=acme", hr.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Employee](t, rec), 3)

	rec = ts.do(http.MethodPost, "/api/employees", hr.AccessToken,
		`{"empId":"E300","name":"Ravi","company":"acme","grossSalary":"31000.75","password":"secret12"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Employee](t, rec)
	assert.Equal(t, model.EmployeeActive, created.Status)
	assert.Equal(t, navigation.RoleEmployee, created.InAppRole)
	assert.Equal(t, "31000.75", created.GrossSalary.String())

	rec = ts.do(http.MethodPost, "/api/employees", hr.AccessToken, `{"empId":"E300","name":"Again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodPost, "/api/employees/E300/status", hr.AccessToken, `{"status":"Retired"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/employees/E999/status", hr.AccessToken, `{"status":"InActive"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodPost, "/api/employees/E300/status", hr.AccessToken, `{"status":"InActive"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmployeesSeed(t *testing.T) {
	ts := newTestServer(t)
	hr := ts.login(t, "HR1")
	employee := ts.login(t, "E100")

	body := `[
		{"empId":"E100","name":"Asha R","status":"InActive","inAppRole":"Employee","company":"acme"},
		{"empId":"E400","name":"Kiran","company":"acme","grossSalary":"28000","password":"password1"},
		{"empId":"","name":"No Id"},
		{"empId":"E401","name":"Bad Salary","grossSalary":"lots"},
		{"empId":"E402","name":"Suspended","status":"Suspended"},
		{"empId":"E403","name":"After Bad Row","company":"acme"}
	]`

	rec := ts.do(http.MethodPost, "/api/employees/seed", employee.AccessToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodPost, "/api/employees/seed", hr.AccessToken, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[handler.SeedEmployeesResponse](t, rec)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 3, resp.Skipped)

	rec = ts.do(http.MethodGet, "/api/v1/get/getEmpDetails/E403/"+apiKey, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(http.MethodGet, "/api/v1/get/getEmpDetails/E402/"+apiKey, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The updated status is visible to the next routing run.
	rec = ts.do(http.MethodPost, "/api/session/route", employee.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, navigation.RouteQuarantine, decode[flow.Outcome](t, rec).Target.Route)

	ts.login(t, "E400")
}
