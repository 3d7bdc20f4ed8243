package navigation

import "errors"

// Status is the employment/account status of an employee.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInActive Status = "InActive"
)

// Known in-app roles. Role is an open set; only RoleEmployee drives a route here.
const (
	RoleEmployee                 = "Employee"
	RoleExecutive                = "Executive"
	RoleHOD                      = "HOD"
	RoleHR                       = "HR"
	RoleFinance                  = "Finance"
	RoleBranchHead               = "Branch Head"
	RoleSeniorOperationExecutive = "Senior Operation Executive"
	RoleOperationExecutive       = "Operation Executive"
)

// Route names understood by the mobile client.
const (
	RouteQuarantine        = "quarantine"
	RouteEmployeeDashboard = "employee-dashboard"
)

// ErrInvalidRecord is returned when a record has no employee id.
var ErrInvalidRecord = errors.New("invalid record: employee id is required")

// UserRecord is the slice of a fetched employee profile used for routing.
type UserRecord struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Role    string `json:"inAppRole"`
	Company string `json:"company,omitempty"`
}

// Target is a screen plus its string parameters.
type Target struct {
	Route  string            `json:"route"`
	Params map[string]string `json:"params"`
}

// Equal reports whether two targets name the same route with the same params.
func (t Target) Equal(o Target) bool {
	if t.Route != o.Route || len(t.Params) != len(o.Params) {
		return false
	}
	for k, v := range t.Params {
		if ov, ok := o.Params[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Handoff carries what the secondary lookup needs when no route rule matched.
type Handoff struct {
	ID      string `json:"id"`
	Company string `json:"company,omitempty"`
}

// Decision is either a Target or a NoOp handoff.
type Decision struct {
	Target  *Target  `json:"target,omitempty"`
	Handoff *Handoff `json:"handoff,omitempty"`
}

// NoOp reports whether no route rule matched.
func (d Decision) NoOp() bool {
	return d.Target == nil
}

// Decide maps a record to its landing screen. Status is checked before role,
// so an InActive employee is quarantined whatever the role.
func Decide(rec UserRecord) (Decision, error) {
	if rec.ID == "" {
		return Decision{}, ErrInvalidRecord
	}

	if rec.Status == StatusInActive {
		return Decision{Target: &Target{Route: RouteQuarantine, Params: map[string]string{}}}, nil
	}

	if rec.Role == RoleEmployee {
		return Decision{Target: &Target{
			Route: RouteEmployeeDashboard,
			Params: map[string]string{
				"role": rec.Role,
				"id":   rec.ID,
			},
		}}, nil
	}

	return Decision{Handoff: &Handoff{ID: rec.ID, Company: rec.Company}}, nil
}
