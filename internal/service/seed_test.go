package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hrflow/internal/errors"
)

func TestSeedRow_ToSeedEmployee(t *testing.T) {
	tests := []struct {
		name        string
		row         SeedRow
		expectError bool
	}{
		{name: "full row", row: SeedRow{EmpID: "E-1", GrossSalary: "52000.50", JoiningDate: "2021-04-01"}},
		{name: "id is trimmed", row: SeedRow{EmpID: "  E-2 "}},
		{name: "missing id", row: SeedRow{Name: "No Id"}, expectError: true},
		{name: "bad salary", row: SeedRow{EmpID: "E-3", GrossSalary: "lots"}, expectError: true},
		{name: "bad date", row: SeedRow{EmpID: "E-4", JoiningDate: "01/04/2021"}, expectError: true},
		{name: "inactive status", row: SeedRow{EmpID: "E-5", Status: "InActive"}},
		{name: "unknown status", row: SeedRow{EmpID: "E-6", Status: "Suspended"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := tt.row.ToSeedEmployee()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, seed.Employee.EmpID, " ")
		})
	}

	seed, err := SeedRow{EmpID: "E-1", GrossSalary: "52000.50", JoiningDate: "2021-04-01", Password: "pw"}.ToSeedEmployee()
	require.NoError(t, err)
	assert.Equal(t, "52000.5", seed.Employee.GrossSalary.String())
	require.NotNil(t, seed.Employee.JoiningDate)
	assert.Equal(t, "2021-04-01", seed.Employee.JoiningDate.Format("2006-01-02"))
	assert.Equal(t, "pw", seed.Password)

	_, err = SeedRow{}.ToSeedEmployee()
	assert.ErrorIs(t, err, ErrSeedMissingID)

	_, err = SeedRow{EmpID: "E-6", Status: "Suspended"}.ToSeedEmployee()
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}
