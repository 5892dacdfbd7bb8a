package ledger

import (
	"testing"

	"hostel-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestStudentPatch_ChangesRoom(t *testing.T) {
	tests := []struct {
		name    string
		patch   StudentPatch
		current *string
		want    bool
	}{
		{"no room in patch", StudentPatch{}, strPtr("101"), false},
		{"same room", StudentPatch{RoomNo: strPtr("101")}, strPtr("101"), false},
		{"different room", StudentPatch{RoomNo: strPtr("102")}, strPtr("101"), true},
		{"currently unassigned", StudentPatch{RoomNo: strPtr("101")}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.changesRoom(tt.current))
		})
	}
}

func TestStudentPatch_ApplyOnlySetsProvidedFields(t *testing.T) {
	student := models.Student{
		Name:          "Asha",
		Email:         "asha@hostel.test",
		Phone:         "9999999999",
		Address:       "12 College Road",
		GuardianName:  "Ravi",
		GuardianPhone: "8888888888",
		RoomNo:        strPtr("101"),
	}

	patch := StudentPatch{
		Phone:        strPtr("7777777777"),
		GuardianName: strPtr("Meena"),
	}
	patch.apply(&student)

	assert.Equal(t, "Asha", student.Name)
	assert.Equal(t, "asha@hostel.test", student.Email)
	assert.Equal(t, "7777777777", student.Phone)
	assert.Equal(t, "12 College Road", student.Address)
	assert.Equal(t, "Meena", student.GuardianName)
	assert.Equal(t, "8888888888", student.GuardianPhone)

	// apply never touches the room reference
	assert.Equal(t, "101", *student.RoomNo)
}
