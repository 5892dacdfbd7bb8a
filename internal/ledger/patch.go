package ledger

import "hostel-management-backend/internal/models"

// StudentPatch enumerates the student fields a transfer may update. A nil
// field is left untouched; RoomNo nil (or equal to the current room) means the
// operation is a pure field update and no occupancy counter moves.
type StudentPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	GuardianName  *string
	GuardianPhone *string
	RoomNo        *string
}

// changesRoom reports whether the patch moves the student to a different room.
func (p StudentPatch) changesRoom(currentRoomNo *string) bool {
	if p.RoomNo == nil {
		return false
	}
	return currentRoomNo == nil || *currentRoomNo != *p.RoomNo
}

// apply copies the non-nil scalar fields onto the student. Room assignment is
// handled by the operation itself, not here.
func (p StudentPatch) apply(s *models.Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.GuardianName != nil {
		s.GuardianName = *p.GuardianName
	}
	if p.GuardianPhone != nil {
		s.GuardianPhone = *p.GuardianPhone
	}
}
