package ledger

import (
	"context"
	"errors"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Classified failures surfaced to the calling layer. Anything else returned by
// an operation is a wrapped store error and safe to retry, since every failure
// path rolls the transaction back.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrStudentNotFound = errors.New("student not found")
	ErrDuplicateRollNo = errors.New("roll number already exists")
)

// Ledger owns every mutation of Room.CurrentOccupancy. Each operation runs as
// a single transaction: the room rows involved are read with a locking read so
// a capacity check and the increment it guards cannot interleave with a
// concurrent assignment to the same room.
type Ledger struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLedger(db *gorm.DB, log *zap.Logger) *Ledger {
	return &Ledger{db: db, log: log}
}

// AssignStudentToRoom inserts a new student into the given room and increments
// its occupancy, all-or-nothing. The student's initial password is derived
// from the roll number and bcrypt-hashed before storage.
func (l *Ledger) AssignStudentToRoom(ctx context.Context, student *models.Student, roomNumber string) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Student
		err := tx.Where("roll_no = ?", student.RollNo).First(&existing).Error
		if err == nil {
			return ErrDuplicateRollNo
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check roll number: %w", err)
		}

		room, err := lockRoom(tx, roomNumber)
		if err != nil {
			return err
		}
		if room.CurrentOccupancy >= room.Capacity {
			return ErrRoomFull
		}

		passwordHash, err := utils.HashPassword(student.RollNo)
		if err != nil {
			return fmt.Errorf("failed to hash initial password: %w", err)
		}
		student.PasswordHash = passwordHash
		student.RoomNo = &room.RoomNumber

		if err := tx.Create(student).Error; err != nil {
			return fmt.Errorf("failed to create student: %w", err)
		}

		if err := incrementOccupancy(tx, room.RoomNumber); err != nil {
			return err
		}

		l.log.Info("student assigned to room",
			zap.String("roll_no", student.RollNo),
			zap.String("room_number", room.RoomNumber))
		return nil
	})
}

// TransferStudent applies a typed patch to a student. When the patch carries a
// room change, the old room's occupancy is decremented and the new room's
// incremented inside the same transaction as the student write; when it does
// not, no room counter is touched. Returns the updated student.
func (l *Ledger) TransferStudent(ctx context.Context, studentID uint, patch StudentPatch) (*models.Student, error) {
	var student models.Student

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", studentID).
			First(&student).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("failed to read student: %w", err)
		}

		oldRoomNo := student.RoomNo
		if patch.changesRoom(oldRoomNo) {
			newRoomNo := *patch.RoomNo

			// Lock both room rows in a fixed order so two opposing
			// transfers cannot deadlock.
			var newRoom *models.Room
			if oldRoomNo != nil && *oldRoomNo < newRoomNo {
				if _, err := lockRoom(tx, *oldRoomNo); err != nil {
					return err
				}
				if newRoom, err = lockRoom(tx, newRoomNo); err != nil {
					return err
				}
			} else {
				if newRoom, err = lockRoom(tx, newRoomNo); err != nil {
					return err
				}
				if oldRoomNo != nil {
					if _, err := lockRoom(tx, *oldRoomNo); err != nil {
						return err
					}
				}
			}

			if newRoom.CurrentOccupancy >= newRoom.Capacity {
				return ErrRoomFull
			}

			if oldRoomNo != nil {
				if err := decrementOccupancy(tx, *oldRoomNo); err != nil {
					return err
				}
			}
			if err := incrementOccupancy(tx, newRoomNo); err != nil {
				return err
			}
			student.RoomNo = &newRoomNo
		}

		patch.apply(&student)

		if err := tx.Save(&student).Error; err != nil {
			return fmt.Errorf("failed to update student: %w", err)
		}

		if patch.changesRoom(oldRoomNo) {
			l.log.Info("student transferred",
				zap.String("roll_no", student.RollNo),
				zap.Stringp("from", oldRoomNo),
				zap.Stringp("to", student.RoomNo))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// ReleaseStudent deletes a student and decrements the occupancy of the room
// they occupied, if any, in one transaction.
func (l *Ledger) ReleaseStudent(ctx context.Context, studentID uint) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", studentID).
			First(&student).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("failed to read student: %w", err)
		}

		if err := tx.Delete(&models.Student{}, student.ID).Error; err != nil {
			return fmt.Errorf("failed to delete student: %w", err)
		}

		if student.RoomNo != nil {
			if _, err := lockRoom(tx, *student.RoomNo); err != nil {
				return err
			}
			if err := decrementOccupancy(tx, *student.RoomNo); err != nil {
				return err
			}
		}

		l.log.Info("student released",
			zap.String("roll_no", student.RollNo),
			zap.Stringp("room_number", student.RoomNo))
		return nil
	})
}

// lockRoom reads a room row under a FOR UPDATE lock, serializing every
// occupancy check against concurrent mutations of the same room.
func lockRoom(tx *gorm.DB, roomNumber string) (*models.Room, error) {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_number = ?", roomNumber).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to read room: %w", err)
	}
	return &room, nil
}

func incrementOccupancy(tx *gorm.DB, roomNumber string) error {
	err := tx.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		UpdateColumn("current_occupancy", gorm.Expr("current_occupancy + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment occupancy: %w", err)
	}
	return nil
}

// decrementOccupancy floors at zero; the counter never goes negative even if
// it had drifted below the true count.
func decrementOccupancy(tx *gorm.DB, roomNumber string) error {
	err := tx.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		UpdateColumn("current_occupancy", gorm.Expr("GREATEST(current_occupancy - 1, 0)")).Error
	if err != nil {
		return fmt.Errorf("failed to decrement occupancy: %w", err)
	}
	return nil
}
