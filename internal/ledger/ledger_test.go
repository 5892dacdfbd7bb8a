package ledger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// getTestDB connects to the test database described by TEST_DB_* env vars and
// skips the test when it is unreachable.
func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("TEST_DB_USER", "root"),
		getEnv("TEST_DB_PASSWORD", ""),
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "3306"),
		getEnv("TEST_DB_NAME", "hostel_management_test"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to database: %v", err)
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("Skipping integration test: %v", err)
		return nil
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("Skipping integration test: cannot ping database: %v", err)
		return nil
	}

	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Student{}))

	// Start from a clean slate and leave one behind.
	cleanup(t, db)
	t.Cleanup(func() { cleanup(t, db) })

	return db
}

func cleanup(t *testing.T, db *gorm.DB) {
	t.Helper()
	db.Exec("DELETE FROM students")
	db.Exec("DELETE FROM rooms")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func newTestLedger(db *gorm.DB) *Ledger {
	return NewLedger(db, zap.NewNop())
}

func createRoom(t *testing.T, db *gorm.DB, number string, capacity int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Room{RoomNumber: number, Capacity: capacity}).Error)
}

func testStudent(rollNo string) *models.Student {
	return &models.Student{
		Name:          "Student " + rollNo,
		RollNo:        rollNo,
		Email:         rollNo + "@hostel.test",
		Phone:         "9999999999",
		Gender:        "male",
		DOB:           "2004-06-15",
		Address:       "12 College Road",
		GuardianName:  "Guardian " + rollNo,
		GuardianPhone: "8888888888",
		Department:    "CS",
		Year:          2,
	}
}

func roomOccupancy(t *testing.T, db *gorm.DB, number string) int {
	t.Helper()
	var room models.Room
	require.NoError(t, db.Where("room_number = ?", number).First(&room).Error)
	return room.CurrentOccupancy
}

// requireInvariant asserts that every room's counter matches the number of
// students actually assigned to it and stays within capacity.
func requireInvariant(t *testing.T, db *gorm.DB) {
	t.Helper()
	var rooms []models.Room
	require.NoError(t, db.Find(&rooms).Error)
	for _, room := range rooms {
		var count int64
		require.NoError(t, db.Model(&models.Student{}).
			Where("room_no = ?", room.RoomNumber).
			Count(&count).Error)
		assert.Equal(t, int(count), room.CurrentOccupancy,
			"room %s counter drifted from student count", room.RoomNumber)
		assert.GreaterOrEqual(t, room.CurrentOccupancy, 0)
		assert.LessOrEqual(t, room.CurrentOccupancy, room.Capacity)
	}
}

func TestAssignStudentToRoom_FillsRoomToCapacity(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "101", 2)

	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101"))
	assert.Equal(t, 1, roomOccupancy(t, db, "101"))

	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0002"), "101"))
	assert.Equal(t, 2, roomOccupancy(t, db, "101"))

	err := l.AssignStudentToRoom(ctx, testStudent("101cs0003"), "101")
	assert.ErrorIs(t, err, ErrRoomFull)
	assert.Equal(t, 2, roomOccupancy(t, db, "101"))

	requireInvariant(t, db)
}

func TestAssignStudentToRoom_RoomNotFound(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)

	err := l.AssignStudentToRoom(context.Background(), testStudent("101cs0001"), "999")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Count(&count).Error)
	assert.Zero(t, count, "no student row may survive a failed assignment")
}

func TestAssignStudentToRoom_DuplicateRollNo(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "101", 4)
	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101"))

	err := l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101")
	assert.ErrorIs(t, err, ErrDuplicateRollNo)
	assert.Equal(t, 1, roomOccupancy(t, db, "101"))
	requireInvariant(t, db)
}

func TestAssignStudentToRoom_HashesInitialCredential(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)

	createRoom(t, db, "101", 2)
	require.NoError(t, l.AssignStudentToRoom(context.Background(), testStudent("101cs0001"), "101"))

	var stored models.Student
	require.NoError(t, db.Where("roll_no = ?", "101cs0001").First(&stored).Error)
	assert.NotEqual(t, "101cs0001", stored.PasswordHash)
	assert.True(t, utils.ComparePassword(stored.PasswordHash, "101cs0001"),
		"initial password must be the roll number, hashed")
}

func TestTransferStudent_MovesBetweenRooms(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "101", 2)
	createRoom(t, db, "102", 1)
	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101"))

	var student models.Student
	require.NoError(t, db.Where("roll_no = ?", "101cs0001").First(&student).Error)

	newRoom := "102"
	updated, err := l.TransferStudent(ctx, student.ID, StudentPatch{RoomNo: &newRoom})
	require.NoError(t, err)
	require.NotNil(t, updated.RoomNo)
	assert.Equal(t, "102", *updated.RoomNo)

	assert.Equal(t, 0, roomOccupancy(t, db, "101"))
	assert.Equal(t, 1, roomOccupancy(t, db, "102"))
	requireInvariant(t, db)
}

func TestTransferStudent_RoomNotFound(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "101", 2)
	createRoom(t, db, "102", 1)
	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101"))

	var student models.Student
	require.NoError(t, db.Where("roll_no = ?", "101cs0001").First(&student).Error)

	ghost := "999"
	_, err := l.TransferStudent(ctx, student.ID, StudentPatch{RoomNo: &ghost})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	var after models.Student
	require.NoError(t, db.First(&after, student.ID).Error)
	require.NotNil(t, after.RoomNo)
	assert.Equal(t, "101", *after.RoomNo)
	assert.Equal(t, 1, roomOccupancy(t, db, "101"))
	assert.Equal(t, 0, roomOccupancy(t, db, "102"))
}

func TestTransferStudent_DestinationFullLeavesSourceUntouched(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "101", 2)
	createRoom(t, db, "102", 1)
	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101"))
	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("102cs0001"), "102"))

	var student models.Student
	require.NoError(t, db.Where("roll_no = ?", "101cs0001").First(&student).Error)

	full := "102"
	_, err := l.TransferStudent(ctx, student.ID, StudentPatch{RoomNo: &full})
	assert.ErrorIs(t, err, ErrRoomFull)

	// No partial decrement on the source room.
	var after models.Student
	require.NoError(t, db.First(&after, student.ID).Error)
	require.NotNil(t, after.RoomNo)
	assert.Equal(t, "101", *after.RoomNo)
	assert.Equal(t, 1, roomOccupancy(t, db, "101"))
	assert.Equal(t, 1, roomOccupancy(t, db, "102"))
	requireInvariant(t, db)
}

func TestTransferStudent_SameRoomUpdatesFieldsOnly(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "101", 2)
	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101"))

	var student models.Student
	require.NoError(t, db.Where("roll_no = ?", "101cs0001").First(&student).Error)

	sameRoom := "101"
	newPhone := "7777777777"
	updated, err := l.TransferStudent(ctx, student.ID, StudentPatch{
		RoomNo: &sameRoom,
		Phone:  &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, "7777777777", updated.Phone)
	assert.Equal(t, 1, roomOccupancy(t, db, "101"))
	requireInvariant(t, db)
}

func TestTransferStudent_StudentNotFound(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)

	room := "101"
	createRoom(t, db, "101", 2)
	_, err := l.TransferStudent(context.Background(), 424242, StudentPatch{RoomNo: &room})
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Equal(t, 0, roomOccupancy(t, db, "101"))
}

func TestReleaseStudent_FreesRoom(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "101", 2)
	require.NoError(t, l.AssignStudentToRoom(ctx, testStudent("101cs0001"), "101"))

	var student models.Student
	require.NoError(t, db.Where("roll_no = ?", "101cs0001").First(&student).Error)

	require.NoError(t, l.ReleaseStudent(ctx, student.ID))

	err := db.First(&models.Student{}, student.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "student row must be gone")
	assert.Equal(t, 0, roomOccupancy(t, db, "101"))
	requireInvariant(t, db)
}

func TestReleaseStudent_StudentNotFound(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)

	createRoom(t, db, "101", 2)
	err := l.ReleaseStudent(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Equal(t, 0, roomOccupancy(t, db, "101"))
}

func TestConcurrentAssignments_RespectCapacity(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	const capacity = 3
	const attempts = 8
	createRoom(t, db, "201", capacity)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			student := testStudent(fmt.Sprintf("201cs%04d", i))
			results <- l.AssignStudentToRoom(ctx, student, "201")
		}(i)
	}
	wg.Wait()
	close(results)

	var successes, full int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrRoomFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, successes)
	assert.Equal(t, attempts-capacity, full)
	assert.Equal(t, capacity, roomOccupancy(t, db, "201"))
	requireInvariant(t, db)
}

func TestConcurrentTransfers_DoNotOverfillDestination(t *testing.T) {
	db := getTestDB(t)
	l := newTestLedger(db)
	ctx := context.Background()

	createRoom(t, db, "301", 4)
	createRoom(t, db, "302", 1)

	ids := make([]uint, 0, 4)
	for i := 0; i < 4; i++ {
		student := testStudent(fmt.Sprintf("301cs%04d", i))
		require.NoError(t, l.AssignStudentToRoom(ctx, student, "301"))
		ids = append(ids, student.ID)
	}

	var wg sync.WaitGroup
	results := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			target := "302"
			_, err := l.TransferStudent(ctx, id, StudentPatch{RoomNo: &target})
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	var successes, full int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrRoomFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 3, full)
	assert.Equal(t, 3, roomOccupancy(t, db, "301"))
	assert.Equal(t, 1, roomOccupancy(t, db, "302"))
	requireInvariant(t, db)
}
