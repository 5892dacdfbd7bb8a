package service

import (
	"context"
	"time"

	"hostel-management-backend/internal/repository"

	"go.uber.org/zap"
)

// AuditorService periodically verifies the room-occupancy invariant: every
// room's counter must equal the number of students assigned to it. It only
// observes and logs — occupancy is mutated exclusively by the ledger, so a
// drifted counter means a bug or out-of-band write, not something to patch up
// silently.
type AuditorService struct {
	roomRepo *repository.RoomRepository
	log      *zap.Logger
	interval time.Duration
}

func NewAuditorService(roomRepo *repository.RoomRepository, log *zap.Logger) *AuditorService {
	return &AuditorService{
		roomRepo: roomRepo,
		log:      log,
		interval: 10 * time.Minute,
	}
}

// Start runs the reconciliation loop until the context is cancelled
func (a *AuditorService) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.log.Info("occupancy auditor started", zap.Duration("interval", a.interval))

	for {
		select {
		case <-ctx.Done():
			a.log.Info("occupancy auditor stopped")
			return
		case <-ticker.C:
			a.checkDrift()
		}
	}
}

func (a *AuditorService) checkDrift() {
	drift, err := a.roomRepo.GetOccupancyDrift()
	if err != nil {
		a.log.Error("occupancy drift check failed", zap.Error(err))
		return
	}

	for _, d := range drift {
		a.log.Warn("room occupancy counter drifted from student count",
			zap.String("room_number", d.RoomNumber),
			zap.Int("current_occupancy", d.CurrentOccupancy),
			zap.Int("actual_count", d.ActualCount))
	}
}
