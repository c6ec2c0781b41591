package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/blakejoy/saccom-app/internal/dto"
	"github.com/blakejoy/saccom-app/internal/model"
	pkgerrors "github.com/blakejoy/saccom-app/pkg/errors"
)

func TestTrackingServiceUpdateStatus(t *testing.T) {
	trackingRepo := &mockTrackingRepo{
		updateStatusFn: func(_ context.Context, id uint, status string, notes *string, expectedVersion *int) (*model.DailyTracking, error) {
			if expectedVersion != nil {
				t.Error("未携带版本时不应启用乐观并发检查")
			}
			return &model.DailyTracking{
				ID:                  id,
				FormAccommodationID: 100,
				DayOfWeek:           3,
				Status:              status,
				Notes:               notes,
				Version:             2,
			}, nil
		},
	}
	svc := NewTrackingService(newTestRepository(nil, nil, nil, nil, trackingRepo), zap.NewNop())

	notes := "上午缺勤"
	resp, err := svc.UpdateStatus(context.Background(), 1001, &dto.UpdateTrackingRequest{
		Status: model.DailyStatusRejected,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if resp.Status != model.DailyStatusRejected {
		t.Errorf("Status = %q, want %q", resp.Status, model.DailyStatusRejected)
	}
	if resp.DayName != "Wednesday" {
		t.Errorf("DayName = %q, want Wednesday", resp.DayName)
	}
	if resp.Version != 2 {
		t.Errorf("Version = %d, want 2", resp.Version)
	}
}

func TestTrackingServiceUpdateStatusInvalid(t *testing.T) {
	svc := NewTrackingService(newTestRepository(nil, nil, nil, nil, &mockTrackingRepo{}), zap.NewNop())
	_, err := svc.UpdateStatus(context.Background(), 1, &dto.UpdateTrackingRequest{Status: "maybe"})
	if !errors.Is(err, ErrTrackingInvalidStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrTrackingInvalidStatus", err)
	}
}

func TestTrackingServiceUpdateStatusVersionConflict(t *testing.T) {
	trackingRepo := &mockTrackingRepo{
		updateStatusFn: func(_ context.Context, _ uint, _ string, _ *string, expectedVersion *int) (*model.DailyTracking, error) {
			if expectedVersion == nil || *expectedVersion != 1 {
				t.Errorf("expectedVersion = %v, want 1", expectedVersion)
			}
			return nil, pkgerrors.ErrOptimisticLock
		},
	}
	svc := NewTrackingService(newTestRepository(nil, nil, nil, nil, trackingRepo), zap.NewNop())

	version := 1
	_, err := svc.UpdateStatus(context.Background(), 1001, &dto.UpdateTrackingRequest{
		Status:  model.DailyStatusAccepted,
		Version: &version,
	})
	if !errors.Is(err, ErrTrackingConflict) {
		t.Errorf("UpdateStatus() error = %v, want ErrTrackingConflict", err)
	}
}

func TestTrackingServiceUpdateStatusMissing(t *testing.T) {
	svc := NewTrackingService(newTestRepository(nil, nil, nil, nil, &mockTrackingRepo{}), zap.NewNop())
	_, err := svc.UpdateStatus(context.Background(), 404, &dto.UpdateTrackingRequest{Status: model.DailyStatusAccepted})
	if !errors.Is(err, ErrTrackingNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrTrackingNotFound", err)
	}
}
