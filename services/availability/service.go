package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appointmentRepo "gearbook/database/repository/appointment"
	blockRepo "gearbook/database/repository/block"
	"gearbook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultAvailabilityService is the concrete engine implementation.
type DefaultAvailabilityService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	BlockRepo       blockRepo.BlockRepository
	// Cache is optional; nil or a zero TTL disables the day-report cache.
	Cache            *redis.Client
	CacheTTL         time.Duration
	Location         *time.Location
	RangeConcurrency int
	Logger           *zap.Logger
}

func (s *DefaultAvailabilityService) DayReport(ctx context.Context, date, mechanicID string) (*models.MergedReport, error) {
	if cached := s.cachedReport(ctx, date, mechanicID); cached != nil {
		return cached, nil
	}

	raw, err := s.collectUnavailable(ctx, date, mechanicID)
	if err != nil {
		return nil, err
	}
	report := buildReport(date, raw)
	s.storeReport(ctx, date, mechanicID, report)
	return report, nil
}

func (s *DefaultAvailabilityService) CheckSlot(ctx context.Context, q ValidatedQuery) (*models.AvailabilityCheckResult, *models.MergedReport, error) {
	// Point queries always read fresh: the check runs against the raw
	// intervals so the per-source signals stay separate.
	raw, err := s.collectUnavailable(ctx, q.Date, q.MechanicID)
	if err != nil {
		return nil, nil, err
	}
	result := checkSlot(q.Date, q.CheckSlot, q.Check, raw)
	return &result, buildReport(q.Date, raw), nil
}

// buildReport assembles the per-date picture: consolidated view plus the
// raw per-source lists. The same minute can appear in both raw lists; that
// duplication is deliberate and survives into the report.
func buildReport(date string, raw []models.UnavailableInterval) *models.MergedReport {
	report := &models.MergedReport{
		Date:         date,
		Consolidated: Merge(raw),
		ManualRaw:    []models.TimeInterval{},
		ScheduledRaw: []models.UnavailableInterval{},
	}
	for _, u := range raw {
		if u.Reason == models.ReasonManuallySet {
			report.ManualRaw = append(report.ManualRaw, u.Interval)
		} else {
			report.ScheduledRaw = append(report.ScheduledRaw, u)
		}
	}
	return report
}

func cacheKey(date, mechanicID string) string {
	if mechanicID != "" {
		return fmt.Sprintf("availability:day:%s:mechanic:%s", date, mechanicID)
	}
	return fmt.Sprintf("availability:day:%s", date)
}

func (s *DefaultAvailabilityService) cachedReport(ctx context.Context, date, mechanicID string) *models.MergedReport {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return nil
	}
	data, err := s.Cache.Get(ctx, cacheKey(date, mechanicID)).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("availability cache read failed", zap.String("date", date), zap.Error(err))
		}
		return nil
	}
	var report models.MergedReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		s.Logger.Warn("availability cache entry corrupt", zap.String("date", date), zap.Error(err))
		return nil
	}
	return &report
}

func (s *DefaultAvailabilityService) storeReport(ctx context.Context, date, mechanicID string, report *models.MergedReport) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(date, mechanicID), data, s.CacheTTL).Err(); err != nil {
		s.Logger.Warn("availability cache write failed", zap.String("date", date), zap.Error(err))
	}
}
