package availability

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RangeReport fans out one fetch+compute task per date in the inclusive
// range, bounded by RangeConcurrency. Dates are independent, so a failure
// on one date only marks that date's entry; the rest of the range still
// comes back. Caller cancellation short-circuits dates not yet started.
func (s *DefaultAvailabilityService) RangeReport(ctx context.Context, startDate, endDate, mechanicID string) (map[string]DayResult, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, s.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, s.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}

	concurrency := s.RangeConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]DayResult, len(dates))
	)
	record := func(date string, res DayResult) {
		mu.Lock()
		results[date] = res
		mu.Unlock()
	}

	for _, date := range dates {
		wg.Add(1)
		go func(date string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				record(date, DayResult{Err: ctx.Err()})
				return
			}
			report, err := s.DayReport(ctx, date, mechanicID)
			record(date, DayResult{Report: report, Err: err})
		}(date)
	}
	wg.Wait()

	return results, nil
}
