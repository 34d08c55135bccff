package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"gearbook/config"
	"gearbook/services/availability"

	"github.com/hibiken/asynq"
)

const TypePrewarmAvailability = "availability:prewarm"

// InitPrewarmWorker runs the async worker and its periodic scheduler in the
// background. The prewarm task recomputes the day reports for the next few
// dates, which repopulates the short-TTL report cache so the common "what's
// free this week" queries stay warm.
func InitPrewarmWorker(svc availability.AvailabilityService, loc *time.Location) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSchedulerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePrewarmAvailability, handlePrewarmTask(svc, loc))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: loc})
	interval := config.AppConfig.PrewarmIntervalMin
	if interval <= 0 {
		interval = 15
	}
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", interval),
		asynq.NewTask(TypePrewarmAvailability, nil),
	); err != nil {
		log.Printf("[PrewarmWorker] failed to register prewarm schedule: %v", err)
		return
	}

	go func() {
		log.Println("[PrewarmWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[PrewarmWorker] worker stopped: %v", err)
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[PrewarmWorker] scheduler stopped: %v", err)
		}
	}()
}

func handlePrewarmTask(svc availability.AvailabilityService, loc *time.Location) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		days := config.AppConfig.PrewarmDays
		if days <= 0 {
			days = 7
		}
		today := time.Now().In(loc)
		for i := 0; i < days; i++ {
			date := today.AddDate(0, 0, i).Format("2006-01-02")
			if _, err := svc.DayReport(ctx, date, ""); err != nil {
				log.Printf("[PrewarmWorker] prewarm failed for %s: %v", date, err)
			}
		}
		return nil
	}
}
