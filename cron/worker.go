package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/config"
	bookingRepo "github.com/Jprcko/canberra-boating-signoffs-sub000/database/repository/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeCapacityRecount = "capacity:recount"

// RecountPayload bounds a recount to an inclusive calendar-date range.
type RecountPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewCapacityRecountTask builds an asynq task asking for the per-date
// committed counters in [from, to] to be recomputed from the bookings.
func NewCapacityRecountTask(from, to string) (*asynq.Task, error) {
	payload, err := json.Marshal(RecountPayload{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCapacityRecount, payload), nil
}

// QueueRedisOpt returns the redis connection the task queue runs on.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitCapacityWorker runs the async worker and its schedule in background.
// Recounts heal any drift between the per-date counters and the bookings
// themselves, and push the fresh snapshot into the ledger cache. loc is the
// business timezone; the rolling window must be resolved in it so the cache
// key matches what calendar reads look up.
func InitCapacityWorker(repo bookingRepo.BookingRepository, cache *redis.Client, loc *time.Location) {
	logger := utils.GetLogger()
	redisOpts := QueueRedisOpt()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCapacityRecount, handleRecountTask(repo, cache, loc))

	// Start async worker with retry logic
	go func() {
		logger.Info("starting capacity recount worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Warn("failed to start recount worker",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("recount worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runRecountSchedule(redisOpts, logger)
}

// runRecountSchedule enqueues a rolling-window recount every 15 minutes.
func runRecountSchedule(redisOpts asynq.RedisClientOpt, logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	// An empty range means "the rolling window as of processing time"; the
	// handler resolves it so the window tracks the calendar day.
	task, err := NewCapacityRecountTask("", "")
	if err != nil {
		logger.Error("failed to build scheduled recount task", zap.Error(err))
		return
	}
	if _, err := scheduler.Register("@every 15m", task); err != nil {
		logger.Error("failed to register recount schedule", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		logger.Error("recount scheduler stopped", zap.Error(err))
	}
}

// resolveWindow fills an empty recount range with the rolling booking window
// as of now, evaluated in the business timezone. Using any other zone here
// would write the snapshot under a key no calendar read ever computes.
func resolveWindow(p RecountPayload, now time.Time, loc *time.Location, horizonMonths int) RecountPayload {
	if p.From != "" && p.To != "" {
		return p
	}
	today := schedule.Midnight(now, loc)
	p.From = schedule.DateKey(today, loc)
	p.To = schedule.DateKey(today.AddDate(0, horizonMonths, 0), loc)
	return p
}

func handleRecountTask(repo bookingRepo.BookingRepository, cache *redis.Client, loc *time.Location) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		utils.MarkWorkerAlive()

		var p RecountPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid recount payload", zap.Error(err))
			return err
		}
		p = resolveWindow(p, time.Now(), loc, config.AppConfig.BookingHorizonMonths)

		entries, err := repo.RecountCapacity(ctx, p.From, p.To)
		if err != nil {
			logger.Error("capacity recount failed",
				zap.String("from", p.From), zap.String("to", p.To), zap.Error(err))
			return err
		}

		data, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		key := utils.CapacityCacheKey(p.From, p.To)
		if err := cache.Set(ctx, key, data, utils.CapacityCacheTTL).Err(); err != nil {
			logger.Warn("failed to refresh ledger cache", zap.String("key", key), zap.Error(err))
		}

		logger.Info("capacity recount complete",
			zap.Int("dates", len(entries)), zap.String("from", p.From), zap.String("to", p.To))
		return nil
	}
}
