package utils

import (
	"context"
	"sync"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the last observed state of every external dependency this
// service talks to, plus the recount worker's liveness.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	CacheRedis   bool      `json:"cacheRedis"`
	SessionRedis bool      `json:"sessionRedis"`
	QueueRedis   bool      `json:"queueRedis"`
	Worker       bool      `json:"worker"`
	CheckedAt    time.Time `json:"checkedAt"`
}

// WorkerHeartbeatMaxAge is how stale the recount worker's heartbeat may get
// before the snapshot reports it down. The scheduled recount fires every 15
// minutes, so this allows one missed run before alarming.
const WorkerHeartbeatMaxAge = 31 * time.Minute

var (
	currentHealth HealthStatus
	lastHeartbeat time.Time
	mu            sync.RWMutex
)

// MarkWorkerAlive records a recount-worker heartbeat. The worker calls this
// every time it processes a task.
func MarkWorkerAlive() {
	mu.Lock()
	lastHeartbeat = time.Now()
	mu.Unlock()
}

func workerAlive(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) <= WorkerHeartbeatMaxAge
}

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings mongo and each redis role periodically and stores
// the snapshot the /health route serves. The queue DB gets a dedicated ping
// client because asynq owns the worker-side connections.
func StartHealthMonitor(cache, sessions *redis.Client, mongoClient *mongo.Client) {
	queuePing := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			checkHealth(cache, sessions, queuePing, mongoClient)
			<-ticker.C
		}
	}()
}

func checkHealth(cache, sessions, queue *redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:        mongoClient.Ping(ctx, nil) == nil,
		CacheRedis:   cache.Ping(ctx).Err() == nil,
		SessionRedis: sessions.Ping(ctx).Err() == nil,
		QueueRedis:   queue.Ping(ctx).Err() == nil,
		CheckedAt:    time.Now(),
	}

	mu.Lock()
	status.Worker = workerAlive(lastHeartbeat, status.CheckedAt)
	currentHealth = status
	mu.Unlock()
}
