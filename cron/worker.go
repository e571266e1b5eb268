package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"tribook/config"
	reservationRepo "tribook/database/repository/reservation"
	"tribook/services/tasks"
	"tribook/utils"
)

// NewHoldQueueClient returns the asynq client the booking service uses to
// schedule hold expiries.
func NewHoldQueueClient() *asynq.Client {
	return asynq.NewClient(holdQueueRedisOpt())
}

// InitHoldExpiryWorker runs the async worker in background. It releases
// pending reservations whose hold window lapsed without confirmation.
func InitHoldExpiryWorker(repo reservationRepo.ReservationRepository) {
	srv := asynq.NewServer(
		holdQueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeHoldExpire, handleHoldExpireTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[HoldExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HoldExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HoldExpiryWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleHoldExpireTask(repo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.HoldExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[HoldExpiry] invalid payload: %v", err)
			return err
		}

		released, err := repo.ExpireHold(ctx, p.ReservationID)
		if err != nil {
			log.Printf("[HoldExpiry] failed to release hold %s: %v", p.ReservationID, err)
			return err
		}
		if released {
			log.Printf("[HoldExpiry] released unconfirmed hold %s (session %s)", p.ReservationID, p.SessionID)
			// The session key may still linger until its TTL; drop it now.
			utils.GetSessionCacheClient().Del(ctx, utils.SessionCachePrefix+p.SessionID)
		}
		return nil
	}
}

func holdQueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldQueueDB,
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[HoldExpiryWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
