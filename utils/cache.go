// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"slotbook/config"
)

// ReminderQueueClient is the Redis client backing the reminder task queue.
var ReminderQueueClient *redis.Client

// InitReminderQueue initializes the Redis client for the reminder queue
// (using the dedicated DB from AppConfig).
func InitReminderQueue() {
	ReminderQueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReminderQueueClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Reminder Queue): %v", err)
	}
}

// GetReminderQueueClient returns the Redis client for the reminder queue.
func GetReminderQueueClient() *redis.Client {
	if ReminderQueueClient == nil {
		InitReminderQueue()
	}
	return ReminderQueueClient
}
