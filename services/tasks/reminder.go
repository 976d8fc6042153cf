package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"slotbook/config"
	"slotbook/models"
)

const TypeSendReminder = "reminder:send"

// ReminderScheduler enqueues a consultation reminder for later delivery.
// Scheduling failures are best-effort from the booking service's perspective.
type ReminderScheduler interface {
	Schedule(payload models.ReminderPayload, fireAt time.Time) error
}

// NewReminderTask builds the asynq task for one reminder, processed at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler is the production scheduler backed by the Redis queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler from the loaded application config.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

func (s *AsynqReminderScheduler) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
