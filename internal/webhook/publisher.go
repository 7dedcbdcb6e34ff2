package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_intake_system/internal/models"
)

const (
	caseEventQueueKey = "case_events"

	EventCaseCreated = "case.created"
	EventCaseClosed  = "case.closed"
)

// CaseEvent - событие жизненного цикла кейса для внешних потребителей
type CaseEvent struct {
	Type       string    `json:"type"`
	CaseID     int64     `json:"case_id"`
	Phone      string    `json:"phone,omitempty"`
	Postcode   string    `json:"postcode,omitempty"`
	People     int       `json:"people,omitempty"`
	Needs      []string  `json:"needs,omitempty"`
	CrewName   string    `json:"crew,omitempty"`
	EtaMinutes *int      `json:"eta,omitempty"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewCaseCreatedEvent собирает событие создания кейса из его записи
func NewCaseCreatedEvent(c *models.Case) CaseEvent {
	return CaseEvent{
		Type:       EventCaseCreated,
		CaseID:     c.ID,
		Phone:      c.Phone,
		Postcode:   c.Postcode,
		People:     c.People,
		Needs:      c.Needs,
		CrewName:   c.CrewName,
		EtaMinutes: c.EtaMinutes,
		Status:     c.Status,
		Timestamp:  time.Now().UTC(),
	}
}

// NewCaseClosedEvent собирает событие закрытия кейса
func NewCaseClosedEvent(caseID int64) CaseEvent {
	return CaseEvent{
		Type:      EventCaseClosed,
		CaseID:    caseID,
		Status:    models.StatusClosed,
		Timestamp: time.Now().UTC(),
	}
}

// EventPublisher - интерфейс для публикации событий по кейсам
type EventPublisher interface {
	Publish(ctx context.Context, event CaseEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event CaseEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal case event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, caseEventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish case event to Redis: %w", err)
	}
	return nil
}
