package activity

import (
	"context"
	"encoding/json"
	"time"

	"anoa.com/coursecms/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Channel is the Redis pub/sub channel every activity event goes to.
const Channel = "cms:activity"

type EventType string

const (
	CourseCreated     EventType = "course_created"
	CourseDeleted     EventType = "course_deleted"
	UserCreated       EventType = "user_created"
	UserAddedToCourse EventType = "user_added_to_course"
	AssignmentCreated EventType = "assignment_created"
)

type Event struct {
	Type         EventType `json:"type"`
	CourseID     uint      `json:"course_id,omitempty"`
	UserID       uint      `json:"user_id,omitempty"`
	AssignmentID uint      `json:"assignment_id,omitempty"`
	Role         string    `json:"role,omitempty"`
	At           time.Time `json:"at"`
}

type Publisher interface {
	// Publish never fails the caller; delivery problems are only logged.
	Publish(ctx context.Context, event Event)
	Subscribe(ctx context.Context) (*redis.PubSub, error)
	Enabled() bool
}

type publisher struct {
	redisClient *redis.Client
	now         func() time.Time
}

// NewPublisher returns a publisher backed by redisClient. A nil client
// gives a publisher that drops every event.
func NewPublisher(redisClient *redis.Client) Publisher {
	return &publisher{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (p *publisher) Enabled() bool {
	return p.redisClient != nil
}

func (p *publisher) Publish(ctx context.Context, event Event) {
	if p.redisClient == nil {
		return
	}
	if event.At.IsZero() {
		event.At = p.now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn().Err(err).Str("type", string(event.Type)).Msg("failed to encode activity event")
		return
	}

	if err := p.redisClient.Publish(ctx, Channel, payload).Err(); err != nil {
		logger.Warn().Err(err).Str("type", string(event.Type)).Msg("failed to publish activity event")
	}
}

// Subscribe waits until the subscription is confirmed before returning.
func (p *publisher) Subscribe(ctx context.Context) (*redis.PubSub, error) {
	pubsub := p.redisClient.Subscribe(ctx, Channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}
	return pubsub, nil
}
