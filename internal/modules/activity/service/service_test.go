package activity

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientPublisherIsNoop(t *testing.T) {
	p := NewPublisher(nil)

	assert.False(t, p.Enabled())
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), Event{Type: CourseCreated, CourseID: 1})
	})
}

func TestEventEncoding(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	raw, err := json.Marshal(Event{Type: UserAddedToCourse, CourseID: 1, UserID: 2, Role: "instructor", At: at})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "user_added_to_course",
		"course_id": 1,
		"user_id": 2,
		"role": "instructor",
		"at": "2024-01-02T03:04:05Z"
	}`, string(raw))
}
