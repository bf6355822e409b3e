package handler

import (
	"net/http"

	activity "anoa.com/coursecms/internal/modules/activity/service"
	"anoa.com/coursecms/pkg/apperror"
	"anoa.com/coursecms/pkg/logger"
	"anoa.com/coursecms/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ActivityHandler struct {
	publisher activity.Publisher
	upgrader  websocket.Upgrader
}

func NewActivityHandler(publisher activity.Publisher) *ActivityHandler {
	return &ActivityHandler{
		publisher: publisher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Stream forwards every activity event to the websocket client until either
// side goes away.
func (h *ActivityHandler) Stream(c *gin.Context) {
	if !h.publisher.Enabled() {
		response.ResponseError(c, apperror.New(http.StatusServiceUnavailable, "activity stream is not configured", apperror.ErrUnavailable))
		return
	}

	log := logger.WithField("request_id", c.GetString("request_id"))
	ctx := c.Request.Context()
	pubsub, err := h.publisher.Subscribe(ctx)
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusServiceUnavailable, "activity stream is unavailable", err))
		return
	}
	defer pubsub.Close()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to upgrade websocket")
		return
	}
	defer conn.Close()
	log.Debug().Msg("activity client connected")
	defer log.Debug().Msg("activity client disconnected")

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Debug().Err(err).Msg("activity client write failed")
				return
			}
		case <-clientClosed:
			return
		case <-ctx.Done():
			return
		}
	}
}
