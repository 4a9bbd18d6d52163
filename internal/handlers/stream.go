package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/GeniusPlums/supreme-succotash/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type StreamHandler struct {
	hub *ws.Hub
}

func NewStreamHandler(hub *ws.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleContestStream godoc
// @Summary      WebSocket stream of contest events
// @Description  Pushes participant_joined, selections_submitted and leaderboard_updated events
// @Tags         websocket
// @Param        id path int true "Contest ID"
// @Router       /ws/contest/{id} [get]
func (h *StreamHandler) HandleContestStream(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	cid := uint(contestID)
	h.hub.AddConnection(cid, conn)
	defer h.hub.RemoveConnection(cid, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
