package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"greenchain/internal/farm"
	"greenchain/internal/models"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// streamClient maintains one telemetry stream connection
type streamClient struct {
	conn *websocket.Conn
	api  *FarmAPI
	done chan struct{}
}

// streamFrame is one pushed telemetry update
type streamFrame struct {
	Reading    models.TelemetryReading `json:"reading"`
	Irrigation models.IrrigationStatus `json:"irrigation"`
}

// handleTelemetryStream upgrades the connection and pushes a fresh reading
// on every interval tick.
func (f *FarmAPI) handleTelemetryStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &streamClient{
		conn: conn,
		api:  f,
		done: make(chan struct{}),
	}

	go client.writePump()
	go client.readPump()
}

// readPump drains client messages and keeps the read deadline fresh
func (s *streamClient) readPump() {
	defer func() {
		close(s.done)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(512)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
	}
}

// writePump pushes telemetry frames and pings on fixed intervals
func (s *streamClient) writePump() {
	stream := time.NewTicker(s.api.streamInterval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		stream.Stop()
		ping.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-s.done:
			return
		case <-stream.C:
			series := s.api.generator.Series(s.api.Clock())
			latest := series.Latest()
			frame := streamFrame{
				Reading:    latest,
				Irrigation: farm.Decide(latest.SoilMoisture),
			}

			payload, err := json.Marshal(frame)
			if err != nil {
				log.Printf("Failed to marshal telemetry frame: %v", err)
				continue
			}

			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ping.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
