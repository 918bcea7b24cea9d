package websocket

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain/interfaces"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientInactive = errors.New("client is inactive")
)

// Client is one connected dashboard consumer of the live event feed.
type Client struct {
	id         string
	conn       *websocket.Conn
	active     bool
	pingPeriod time.Duration
	send       chan *domain.EventUpdate
	done       chan struct{}
}

func NewClient(conn *websocket.Conn, cfg config.WebSocketConfig) interfaces.WebSocketClient {
	client := &Client{
		id:         uuid.New().String(),
		conn:       conn,
		active:     true,
		pingPeriod: cfg.PingPeriod.Std(),
		send:       make(chan *domain.EventUpdate, 256),
		done:       make(chan struct{}),
	}

	// time.NewTicker panics on a zero period.
	if client.pingPeriod == 0 {
		client.pingPeriod = 54 * time.Second
	}

	go client.writePump()
	go client.readPump()

	return client
}

func (c *Client) GetID() string {
	return c.id
}

func (c *Client) Send(update *domain.EventUpdate) error {
	if !c.active {
		return ErrClientInactive
	}

	select {
	case c.send <- update:
		return nil
	case <-c.done:
		return ErrClientInactive
	default:
		// Channel is full, drop the update to avoid blocking ingest.
		log.Warn().Str("client_id", c.id).Msg("WebSocket client send channel full, dropping update")
		return errors.New("send channel full")
	}
}

func (c *Client) Close() error {
	if !c.active {
		return nil
	}

	c.active = false
	close(c.done)

	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}

func (c *Client) IsActive() bool {
	return c.active
}

// HandleConnection blocks until the connection is closed.
func (c *Client) HandleConnection() {
	defer c.Close()

	<-c.done
}

func (c *Client) readPump() {
	defer func() {
		c.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		select {
		case <-c.done:
			return
		default:
			_, _, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Error().Err(err).Str("client_id", c.id).Msg("Unexpected WebSocket close error")
				}
				return
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case update, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			data, err := json.Marshal(update)
			if err != nil {
				log.Error().Err(err).Str("client_id", c.id).Msg("Failed to marshal WebSocket update")
				w.Close()
				continue
			}

			w.Write(data)

			// Flush any queued updates in the same frame.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte("\n"))
				queued := <-c.send
				queuedData, err := json.Marshal(queued)
				if err != nil {
					log.Error().Err(err).Str("client_id", c.id).Msg("Failed to marshal queued WebSocket update")
					continue
				}
				w.Write(queuedData)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}
