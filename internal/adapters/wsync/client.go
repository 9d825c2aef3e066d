package wsync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"promptbuilder/internal/debug"
	"promptbuilder/internal/domain"
	"promptbuilder/internal/ports"
)

// ErrClosed is returned when publishing on a closed client
var ErrClosed = errors.New("sync client closed")

// Handler receives snapshots published by other windows
type Handler func(snapshot domain.Snapshot)

// Client implements ports.SnapshotChannel over a websocket connection to a Hub
type Client struct {
	conn    *websocket.Conn
	handler Handler

	writeMu sync.Mutex
	done    chan struct{}
	once    sync.Once
}

// Ensure Client implements SnapshotChannel
var _ ports.SnapshotChannel = (*Client)(nil)

// Dial connects to the hub at url. handler is called from the read loop for
// every snapshot received; it may be nil for publish-only clients.
func Dial(ctx context.Context, url string, handler Handler) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sync hub: %w", err)
	}

	c := &Client{
		conn:    conn,
		handler: handler,
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Publish sends the snapshot to the hub
func (c *Client) Publish(ctx context.Context, snapshot domain.Snapshot) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	data, err := domain.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Done is closed when the connection ends
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close sends a close frame and tears down the connection
func (c *Client) Close() error {
	c.writeMu.Lock()
	err := c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	c.writeMu.Unlock()
	if err != nil {
		debug.Log("sync: close frame not sent: %v", err)
	}

	err = c.conn.Close()
	c.once.Do(func() { close(c.done) })
	return err
}

func (c *Client) readLoop() {
	defer c.once.Do(func() { close(c.done) })

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("promptbuilder: sync connection lost: %v", err)
			}
			return
		}

		snapshot, err := domain.DecodeSnapshot(data)
		if err != nil {
			debug.Log("sync: ignoring message: %v", err)
			continue
		}
		if c.handler != nil {
			c.handler(snapshot)
		}
	}
}
