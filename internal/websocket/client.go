package websocket

import (
	"context"
	"time"

	ws "github.com/coder/websocket"
)

const (
	outboxSize   = 16
	pingInterval = 30 * time.Second
)

// Client is one connected planner UI. Traffic is one-way: the planner pushes
// toast notifications out, and anything the browser sends back is discarded.
type Client struct {
	hub    *Hub
	conn   *ws.Conn
	outbox chan []byte
}

func NewClient(hub *Hub, conn *ws.Conn) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		outbox: make(chan []byte, outboxSize),
	}
}

// Run registers the client with the hub and blocks until the connection
// drops, then unregisters it.
func (c *Client) Run(ctx context.Context) {
	c.hub.Register(c)
	defer c.hub.Unregister(c)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.deliver(ctx)
	c.drain(ctx)
}

// drain reads and throws away inbound frames until the peer goes away.
// Reading is still required so close frames and pongs are processed.
func (c *Client) drain(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

// deliver writes queued notifications and pings idle connections. It exits
// when the hub closes the outbox or the connection errors.
func (c *Client) deliver(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.outbox:
			if !ok {
				return
			}
			if err := c.conn.Write(ctx, ws.MessageText, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
