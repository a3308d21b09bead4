package main

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/coder/websocket"

	"github.com/marben/mandelview/viewer"
)

// dial connects to a server given as tcp://host:port or ws(s)://host:port/path.
// A bare host:port is treated as tcp.
func dial(ctx context.Context, addr string) (net.Conn, error) {
	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		return (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	}
	switch u.Scheme {
	case "tcp":
		return (&net.Dialer{}).DialContext(ctx, "tcp", u.Host)
	case "ws", "wss":
		c, _, err := websocket.Dial(ctx, addr, nil)
		if err != nil {
			return nil, err
		}
		// a frame's image can arrive as one websocket message
		c.SetReadLimit(viewer.MaxMessageSize)
		return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
	}
	return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
}
