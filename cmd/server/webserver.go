package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/config"
	"github.com/marben/mandelview/frame"
	"github.com/marben/mandelview/render"
	"github.com/marben/mandelview/viewer"
)

// webServer creates server serving files in the static folder,
// a stateless /frame.png endpoint and a websocket endpoint whose
// connections are handed out by the returned net.Listener.
func webServer(ctx context.Context, cfg config.Server, srv *server) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, cfg.HTTPAddr+"/ws")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("/frame.png", frameHandler(srv))
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	mandel.Logger().Info("http listening", "addr", cfg.HTTPAddr)
	return l, httpServer
}

// websocketHandler handles the http ws endpoint
// if websocket is successfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			mandel.Logger().Warn("websocket accept", "err", err)
			return
		}
		c.SetReadLimit(viewer.MaxMessageSize)

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// frameHandler renders a single image for the viewport in the query string:
// cx, cy, zoom, w, h. Missing values come from the current config, and the
// configured render size is also the largest image it will produce.
func frameHandler(srv *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := srv.config()
		v := cfg.StartViewport()
		maxW, maxH := cfg.SessionOptions().RenderSize()
		width, height := maxW, maxH

		q := r.URL.Query()
		var bad bool
		floatParam := func(name string, dst *float64) {
			if s := q.Get(name); s != "" {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					bad = true
					return
				}
				*dst = f
			}
		}
		intParam := func(name string, dst *int, limit int) {
			if s := q.Get(name); s != "" {
				n, err := strconv.Atoi(s)
				if err != nil || n <= 0 || n > limit {
					bad = true
					return
				}
				*dst = n
			}
		}
		floatParam("cx", &v.CenterX)
		floatParam("cy", &v.CenterY)
		floatParam("zoom", &v.Zoom)
		intParam("w", &width, maxW)
		intParam("h", &height, maxH)
		if bad || !v.Valid() {
			http.Error(w, "bad viewport", http.StatusBadRequest)
			return
		}

		buf := render.New(cfg.RenderOptions()).Render(v, width, height)
		var out bytes.Buffer
		if err := frame.Encode(&out, buf, frame.PNG); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(out.Len()))
		_, _ = w.Write(out.Bytes())
	}
}

// WebsocketListener implements net.Listener
// it's a wrapper around websocket.Conn
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
