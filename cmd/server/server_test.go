package main

import (
	"context"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/config"
	"github.com/marben/mandelview/viewer"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Render.Width, cfg.Render.Height = 16, 16
	cfg.Render.MaxIter = 30
	return cfg
}

func TestFrameHandler(t *testing.T) {
	srv := newServer(testConfig())

	rec := httptest.NewRecorder()
	frameHandler(srv)(rec, httptest.NewRequest(http.MethodGet, "/frame.png?w=10&h=8&zoom=2&cx=0.5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	rec = httptest.NewRecorder()
	frameHandler(srv)(rec, httptest.NewRequest(http.MethodGet, "/frame.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	img, err = png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	for _, q := range []string{"zoom=0", "zoom=-1", "w=abc", "h=0", "cx=nope", "w=100000", "w=33", "h=33"} {
		rec = httptest.NewRecorder()
		frameHandler(srv)(rec, httptest.NewRequest(http.MethodGet, "/frame.png?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

// dialViewer opens an irpc endpoint over conn and wraps it in a viewer client.
func dialViewer(t *testing.T, conn net.Conn) *viewer.Client {
	t.Helper()
	ep := irpc.NewEndpoint(conn)
	t.Cleanup(func() { ep.Close() })
	remote, err := mandel.NewViewerIrpcClient(ep)
	require.NoError(t, err)
	return viewer.NewClient(remote)
}

func TestTCPSession(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := newServer(testConfig())
	is := srv.irpcServer()
	done := make(chan error, 1)
	go func() { done <- serveListener(is, l) }()

	conn, err := net.Dial("tcp", l.Addr().String())
	require.NoError(t, err)

	c := dialViewer(t, conn)
	f, err := c.Do(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, mandel.DefaultViewport.Apply(mandel.ZoomOut), f.Viewport)
	assert.Equal(t, 32, f.Width)
	assert.Eventually(t, func() bool { return srv.conns.Load() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, is.Close())
	require.NoError(t, <-done)
	assert.Eventually(t, func() bool { return srv.conns.Load() == 0 }, time.Second, 10*time.Millisecond)
}

func TestWebsocketSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newServer(testConfig())
	l := NewWSListener(ctx, "test/ws")
	hs := httptest.NewServer(websocketHandler(l))
	defer hs.Close()
	is := srv.irpcServer()
	defer is.Close()
	go serveListener(is, l)

	ws, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(hs.URL, "http"), nil)
	require.NoError(t, err)
	ws.SetReadLimit(viewer.MaxMessageSize)

	c := dialViewer(t, websocket.NetConn(ctx, ws, websocket.MessageBinary))
	f, err := c.Do(ctx, "j")
	require.NoError(t, err)
	assert.Equal(t, 2.0, f.Viewport.Zoom)

	f, err = c.Do(ctx, "left")
	require.NoError(t, err)
	assert.Equal(t, mandel.Viewport{CenterX: 1.5, CenterY: 0, Zoom: 2}, f.Viewport)
	img, err := f.Image()
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestServeListenerClosedIsClean(t *testing.T) {
	l := NewWSListener(context.Background(), "x/ws")
	require.NoError(t, l.Close())
	assert.NoError(t, serveListener(irpc.NewServer(), l))
}

func TestSetupFollowsConfig(t *testing.T) {
	srv := newServer(testConfig())
	st := srv.setup()
	assert.Equal(t, mandel.DefaultViewport, st.Start)
	w, h := st.Options.RenderSize()
	assert.Equal(t, [2]int{32, 32}, [2]int{w, h})

	next := testConfig()
	next.Render.Width = 4
	next.Viewport.Zoom = 2
	srv.cfg.Store(&next)
	st = srv.setup()
	assert.Equal(t, 2.0, st.Start.Zoom)
	w, _ = st.Options.RenderSize()
	assert.Equal(t, 8, w)
}

func TestWSListenerClose(t *testing.T) {
	l := NewWSListener(context.Background(), "x/ws")
	require.NoError(t, l.Close())
	_, err := l.Accept()
	assert.ErrorIs(t, err, net.ErrClosed)
	assert.Equal(t, "ws", l.Addr().Network())
	assert.Equal(t, "x/ws", l.Addr().String())
}

func TestServerConfigSwap(t *testing.T) {
	srv := newServer(testConfig())
	next := testConfig()
	next.Render.Width = 4
	srv.cfg.Store(&next)
	assert.Equal(t, 4, srv.config().Render.Width)
}
