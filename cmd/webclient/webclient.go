//go:build js && wasm

// webclient.go is a WASM web client for the Mandelbrot viewer server.
// It connects over WebSocket, sends key presses as navigation commands, and draws every frame it gets back.

package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/viewer"
)

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect to server via WebSocket
	logScreenf("Connecting to viewer server at %s...", websocketUrl)
	websocket := js.Global().Get("WebSocket").New(websocketUrl)

	// Step 3: Set up IRPC endpoint and Viewer client
	// Closing the endpoint closes the websocket as well
	endpoint := irpc.NewEndpoint(NewWebsocketReadWriteCloser(websocket))
	defer endpoint.Close()
	remote, err := mandel.NewViewerIrpcClient(endpoint)
	if err != nil {
		logFatalf("Failed to create Viewer client: %v", err)
	}
	client := viewer.NewClient(remote)

	// Step 4: Key presses become commands; the first frame is requested right away
	cmds := make(chan string, 16)
	cmds <- "frame"
	listenKeys(cmds)

	// Step 5: Every command is answered by exactly one frame
	if err := commandLoop(client, cmds); err != nil {
		logScreenf("FATAL: %v", err)
	}
}

// commandLoop sends commands until one fails and draws every frame it gets back.
func commandLoop(client *viewer.Client, cmds <-chan string) error {
	for cmd := range cmds {
		f, err := client.Do(context.Background(), cmd)
		if err != nil {
			return err
		}
		img, err := f.Image()
		if err != nil {
			return err
		}
		displayImage(img)
		hudSetViewport(fmt.Sprintf("%s  (%dx%d in %s)", f.Viewport, f.Width, f.Height, f.Elapsed))
	}
	return nil
}

// keyCommands maps KeyboardEvent.key values to viewer commands.
var keyCommands = map[string]string{
	"ArrowLeft":  "left",
	"ArrowRight": "right",
	"ArrowUp":    "up",
	"ArrowDown":  "down",
	"j":          "j",
	"J":          "j",
	"k":          "k",
	"K":          "k",
	"r":          "reset",
}

// listenKeys forwards navigation keys to cmds. Keys pressed while the
// queue is full are dropped.
func listenKeys(cmds chan<- string) {
	js.Global().Get("document").Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		cmd, ok := keyCommands[ev.Get("key").String()]
		if !ok {
			return nil
		}
		ev.Call("preventDefault")
		select {
		case cmds <- cmd:
		default:
		}
		return nil
	}))
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetViewport shows the current viewport above the canvas.
func hudSetViewport(s string) {
	js.Global().Get("document").Call("getElementById", "viewport").Set("textContent", s)
}
