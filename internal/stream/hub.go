package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"sandgarden/internal/sims/sand"

	"github.com/gorilla/websocket"
)

const (
	writeWait     = 2 * time.Second
	commandBuffer = 256
)

// Hub owns a World, steps it at a fixed rate and streams every frame to the
// connected websocket clients. Client commands are queued and applied between
// passes, never during one.
type Hub struct {
	world    *sand.World
	interval time.Duration
	upgrader websocket.Upgrader

	commands chan Command

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	latest  []byte

	paused  bool
	stepOne bool
	frame   Frame
}

// NewHub wraps world. tps <= 0 defaults to 30 passes per second.
func NewHub(world *sand.World, tps int) *Hub {
	if tps <= 0 {
		tps = 30
	}
	return &Hub{
		world:    world,
		interval: time.Second / time.Duration(tps),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		commands: make(chan Command, commandBuffer),
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// ServeHTTP upgrades the request and reads commands until the client leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	h.mu.Lock()
	h.clients[conn] = connMu
	latest := h.latest
	h.mu.Unlock()
	defer h.drop(conn)

	if latest != nil {
		connMu.Lock()
		err := writeFrame(conn, latest)
		connMu.Unlock()
		if err != nil {
			return
		}
	}

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("websocket read error:", err)
			}
			return
		}
		select {
		case h.commands <- cmd:
		default:
			log.Printf("command queue full, dropping %q", cmd.Type)
		}
	}
}

// Run steps the world until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer h.closeAll()

	h.publish()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.drainCommands()
			if !h.paused || h.stepOne {
				h.world.Step()
				h.stepOne = false
			}
			h.publish()
		}
	}
}

// Clients reports the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) drainCommands() {
	for {
		select {
		case cmd := <-h.commands:
			h.apply(cmd)
		default:
			return
		}
	}
}

func (h *Hub) apply(cmd Command) {
	switch cmd.Type {
	case CmdPlace, CmdPaint:
		m, err := sand.ParseMaterial(cmd.Material)
		if err != nil {
			log.Printf("%s: %v", cmd.Type, err)
			return
		}
		if cmd.Type == CmdPlace {
			h.world.Place(cmd.Col, cmd.Row, m)
			return
		}
		h.world.PaintMaterial(cmd.Col, cmd.Row, m)
	case CmdResize:
		if err := h.world.Resize(cmd.Cols, cmd.Rows); err != nil {
			log.Printf("resize %dx%d rejected: %v", cmd.Cols, cmd.Rows, err)
		}
	case CmdReset:
		h.world.Reset(cmd.Seed)
	case CmdPause:
		h.paused = cmd.Paused
	case CmdStep:
		h.stepOne = true
	default:
		log.Printf("unknown command %q", cmd.Type)
	}
}

func (h *Hub) publish() {
	view := h.world.View()
	size := view.Size()
	f := &h.frame
	f.Type = "frame"
	f.Tick = view.Tick()
	f.W, f.H = size.W, size.H
	f.Material, f.Hue, f.Energy = view.AppendLayers(f.Material[:0], f.Hue[:0], f.Energy[:0])
	f.Dropped = h.world.Dropped()
	f.Paused = h.paused

	payload, err := json.Marshal(f)
	if err != nil {
		log.Println("frame encode error:", err)
		return
	}

	h.mu.Lock()
	h.latest = payload
	targets := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for conn, mu := range h.clients {
		targets[conn] = mu
	}
	h.mu.Unlock()

	for conn, mu := range targets {
		mu.Lock()
		err := writeFrame(conn, payload)
		mu.Unlock()
		if err != nil {
			log.Println("websocket write error:", err)
			h.drop(conn)
			conn.Close()
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func writeFrame(conn *websocket.Conn, payload []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
