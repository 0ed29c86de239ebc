package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WebSocket implements TerminalBackend over a single gorilla/websocket
// connection served from a gorilla/mux route. Frame bytes (ANSI output) are
// sent as binary messages; inbound binary messages are treated as raw input
// bytes, matching the escape-byte contract Local uses.
type WebSocket struct {
	addr   string
	server *http.Server

	mu       sync.Mutex
	conn     *websocket.Conn
	readCh   chan []byte
	done     chan struct{}
	onResize func(w, h int)
	w, h     int

	// SessionID tags each served backend instance in logs; a fresh one is
	// minted per NewWebSocket rather than per connection, since a WebSocket
	// backend only ever serves one active viewer at a time.
	SessionID string
}

// NewWebSocket constructs a WebSocket backend that will serve its handshake
// route on addr (e.g. ":7890") once Init is called.
func NewWebSocket(addr string, w, h int) *WebSocket {
	return &WebSocket{
		addr:      addr,
		readCh:    make(chan []byte, 64),
		done:      make(chan struct{}),
		w:         w,
		h:         h,
		SessionID: uuid.New().String(),
	}
}

// handshakeInfo is served at GET /handshake: the same discovery role
// Remote's handshake file plays, shaped for an HTTP viewer instead of a
// local file read.
type handshakeInfo struct {
	RenderPath string `json:"render_path"`
	SessionID  string `json:"session_id"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// Init starts an HTTP server with a /ggui/render websocket upgrade route and
// a /handshake discovery route, and blocks until the first viewer connects
// and upgrades.
func (s *WebSocket) Init() (Features, error) {
	router := mux.NewRouter()
	connected := make(chan *websocket.Conn, 1)
	router.HandleFunc("/handshake", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(handshakeInfo{
			RenderPath: "/ggui/render",
			SessionID:  s.SessionID,
			Width:      s.w,
			Height:     s.h,
		})
	})
	router.HandleFunc("/ggui/render", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		select {
		case connected <- conn:
		default:
			conn.Close()
		}
	})

	s.server = &http.Server{Addr: s.addr, Handler: router}
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			report("ggui: websocket backend: %v", err)
		}
	}()

	conn := <-connected
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	report("websocket backend: session %s upgraded %s", s.SessionID, conn.RemoteAddr())

	go s.readLoop(conn)
	go s.pingLoop(conn)

	return ANSIColor | TrueColor | UTF8, nil
}

func (s *WebSocket) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			close(s.done)
			return
		}
		select {
		case s.readCh <- data:
		case <-s.done:
			return
		}
	}
}

func (s *WebSocket) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// WaitForInput blocks up to timeoutMs for an inbound binary message.
func (s *WebSocket) WaitForInput(timeoutMs int) ([]byte, bool) {
	select {
	case data := <-s.readCh:
		return data, true
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return nil, false
	case <-s.done:
		return nil, false
	}
}

// Write sends b as a single binary websocket message.
func (s *WebSocket) Write(b []byte) (int, error) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return 0, fmt.Errorf("websocket backend: no connection")
	}
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Dimensions returns the dimensions the backend was constructed with; a
// real viewport would push updates over a control message and call
// OnResize's handler.
func (s *WebSocket) Dimensions() (int, int) { return s.w, s.h }

// OnResize registers the resize callback.
func (s *WebSocket) OnResize(handler func(w, h int)) { s.onResize = handler }

// Deinit closes the connection and shuts down the HTTP server.
func (s *WebSocket) Deinit() error {
	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.mu.Unlock()
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}
