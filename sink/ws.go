package sink

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gobwas/ws"
)

const (
	defaultWSQueue        = 16
	defaultWSWriteTimeout = 2 * time.Second
)

// WSSink broadcasts frames as text messages to every connected websocket
// client. Each client has its own queue and writer goroutine, so Publish
// never waits on the network. A client whose queue is full or whose write
// times out is dropped.
type WSSink struct {
	// Queue is the per-client backlog in messages.
	Queue int
	// WriteTimeout bounds a single frame write.
	WriteTimeout time.Duration

	mu      sync.Mutex
	clients map[*wsClient]struct{}
	server  *http.Server
}

type wsMessage struct {
	op      ws.OpCode
	payload []byte
}

type wsClient struct {
	conn net.Conn
	q    chan wsMessage
	done chan struct{}
	once sync.Once
}

func NewWSSink() *WSSink {
	return &WSSink{
		Queue:        defaultWSQueue,
		WriteTimeout: defaultWSWriteTimeout,
		clients:      make(map[*wsClient]struct{}),
	}
}

// Listen serves the websocket endpoint at addr+path in the background.
func (s *WSSink) Listen(addr, path string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("sink: ws listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle(path, s)
	s.server = &http.Server{Handler: mux}
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("sink: ws serve: %v", err)
		}
	}()
	log.Printf("sink: ws listening on %s%s", ln.Addr(), path)
	return nil
}

func (s *WSSink) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.Printf("sink: ws upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	queue := s.Queue
	if queue <= 0 {
		queue = defaultWSQueue
	}
	c := &wsClient{
		conn: conn,
		q:    make(chan wsMessage, queue),
		done: make(chan struct{}),
	}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	go s.readHandler(c)
	go s.writeHandler(c)
}

// readHandler owns the client's lifetime. Pings are answered and a close is
// echoed through the writer so only one goroutine writes to the conn.
func (s *WSSink) readHandler(c *wsClient) {
	defer s.drop(c)
	for {
		f, err := ws.ReadFrame(c.conn)
		if err != nil {
			return
		}
		if f.Header.Masked {
			ws.Cipher(f.Payload, f.Header.Mask, 0)
		}
		switch f.Header.OpCode {
		case ws.OpPing:
			s.enqueue(c, wsMessage{op: ws.OpPong, payload: f.Payload})
		case ws.OpClose:
			s.enqueue(c, wsMessage{op: ws.OpClose, payload: f.Payload})
			return
		}
	}
}

func (s *WSSink) writeHandler(c *wsClient) {
	timeout := s.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWSWriteTimeout
	}
	for {
		select {
		case <-c.done:
			return
		case m := <-c.q:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
			if err := ws.WriteFrame(c.conn, ws.NewFrame(m.op, true, m.payload)); err != nil {
				log.Printf("sink: ws drop %s: %v", c.conn.RemoteAddr(), err)
				s.drop(c)
				return
			}
			if m.op == ws.OpClose {
				s.drop(c)
				return
			}
		}
	}
}

// enqueue reports false when the client could not take the message, in
// which case it has been dropped.
func (s *WSSink) enqueue(c *wsClient, m wsMessage) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.q <- m:
		return true
	default:
		log.Printf("sink: ws drop %s: queue full", c.conn.RemoteAddr())
		s.drop(c)
		return false
	}
}

func (s *WSSink) drop(c *wsClient) {
	c.once.Do(func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		close(c.done)
		_ = c.conn.Close()
	})
}

// Clients returns the number of connected clients.
func (s *WSSink) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *WSSink) Publish(f Frame) error {
	b, err := Encode(f)
	if err != nil {
		return fmt.Errorf("sink: encode frame %d: %w", f.Seq, err)
	}

	s.mu.Lock()
	clients := make([]*wsClient, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		s.enqueue(c, wsMessage{op: ws.OpText, payload: b})
	}
	return nil
}

func (s *WSSink) Close() error {
	s.mu.Lock()
	clients := make([]*wsClient, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		s.drop(c)
	}
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}
