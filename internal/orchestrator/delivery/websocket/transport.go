package websocket

import (
	"sync"
	"time"

	gws "github.com/gorilla/websocket"
)

// transport owns one websocket connection. Send only queues; a single writer
// goroutine drains the queue.
type transport struct {
	conn         *gws.Conn
	send         chan []byte
	done         chan struct{}
	writeTimeout time.Duration

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

func newTransport(conn *gws.Conn, buffer int, writeTimeout time.Duration) *transport {
	return &transport{
		conn:         conn,
		send:         make(chan []byte, buffer),
		done:         make(chan struct{}),
		writeTimeout: writeTimeout,
	}
}

func (t *transport) Send(payload []byte) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return ErrTransportClosed
	}
	select {
	case t.send <- payload:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (t *transport) Deliverable() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return !t.closed
}

// Close stops the writer, which sends a close frame and closes the socket.
func (t *transport) Close() error {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		close(t.done)
	})
	return nil
}

// writePump is the only goroutine that writes to conn.
func (t *transport) writePump() {
	defer t.conn.Close()
	for {
		select {
		case payload := <-t.send:
			_ = t.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout))
			if err := t.conn.WriteMessage(gws.TextMessage, payload); err != nil {
				t.Close()
				return
			}
		case <-t.done:
			t.drain()
			deadline := time.Now().Add(t.writeTimeout)
			_ = t.conn.WriteControl(gws.CloseMessage, gws.FormatCloseMessage(gws.CloseNormalClosure, ""), deadline)
			return
		}
	}
}

// drain flushes payloads queued before Close.
func (t *transport) drain() {
	for {
		select {
		case payload := <-t.send:
			_ = t.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout))
			if err := t.conn.WriteMessage(gws.TextMessage, payload); err != nil {
				return
			}
		default:
			return
		}
	}
}
