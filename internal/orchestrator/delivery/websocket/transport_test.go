package websocket

import (
	"errors"
	"testing"
	"time"
)

func TestTransport_SendAndClose(t *testing.T) {
	tr := newTransport(nil, 1, time.Second)

	if !tr.Deliverable() {
		t.Fatal("new transport should be deliverable")
	}
	if err := tr.Send([]byte("a")); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if err := tr.Send([]byte("b")); !errors.Is(err, ErrSendBufferFull) {
		t.Errorf("expected ErrSendBufferFull, got %v", err)
	}

	_ = tr.Close()
	_ = tr.Close()
	if tr.Deliverable() {
		t.Error("closed transport should not be deliverable")
	}
	if err := tr.Send([]byte("c")); !errors.Is(err, ErrTransportClosed) {
		t.Errorf("expected ErrTransportClosed, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	tcs := []struct {
		name    string
		input   string
		want    clientMessage
		wantErr bool
	}{
		{name: "auth", input: `{"type":"auth","userId":"u","sessionId":"s"}`, want: authRequest{UserID: "u", SessionID: "s"}},
		{name: "status", input: `{"type":"agent_status"}`, want: agentStatusRequest{}},
		{name: "unknown", input: `{"type":"dance"}`, want: unknownRequest{Type: "dance"}},
		{name: "missing type", input: `{"content":"hi"}`, wantErr: true},
		{name: "not json", input: `hello`, wantErr: true},
		{name: "bad field", input: `{"type":"chat","content":42}`, wantErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decode([]byte(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("decode() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestRateLimiter_BurstFloor(t *testing.T) {
	rl := newRateLimiter(5)
	if rl.burst != 1 {
		t.Fatalf("expected burst 1, got %d", rl.burst)
	}
	if err := rl.Allow("c1"); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	if err := rl.Allow("c1"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
	if err := rl.Allow("c2"); err != nil {
		t.Errorf("other connections have their own bucket: %v", err)
	}
}
