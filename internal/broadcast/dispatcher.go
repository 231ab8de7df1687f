package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
)

func (d *dispatcher) ToSession(ctx context.Context, sessionID string, payload any) int {
	ids := d.conns.ConnectionsForSession(sessionID)
	if len(ids) == 0 {
		return 0
	}

	data, err := json.Marshal(payload)
	if err != nil {
		d.l.Errorf(ctx, "%s: marshal payload for session %s: %v", LogPrefixToSession, sessionID, err)
		return 0
	}

	delivered := 0
	for _, id := range ids {
		if err := d.send(id, data); err != nil {
			d.l.Warnf(ctx, "%s: connection %s in session %s: %v", LogPrefixToSession, id, sessionID, err)
			continue
		}
		delivered++
	}
	return delivered
}

func (d *dispatcher) ToConnection(ctx context.Context, connID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		d.l.Errorf(ctx, "%s: marshal payload for connection %s: %v", LogPrefixToConnection, connID, err)
		return fmt.Errorf("marshal payload: %w", err)
	}
	if err := d.send(connID, data); err != nil {
		d.l.Warnf(ctx, "%s: connection %s: %v", LogPrefixToConnection, connID, err)
		return err
	}
	return nil
}

// send never lets one connection's failure escape as a panic or block.
func (d *dispatcher) send(connID string, data []byte) (err error) {
	t, ok := d.conns.Transport(connID)
	if !ok {
		return ErrUnknownConnection
	}
	if !t.Deliverable() {
		return ErrNotDeliverable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("send panicked: %v", r)
		}
	}()
	return t.Send(data)
}
