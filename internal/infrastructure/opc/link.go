package opc

import (
	"context"
	"fmt"

	"github.com/gopcua/opcua"
	"github.com/gopcua/opcua/ua"

	"bottle-gate/internal/domain/port"
)

// Link связь с контроллером по OPC UA
type Link struct {
	client *opcua.Client
}

// Connect устанавливает соединение с OPC UA сервером контроллера.
func Connect(ctx context.Context, endpoint string) (*Link, error) {
	client, err := opcua.NewClient(endpoint, opcua.SecurityMode(ua.MessageSecurityModeNone))
	if err != nil {
		return nil, fmt.Errorf("create opc ua client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", endpoint, err)
	}

	return &Link{client: client}, nil
}

// ReadBool читает булев узел контроллера
func (l *Link) ReadBool(ctx context.Context, nodeID string) (bool, error) {
	v, err := l.readValue(ctx, nodeID)
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

// ReadInt читает целочисленный узел контроллера
func (l *Link) ReadInt(ctx context.Context, nodeID string) (int64, error) {
	v, err := l.readValue(ctx, nodeID)
	if err != nil {
		return 0, err
	}
	return v.Int(), nil
}

// WriteBool записывает булев узел контроллера
func (l *Link) WriteBool(ctx context.Context, nodeID string, value bool) error {
	id, err := ua.ParseNodeID(nodeID)
	if err != nil {
		return fmt.Errorf("parse node id %q: %w", nodeID, err)
	}

	v, err := ua.NewVariant(value)
	if err != nil {
		return fmt.Errorf("build variant for %q: %w", nodeID, err)
	}

	req := &ua.WriteRequest{
		NodesToWrite: []*ua.WriteValue{
			{
				NodeID:      id,
				AttributeID: ua.AttributeIDValue,
				Value: &ua.DataValue{
					EncodingMask: ua.DataValueValue,
					Value:        v,
				},
			},
		},
	}

	resp, err := l.client.Write(ctx, req)
	if err != nil {
		return fmt.Errorf("write %q: %w", nodeID, err)
	}
	if len(resp.Results) == 0 {
		return fmt.Errorf("write %q: empty response", nodeID)
	}
	if resp.Results[0] != ua.StatusOK {
		return fmt.Errorf("write %q: status %v", nodeID, resp.Results[0])
	}

	return nil
}

// Close разрывает соединение с контроллером
func (l *Link) Close(ctx context.Context) error {
	return l.client.Close(ctx)
}

func (l *Link) readValue(ctx context.Context, nodeID string) (*ua.Variant, error) {
	id, err := ua.ParseNodeID(nodeID)
	if err != nil {
		return nil, fmt.Errorf("parse node id %q: %w", nodeID, err)
	}

	req := &ua.ReadRequest{
		NodesToRead: []*ua.ReadValueID{
			{NodeID: id, AttributeID: ua.AttributeIDValue},
		},
	}

	resp, err := l.client.Read(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", nodeID, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("read %q: empty response", nodeID)
	}

	result := resp.Results[0]
	if result.Status != ua.StatusOK {
		return nil, fmt.Errorf("read %q: status %v", nodeID, result.Status)
	}
	if result.Value == nil {
		return nil, fmt.Errorf("read %q: no value", nodeID)
	}

	return result.Value, nil
}

// Проверка реализации интерфейса
var _ port.ControllerLink = (*Link)(nil)
