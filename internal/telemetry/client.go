package telemetry

import (
	"context"
	"fmt"
	"time"

	pb "github.com/kckern/DaylightStation-sub009/gen/fitness"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// Client wraps the gRPC connection to the telemetry bridge service, which
// owns device transport and roster resolution. The engine never sees the
// wire format — only Sample values.
type Client struct {
	conn   *grpc.ClientConn
	client pb.TelemetryBridgeClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the telemetry bridge gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewTelemetryBridgeClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.TelemetryBridgeClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region fetch
// FetchSnapshot retrieves the latest per-participant samples and roster.
func (c *Client) FetchSnapshot(ctx context.Context, sessionID string) (Snapshot, error) {
	resp, err := c.client.GetSnapshot(ctx, &pb.SnapshotRequest{SessionId: sessionID})
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot rpc: %w", err)
	}

	samples := make([]Sample, len(resp.Samples))
	for i, s := range resp.Samples {
		samples[i] = Sample{
			ParticipantID: s.ParticipantId,
			HeartRate:     int(s.HeartRate),
			At:            time.UnixMilli(s.UnixMillis),
		}
	}
	return Snapshot{Samples: samples, Roster: resp.Roster}, nil
}

// #endregion fetch

// #region roster
// ResolveRoster fetches just the roster membership for a session.
func (c *Client) ResolveRoster(ctx context.Context, sessionID string) ([]string, error) {
	resp, err := c.client.ResolveRoster(ctx, &pb.RosterRequest{SessionId: sessionID})
	if err != nil {
		return nil, fmt.Errorf("roster rpc: %w", err)
	}
	return resp.ParticipantIds, nil
}

// #endregion roster
