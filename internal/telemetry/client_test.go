package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/kckern/DaylightStation-sub009/gen/fitness"
	"google.golang.org/grpc"
)

// #region mock
type mockBridgeService struct {
	pb.TelemetryBridgeClient

	snapshotResp *pb.SnapshotResponse
	snapshotErr  error

	rosterResp *pb.RosterResponse
	rosterErr  error
}

func (m *mockBridgeService) GetSnapshot(_ context.Context, _ *pb.SnapshotRequest, _ ...grpc.CallOption) (*pb.SnapshotResponse, error) {
	return m.snapshotResp, m.snapshotErr
}

func (m *mockBridgeService) ResolveRoster(_ context.Context, _ *pb.RosterRequest, _ ...grpc.CallOption) (*pb.RosterResponse, error) {
	return m.rosterResp, m.rosterErr
}

// #endregion mock

// #region constructor-tests
func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockBridgeService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close without connection must be a no-op: %v", err)
	}
}

// #endregion constructor-tests

// #region fetch-tests
func TestFetchSnapshotSuccess(t *testing.T) {
	mock := &mockBridgeService{
		snapshotResp: &pb.SnapshotResponse{
			Samples: []*pb.ParticipantSample{
				{ParticipantId: "alice", HeartRate: 132, UnixMillis: 1700000000000},
				{ParticipantId: "bob", HeartRate: 0, UnixMillis: 1700000000000},
			},
			Roster: []string{"alice", "bob"},
		},
	}
	c := NewClientWithService(mock)

	snap, err := c.FetchSnapshot(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(snap.Samples))
	}
	if snap.Samples[0].ParticipantID != "alice" || snap.Samples[0].HeartRate != 132 {
		t.Fatalf("unexpected sample: %+v", snap.Samples[0])
	}
	if !snap.Samples[0].At.Equal(time.UnixMilli(1700000000000)) {
		t.Fatalf("unexpected timestamp: %v", snap.Samples[0].At)
	}
	if snap.Samples[0].HasRate() == false {
		t.Fatal("positive rate must report HasRate")
	}
	if snap.Samples[1].HasRate() {
		t.Fatal("zero rate means a silent device, not a reading")
	}
	if len(snap.Roster) != 2 {
		t.Fatalf("expected roster of 2, got %v", snap.Roster)
	}
}

func TestFetchSnapshotError(t *testing.T) {
	c := NewClientWithService(&mockBridgeService{snapshotErr: errors.New("bridge down")})

	_, err := c.FetchSnapshot(context.Background(), "session-1")
	if err == nil {
		t.Fatal("expected error")
	}
}

// #endregion fetch-tests

// #region roster-tests
func TestResolveRoster(t *testing.T) {
	c := NewClientWithService(&mockBridgeService{
		rosterResp: &pb.RosterResponse{ParticipantIds: []string{"alice"}},
	})

	ids, err := c.ResolveRoster(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "alice" {
		t.Fatalf("unexpected roster: %v", ids)
	}
}

func TestResolveRosterError(t *testing.T) {
	c := NewClientWithService(&mockBridgeService{rosterErr: errors.New("bridge down")})

	if _, err := c.ResolveRoster(context.Background(), "session-1"); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion roster-tests
