// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: fitness.proto

package fitness

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TelemetryBridge_GetSnapshot_FullMethodName   = "/fitness.TelemetryBridge/GetSnapshot"
	TelemetryBridge_ResolveRoster_FullMethodName = "/fitness.TelemetryBridge/ResolveRoster"
)

// TelemetryBridgeClient is the client API for TelemetryBridge service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TelemetryBridge is the external collaborator that owns device transport.
// The governor polls it for the latest heart-rate samples and the roster
// collaborator's current membership.
type TelemetryBridgeClient interface {
	GetSnapshot(ctx context.Context, in *SnapshotRequest, opts ...grpc.CallOption) (*SnapshotResponse, error)
	ResolveRoster(ctx context.Context, in *RosterRequest, opts ...grpc.CallOption) (*RosterResponse, error)
}

type telemetryBridgeClient struct {
	cc grpc.ClientConnInterface
}

func NewTelemetryBridgeClient(cc grpc.ClientConnInterface) TelemetryBridgeClient {
	return &telemetryBridgeClient{cc}
}

func (c *telemetryBridgeClient) GetSnapshot(ctx context.Context, in *SnapshotRequest, opts ...grpc.CallOption) (*SnapshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SnapshotResponse)
	err := c.cc.Invoke(ctx, TelemetryBridge_GetSnapshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telemetryBridgeClient) ResolveRoster(ctx context.Context, in *RosterRequest, opts ...grpc.CallOption) (*RosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RosterResponse)
	err := c.cc.Invoke(ctx, TelemetryBridge_ResolveRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TelemetryBridgeServer is the server API for TelemetryBridge service.
// All implementations must embed UnimplementedTelemetryBridgeServer
// for forward compatibility.
//
// TelemetryBridge is the external collaborator that owns device transport.
// The governor polls it for the latest heart-rate samples and the roster
// collaborator's current membership.
type TelemetryBridgeServer interface {
	GetSnapshot(context.Context, *SnapshotRequest) (*SnapshotResponse, error)
	ResolveRoster(context.Context, *RosterRequest) (*RosterResponse, error)
	mustEmbedUnimplementedTelemetryBridgeServer()
}

// UnimplementedTelemetryBridgeServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTelemetryBridgeServer struct{}

func (UnimplementedTelemetryBridgeServer) GetSnapshot(context.Context, *SnapshotRequest) (*SnapshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSnapshot not implemented")
}
func (UnimplementedTelemetryBridgeServer) ResolveRoster(context.Context, *RosterRequest) (*RosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveRoster not implemented")
}
func (UnimplementedTelemetryBridgeServer) mustEmbedUnimplementedTelemetryBridgeServer() {}
func (UnimplementedTelemetryBridgeServer) testEmbeddedByValue()                         {}

// UnsafeTelemetryBridgeServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TelemetryBridgeServer will
// result in compilation errors.
type UnsafeTelemetryBridgeServer interface {
	mustEmbedUnimplementedTelemetryBridgeServer()
}

func RegisterTelemetryBridgeServer(s grpc.ServiceRegistrar, srv TelemetryBridgeServer) {
	// If the following call pancis, it indicates UnimplementedTelemetryBridgeServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TelemetryBridge_ServiceDesc, srv)
}

func _TelemetryBridge_GetSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryBridgeServer).GetSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TelemetryBridge_GetSnapshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelemetryBridgeServer).GetSnapshot(ctx, req.(*SnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelemetryBridge_ResolveRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelemetryBridgeServer).ResolveRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TelemetryBridge_ResolveRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelemetryBridgeServer).ResolveRoster(ctx, req.(*RosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TelemetryBridge_ServiceDesc is the grpc.ServiceDesc for TelemetryBridge service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TelemetryBridge_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fitness.TelemetryBridge",
	HandlerType: (*TelemetryBridgeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSnapshot",
			Handler:    _TelemetryBridge_GetSnapshot_Handler,
		},
		{
			MethodName: "ResolveRoster",
			Handler:    _TelemetryBridge_ResolveRoster_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fitness.proto",
}
