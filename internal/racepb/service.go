package racepb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// RaceServiceClient is the client API for RaceService.
type RaceServiceClient interface {
	GetTrack(ctx context.Context, in *GetTrackRequest, opts ...grpc.CallOption) (*TrackInfo, error)
	SubmitRun(ctx context.Context, in *SubmitRunRequest, opts ...grpc.CallOption) (RaceService_SubmitRunClient, error)
	GetLeaderboard(ctx context.Context, in *LeaderboardRequest, opts ...grpc.CallOption) (*LeaderboardReply, error)
}

type raceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRaceServiceClient builds a client for RaceService over cc.
func NewRaceServiceClient(cc grpc.ClientConnInterface) RaceServiceClient {
	return &raceServiceClient{cc}
}

func (c *raceServiceClient) GetTrack(ctx context.Context, in *GetTrackRequest, opts ...grpc.CallOption) (*TrackInfo, error) {
	out := new(TrackInfo)
	if err := c.cc.Invoke(ctx, "/race.RaceService/GetTrack", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *raceServiceClient) SubmitRun(ctx context.Context, in *SubmitRunRequest, opts ...grpc.CallOption) (RaceService_SubmitRunClient, error) {
	stream, err := c.cc.NewStream(ctx, &raceServiceSubmitRunStreamDesc, "/race.RaceService/SubmitRun", opts...)
	if err != nil {
		return nil, err
	}
	x := &raceServiceSubmitRunClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// RaceService_SubmitRunClient is the stream returned by SubmitRun.
type RaceService_SubmitRunClient interface {
	Recv() (*SubmitRunReply, error)
	grpc.ClientStream
}

type raceServiceSubmitRunClient struct {
	grpc.ClientStream
}

func (x *raceServiceSubmitRunClient) Recv() (*SubmitRunReply, error) {
	m := new(SubmitRunReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *raceServiceClient) GetLeaderboard(ctx context.Context, in *LeaderboardRequest, opts ...grpc.CallOption) (*LeaderboardReply, error) {
	out := new(LeaderboardReply)
	if err := c.cc.Invoke(ctx, "/race.RaceService/GetLeaderboard", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RaceServiceServer is the server API for RaceService.
type RaceServiceServer interface {
	GetTrack(context.Context, *GetTrackRequest) (*TrackInfo, error)
	SubmitRun(*SubmitRunRequest, RaceService_SubmitRunServer) error
	GetLeaderboard(context.Context, *LeaderboardRequest) (*LeaderboardReply, error)
}

// UnimplementedRaceServiceServer can be embedded in a server implementation
// to satisfy RaceServiceServer for methods not yet overridden.
type UnimplementedRaceServiceServer struct{}

func (UnimplementedRaceServiceServer) GetTrack(context.Context, *GetTrackRequest) (*TrackInfo, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTrack not implemented")
}
func (UnimplementedRaceServiceServer) SubmitRun(*SubmitRunRequest, RaceService_SubmitRunServer) error {
	return status.Error(codes.Unimplemented, "method SubmitRun not implemented")
}
func (UnimplementedRaceServiceServer) GetLeaderboard(context.Context, *LeaderboardRequest) (*LeaderboardReply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLeaderboard not implemented")
}

// RaceService_SubmitRunServer is the stream a server-side SubmitRun handler
// sends replies on.
type RaceService_SubmitRunServer interface {
	Send(*SubmitRunReply) error
	grpc.ServerStream
}

type raceServiceSubmitRunServer struct {
	grpc.ServerStream
}

func (x *raceServiceSubmitRunServer) Send(m *SubmitRunReply) error {
	return x.ServerStream.SendMsg(m)
}

func raceServiceGetTrackHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTrackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RaceServiceServer).GetTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/race.RaceService/GetTrack"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RaceServiceServer).GetTrack(ctx, req.(*GetTrackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func raceServiceSubmitRunHandler(srv any, stream grpc.ServerStream) error {
	m := new(SubmitRunRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RaceServiceServer).SubmitRun(m, &raceServiceSubmitRunServer{stream})
}

func raceServiceGetLeaderboardHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LeaderboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RaceServiceServer).GetLeaderboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/race.RaceService/GetLeaderboard"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RaceServiceServer).GetLeaderboard(ctx, req.(*LeaderboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var raceServiceSubmitRunStreamDesc = grpc.StreamDesc{
	StreamName:    "SubmitRun",
	Handler:       raceServiceSubmitRunHandler,
	ServerStreams: true,
}

// RaceService_ServiceDesc is the grpc.ServiceDesc for RaceService, wired the
// same way yatahunt-airaces/server registers CarService.
var RaceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "race.RaceService",
	HandlerType: (*RaceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTrack", Handler: raceServiceGetTrackHandler},
		{MethodName: "GetLeaderboard", Handler: raceServiceGetLeaderboardHandler},
	},
	Streams:  []grpc.StreamDesc{raceServiceSubmitRunStreamDesc},
	Metadata: "race.proto",
}

// RegisterRaceServiceServer registers srv on s.
func RegisterRaceServiceServer(s grpc.ServiceRegistrar, srv RaceServiceServer) {
	s.RegisterService(&RaceService_ServiceDesc, srv)
}
