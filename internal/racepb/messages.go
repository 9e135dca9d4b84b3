// Package racepb holds the Go types for the wire messages described by
// proto/race.proto. It is hand-maintained rather than protoc-generated,
// since the build environment this was written in has no protoc available;
// it follows the pre-APIv2 protoc-gen-go shape (Reset/String/ProtoMessage
// plus "protobuf:..." struct tags) that github.com/golang/protobuf's legacy
// message support still loads correctly via reflection over those tags
// (internal/impl's "legacy message wrapping" — no raw file descriptor is
// required for this path). Regenerate mechanically from proto/race.proto
// once protoc is available; until then, keep this file and the .proto in
// sync by hand.
package racepb

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"
)

// Point is a 2D world-space coordinate.
type Point struct {
	X float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
}

func (m *Point) Reset()         { *m = Point{} }
func (m *Point) String() string { return fmt.Sprintf("%+v", *m) }
func (*Point) ProtoMessage()    {}

// Tile_Kind mirrors internal/track.Kind.
type Tile_Kind int32

const (
	Tile_OUTSIDE Tile_Kind = 0
	Tile_INSIDE  Tile_Kind = 1
	Tile_BORDER  Tile_Kind = 2
)

// Tile mirrors internal/track.Tile: one compiled grid cell.
type Tile struct {
	Kind               Tile_Kind `protobuf:"varint,1,opt,name=kind,proto3,enum=race.Tile_Kind" json:"kind,omitempty"`
	ContainsFinishLine bool      `protobuf:"varint,2,opt,name=contains_finish_line,json=containsFinishLine,proto3" json:"contains_finish_line,omitempty"`
	SegmentStart       *Point    `protobuf:"bytes,3,opt,name=segment_start,json=segmentStart,proto3" json:"segment_start,omitempty"`
	SegmentEnd         *Point    `protobuf:"bytes,4,opt,name=segment_end,json=segmentEnd,proto3" json:"segment_end,omitempty"`
}

func (m *Tile) Reset()         { *m = Tile{} }
func (m *Tile) String() string { return fmt.Sprintf("%+v", *m) }
func (*Tile) ProtoMessage()    {}

// TrackInfo is the full compiled track, serialized for a client.
type TrackInfo struct {
	Width           int32   `protobuf:"varint,1,opt,name=width,proto3" json:"width,omitempty"`
	Height          int32   `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	TileSize        float64 `protobuf:"fixed64,3,opt,name=tile_size,json=tileSize,proto3" json:"tile_size,omitempty"`
	Tiles           []*Tile `protobuf:"bytes,4,rep,name=tiles,proto3" json:"tiles,omitempty"`
	FinishLineStart *Point  `protobuf:"bytes,5,opt,name=finish_line_start,json=finishLineStart,proto3" json:"finish_line_start,omitempty"`
	FinishLineEnd   *Point  `protobuf:"bytes,6,opt,name=finish_line_end,json=finishLineEnd,proto3" json:"finish_line_end,omitempty"`
	Laps            int32   `protobuf:"varint,7,opt,name=laps,proto3" json:"laps,omitempty"`
}

func (m *TrackInfo) Reset()         { *m = TrackInfo{} }
func (m *TrackInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*TrackInfo) ProtoMessage()    {}

// SimulationTick is one entry of a run's history.
type SimulationTick struct {
	Pos   *Point  `protobuf:"bytes,1,opt,name=pos,proto3" json:"pos,omitempty"`
	Angle float64 `protobuf:"fixed64,2,opt,name=angle,proto3" json:"angle,omitempty"`
	Speed float64 `protobuf:"fixed64,3,opt,name=speed,proto3" json:"speed,omitempty"`
}

func (m *SimulationTick) Reset()         { *m = SimulationTick{} }
func (m *SimulationTick) String() string { return fmt.Sprintf("%+v", *m) }
func (*SimulationTick) ProtoMessage()    {}

// RunResult is the final score of a submission.
type RunResult struct {
	Successful bool  `protobuf:"varint,1,opt,name=successful,proto3" json:"successful,omitempty"`
	Time       int32 `protobuf:"varint,2,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *RunResult) Reset()         { *m = RunResult{} }
func (m *RunResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunResult) ProtoMessage()    {}

// SubmitRunRequest carries a user's controller program source.
type SubmitRunRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Source   string `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
}

func (m *SubmitRunRequest) Reset()         { *m = SubmitRunRequest{} }
func (m *SubmitRunRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubmitRunRequest) ProtoMessage()    {}

// SubmitRunReply streams one of a tick or, on the final message, a result.
type SubmitRunReply struct {
	// Payload is exactly one of Tick or Result, mirroring the .proto oneof;
	// a hand-maintained struct uses two nilable pointer fields instead of a
	// generated interface wrapper.
	Tick   *SimulationTick `protobuf:"bytes,1,opt,name=tick,proto3" json:"tick,omitempty"`
	Result *RunResult      `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *SubmitRunReply) Reset()         { *m = SubmitRunReply{} }
func (m *SubmitRunReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubmitRunReply) ProtoMessage()    {}

type GetTrackRequest struct{}

func (m *GetTrackRequest) Reset()         { *m = GetTrackRequest{} }
func (m *GetTrackRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTrackRequest) ProtoMessage()    {}

type LeaderboardRequest struct {
	N int32 `protobuf:"varint,1,opt,name=n,proto3" json:"n,omitempty"`
}

func (m *LeaderboardRequest) Reset()         { *m = LeaderboardRequest{} }
func (m *LeaderboardRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LeaderboardRequest) ProtoMessage()    {}

type LeaderboardEntry struct {
	Username   string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Successful bool   `protobuf:"varint,2,opt,name=successful,proto3" json:"successful,omitempty"`
	Time       int32  `protobuf:"varint,3,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *LeaderboardEntry) Reset()         { *m = LeaderboardEntry{} }
func (m *LeaderboardEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*LeaderboardEntry) ProtoMessage()    {}

type LeaderboardReply struct {
	Entries []*LeaderboardEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *LeaderboardReply) Reset()         { *m = LeaderboardReply{} }
func (m *LeaderboardReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*LeaderboardReply) ProtoMessage()    {}

// every message above satisfies the legacy proto.Message interface; this
// blank var block fails to compile (and so is caught long before any runtime
// codec surprise) if one of them stops doing so.
var (
	_ proto.Message = (*Point)(nil)
	_ proto.Message = (*Tile)(nil)
	_ proto.Message = (*TrackInfo)(nil)
	_ proto.Message = (*SimulationTick)(nil)
	_ proto.Message = (*RunResult)(nil)
	_ proto.Message = (*SubmitRunRequest)(nil)
	_ proto.Message = (*SubmitRunReply)(nil)
	_ proto.Message = (*GetTrackRequest)(nil)
	_ proto.Message = (*LeaderboardRequest)(nil)
	_ proto.Message = (*LeaderboardEntry)(nil)
	_ proto.Message = (*LeaderboardReply)(nil)
)
