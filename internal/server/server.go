// Package server wraps the simulation core behind the RaceService gRPC
// surface: compile one track at startup, run each submission synchronously
// through internal/sim.Run, stream its history back, and record the outcome
// on a leaderboard. Grounded in yatahunt-airaces/server/server.go's
// CarServer (construction, mutex-guarded shared state) and grpc.go
// (streaming-handler shape), repurposed from a live multiplayer broadcast to
// a single deterministic replay per request.
package server

import (
	"context"
	"log"

	"goracer/internal/controller"
	"goracer/internal/leaderboard"
	"goracer/internal/racepb"
	"goracer/internal/sim"
	"goracer/internal/track"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements racepb.RaceServiceServer.
type Server struct {
	racepb.UnimplementedRaceServiceServer

	track *track.Track
	board *leaderboard.Leaderboard
}

// New builds a Server for the given compiled track.
func New(t *track.Track) *Server {
	return &Server{track: t, board: &leaderboard.Leaderboard{}}
}

// GetTrack returns the compiled track, serialized for a client.
func (s *Server) GetTrack(ctx context.Context, req *racepb.GetTrackRequest) (*racepb.TrackInfo, error) {
	return trackToProto(s.track), nil
}

// SubmitRun parses the submitted controller source, runs it once to
// completion, streams the resulting tick history back, and records the
// outcome on the leaderboard.
func (s *Server) SubmitRun(req *racepb.SubmitRunRequest, stream racepb.RaceService_SubmitRunServer) error {
	program, err := controller.Parse(req.Source)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "parsing controller source: %v", err)
	}

	score, history, err := sim.Run(s.track, program)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "controller error: %v", err)
	}

	for _, state := range history.States {
		tick := &racepb.SubmitRunReply{Tick: &racepb.SimulationTick{
			Pos:   &racepb.Point{X: state.Pos.X, Y: state.Pos.Y},
			Angle: state.Angle,
			Speed: state.Speed,
		}}
		if err := stream.Send(tick); err != nil {
			return err
		}
	}

	if err := stream.Send(&racepb.SubmitRunReply{Result: &racepb.RunResult{
		Successful: score.Successful,
		Time:       int32(score.Time),
	}}); err != nil {
		return err
	}

	s.board.Add(req.Username, req.Source, score)
	log.Printf("run by %q: successful=%v time=%d", req.Username, score.Successful, score.Time)

	return nil
}

// GetLeaderboard returns the top n leaderboard entries.
func (s *Server) GetLeaderboard(ctx context.Context, req *racepb.LeaderboardRequest) (*racepb.LeaderboardReply, error) {
	entries := s.board.TopN(int(req.N))
	reply := &racepb.LeaderboardReply{Entries: make([]*racepb.LeaderboardEntry, len(entries))}
	for i, e := range entries {
		reply.Entries[i] = &racepb.LeaderboardEntry{
			Username:   e.Username,
			Successful: e.Score.Successful,
			Time:       int32(e.Score.Time),
		}
	}
	return reply, nil
}

func kindToProto(k track.Kind) racepb.Tile_Kind {
	switch k {
	case track.Inside:
		return racepb.Tile_INSIDE
	case track.Border:
		return racepb.Tile_BORDER
	default:
		return racepb.Tile_OUTSIDE
	}
}

func trackToProto(t *track.Track) *racepb.TrackInfo {
	tiles := make([]*racepb.Tile, 0, t.Width*t.Height)
	for row := 0; row < t.Height; row++ {
		for col := 0; col < t.Width; col++ {
			tile := t.Grid[row][col]
			pbt := &racepb.Tile{
				Kind:               kindToProto(tile.Kind),
				ContainsFinishLine: tile.ContainsFinishLine,
			}
			if tile.Kind == track.Border {
				pbt.SegmentStart = &racepb.Point{X: tile.Segment[0].X, Y: tile.Segment[0].Y}
				pbt.SegmentEnd = &racepb.Point{X: tile.Segment[1].X, Y: tile.Segment[1].Y}
			}
			tiles = append(tiles, pbt)
		}
	}

	return &racepb.TrackInfo{
		Width:           int32(t.Width),
		Height:          int32(t.Height),
		TileSize:        t.TileSize,
		Tiles:           tiles,
		FinishLineStart: &racepb.Point{X: t.FinishLine[0].X, Y: t.FinishLine[0].Y},
		FinishLineEnd:   &racepb.Point{X: t.FinishLine[1].X, Y: t.FinishLine[1].Y},
		Laps:            int32(t.Laps),
	}
}
