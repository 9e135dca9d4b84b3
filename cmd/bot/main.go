// Command bot is a reference AI driver: it dials a running race server,
// fetches the track, submits a small generated controller program, and logs
// the streamed replay as it arrives. Grounded in gocar/main.go's CarClient
// (dial, look-ahead steering arithmetic), adapted from that program's
// continuous multiplayer input loop to this spec's submit-then-watch-replay
// flow — one SubmitRun call streams back a whole run instead of an ongoing
// exchange of per-tick inputs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"goracer/internal/racepb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const username = "gobot"

func getServerAddr() string {
	if addr := os.Getenv("GORACER_ADDR"); addr != "" {
		return addr
	}
	return "localhost:50051"
}

// BotClient wraps a RaceService connection for one submit-and-watch run.
type BotClient struct {
	client racepb.RaceServiceClient
	conn   *grpc.ClientConn
}

func NewBotClient(addr string) (*BotClient, error) {
	log.Printf("Connecting to %s...", addr)
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial failed: %w", err)
	}
	return &BotClient{client: racepb.NewRaceServiceClient(conn), conn: conn}, nil
}

func (b *BotClient) Close() {
	if b.conn != nil {
		b.conn.Close()
	}
}

func (b *BotClient) loadTrack(ctx context.Context) (*racepb.TrackInfo, error) {
	info, err := b.client.GetTrack(ctx, &racepb.GetTrackRequest{})
	if err != nil {
		return nil, fmt.Errorf("GetTrack failed: %w", err)
	}
	log.Printf("loaded track: %dx%d tiles, %d laps", info.Width, info.Height, info.Laps)
	return info, nil
}

// driverProgram is a fixed wall-avoidance controller expressed in the rule
// language internal/controller parses: hug the middle of the fan (the two
// sensors straddling straight-ahead) and steer away from whichever side is
// closing in, otherwise drive forward at a steady throttle.
const driverProgram = `
# react to a wall closing in on either centre sensor
if dist[29] < 4: acc=0.3 steer=-0.6
if dist[30] < 4: acc=0.3 steer=0.6
# crawl back up to speed from a stop
if speed < 0.2: acc=1.0 steer=0
default: acc=0.6 steer=0
`

func (b *BotClient) submitAndWatch(ctx context.Context) error {
	stream, err := b.client.SubmitRun(ctx, &racepb.SubmitRunRequest{
		Username: username,
		Source:   driverProgram,
	})
	if err != nil {
		return fmt.Errorf("SubmitRun failed: %w", err)
	}

	ticks := 0
	for {
		reply, err := stream.Recv()
		if err == io.EOF {
			return fmt.Errorf("stream ended without a final result")
		}
		if err != nil {
			return fmt.Errorf("stream recv error: %w", err)
		}

		switch {
		case reply.Tick != nil:
			ticks++
			if ticks%500 == 0 {
				t := reply.Tick
				log.Printf("tick %d: pos=(%.2f, %.2f) angle=%.2f speed=%.2f",
					ticks, t.Pos.X, t.Pos.Y, t.Angle, t.Speed)
			}
		case reply.Result != nil:
			r := reply.Result
			log.Printf("run finished: successful=%v time=%d ticks (observed %d tick messages)",
				r.Successful, r.Time, ticks)
			return nil
		}
	}
}

func main() {
	addr := flag.String("addr", getServerAddr(), "race server address")
	flag.Parse()

	client, err := NewBotClient(*addr)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if _, err := client.loadTrack(ctx); err != nil {
		log.Fatalf("failed to load track: %v", err)
	}

	if err := client.submitAndWatch(ctx); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
