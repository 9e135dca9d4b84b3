// Command server boots the RaceService gRPC server: compile the track named
// by -track, register the service, and serve. Grounded directly in
// yatahunt-airaces/server/main.go's bootstrap shape.
package main

import (
	"flag"
	"log"
	"net"
	"os"

	"goracer/internal/racepb"
	"goracer/internal/server"
	"goracer/internal/track"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const defaultLaps = 1

func main() {
	addr := flag.String("addr", envOr("GORACER_ADDR", ":50051"), "address to listen on")
	trackPath := flag.String("track", envOr("GORACER_TRACK", "./tracks/oval.rtk"), "path to a .rtk track description")
	laps := flag.Int("laps", defaultLaps, "laps required to finish")
	flag.Parse()

	raw, err := os.ReadFile(*trackPath)
	if err != nil {
		log.Fatalf("failed to read track %s: %v", *trackPath, err)
	}

	compiled, err := track.Compile(string(raw), *laps)
	if err != nil {
		log.Fatalf("failed to compile track %s: %v", *trackPath, err)
	}

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	raceServer := server.New(compiled)

	racepb.RegisterRaceServiceServer(grpcServer, raceServer)
	reflection.Register(grpcServer)

	log.Printf("race server listening on %s (track=%s, laps=%d)", *addr, *trackPath, *laps)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
