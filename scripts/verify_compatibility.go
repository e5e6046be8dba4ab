package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"time"

	grpcapi "page-replacement-simulator/internal/grpc"
	"page-replacement-simulator/internal/refstring"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Run from the repository root after `go build -o pagesim ./cmd/pagesim`.

var references = []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2, 1, 2, 0, 1, 7, 0, 1}

func main() {
	// 1. Start Server
	log.Info("Starting server...")
	cmd := exec.Command("./pagesim", "serve", "--http-addr", ":8090", "--grpc-addr", ":50055")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	defer func() {
		_ = cmd.Process.Kill()
	}()

	// Wait for startup
	time.Sleep(2 * time.Second)

	conn, err := grpc.NewClient("localhost:50055", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect to gRPC: %v", err)
	}
	defer conn.Close()
	client := grpcapi.NewClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 2. Per-policy agreement
	for _, name := range []string{"FIFO", "LRU", "OPTIMAL"} {
		var viaHTTP struct {
			Faults int `json:"faults"`
		}
		q := url.Values{}
		q.Set("policy", name)
		q.Set("frames", "3")
		q.Set("refs", refstring.Format(references))
		if err := httpGetJSON("http://localhost:8090/simulate?"+q.Encode(), &viaHTTP); err != nil {
			log.Fatalf("HTTP simulate %s failed: %v", name, err)
		}

		viaGRPC, err := client.Simulate(ctx, &grpcapi.SimulateRequest{Policy: name, Frames: 3, Refs: references})
		if err != nil {
			log.Fatalf("gRPC simulate %s failed: %v", name, err)
		}
		if viaHTTP.Faults != viaGRPC.Faults {
			log.Fatalf("%s mismatch: HTTP %d faults, gRPC %d faults", name, viaHTTP.Faults, viaGRPC.Faults)
		}
		log.Infof("✅ %s agrees: %d faults", name, viaGRPC.Faults)
	}

	// 3. Streamed trace matches the unary one
	unary, err := client.Simulate(ctx, &grpcapi.SimulateRequest{Policy: "LRU", Frames: 3, Refs: references})
	if err != nil {
		log.Fatalf("gRPC simulate failed: %v", err)
	}
	streamed := 0
	err = client.StreamTrace(ctx, &grpcapi.SimulateRequest{Policy: "LRU", Frames: 3, Refs: references}, func(m *grpcapi.StepMessage) error {
		if m.Fault != unary.Steps[streamed].Fault {
			return fmt.Errorf("step %d differs", m.Index)
		}
		streamed++
		return nil
	})
	if err != nil || streamed != len(references) {
		log.Fatalf("StreamTrace mismatch after %d steps: %v", streamed, err)
	}
	log.Info("✅ StreamTrace Verified")

	// 4. Invalid input is rejected on both transports
	if _, err := client.Simulate(ctx, &grpcapi.SimulateRequest{Policy: "FIFO", Frames: 0, Refs: references}); err == nil {
		log.Fatal("gRPC accepted zero frames")
	}
	resp, err := http.Get("http://localhost:8090/simulate?policy=FIFO&frames=0&refs=1")
	if err != nil {
		log.Fatalf("HTTP request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		log.Fatalf("HTTP returned %d for zero frames", resp.StatusCode)
	}
	log.Info("✅ Validation Verified")
}

func httpGetJSON(url string, v any) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
