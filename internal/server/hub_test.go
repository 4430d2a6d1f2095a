// internal/server/hub_test.go
package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"go-card-defense/internal/app"
	"go-card-defense/internal/config"
	"go-card-defense/internal/gametime"
	"go-card-defense/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *websocket.Conn) {
	t.Helper()
	cfg := config.Default()
	cfg.ManaInitial = 10
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	game, err := app.NewGame(cfg, gametime.NewManualClock(1000), storage.NewMemoryStore(), logger)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	hub := NewHub(game, cfg.SnapshotRateHz, logger)

	srv := httptest.NewServer(NewHandler(hub, logger))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return srv, conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var frame Frame
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("unmarshal frame %q: %v", payload, err)
	}
	return frame
}

// readUntil drains frames until one of the wanted type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, frameType string) Frame {
	t.Helper()
	for i := 0; i < 50; i++ {
		frame := readFrame(t, conn)
		if frame.Type == frameType {
			return frame
		}
	}
	t.Fatalf("no %q frame within 50 reads", frameType)
	return Frame{}
}

func sendCommand(t *testing.T, conn *websocket.Conn, cmd Command) {
	t.Helper()
	if err := conn.WriteJSON(cmd); err != nil {
		t.Fatalf("send command: %v", err)
	}
}

func TestInitialSnapshotOnConnect(t *testing.T) {
	_, conn := newTestServer(t)

	frame := readFrame(t, conn)
	if frame.Type != frameSnapshot {
		t.Fatalf("expected an initial snapshot, got %q", frame.Type)
	}
	var snap app.Snapshot
	if err := json.Unmarshal(frame.Data, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.Session.GameState != "not-started" {
		t.Fatalf("expected a not-started game, got %q", snap.Session.GameState)
	}
}

func TestStartAndPlayCardOverWebsocket(t *testing.T) {
	_, conn := newTestServer(t)
	readFrame(t, conn) // initial snapshot

	sendCommand(t, conn, Command{Type: cmdStart})
	ack := readUntil(t, conn, frameAck)
	var snap app.Snapshot
	if err := json.Unmarshal(ack.Data, &snap); err != nil {
		t.Fatalf("unmarshal ack snapshot: %v", err)
	}
	if snap.Session.GameState != "running" {
		t.Fatalf("expected a running game after start, got %q", snap.Session.GameState)
	}
	if len(snap.Hand) == 0 {
		t.Fatalf("expected a dealt hand in the ack snapshot")
	}

	sendCommand(t, conn, Command{Type: cmdPlayCard, CardID: snap.Hand[0].ID, X: 150, Y: 350})
	result := readUntil(t, conn, framePlayResult)
	var played app.PlayCardResult
	if err := json.Unmarshal(result.Data, &played); err != nil {
		t.Fatalf("unmarshal play result: %v", err)
	}
	if !played.Played || played.TowerID == "" {
		t.Fatalf("expected the card to be played, got %+v", played)
	}
}

func TestUnknownCommandYieldsErrorFrame(t *testing.T) {
	_, conn := newTestServer(t)
	readFrame(t, conn)

	sendCommand(t, conn, Command{Type: "teleport"})
	frame := readUntil(t, conn, frameError)
	if !strings.Contains(frame.Error, "unknown command") {
		t.Fatalf("expected an unknown-command error, got %q", frame.Error)
	}
}

func TestStartTwiceIsRejected(t *testing.T) {
	_, conn := newTestServer(t)
	readFrame(t, conn)

	sendCommand(t, conn, Command{Type: cmdStart})
	readUntil(t, conn, frameAck)
	sendCommand(t, conn, Command{Type: cmdStart})
	if frame := readUntil(t, conn, frameError); frame.Error == "" {
		t.Fatalf("expected an error message for a second start")
	}
}
