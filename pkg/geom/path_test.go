package geom

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewMovementPathRequiresTwoWaypoints(t *testing.T) {
	if _, err := NewMovementPath(nil); !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints for nil waypoints, got %v", err)
	}
	if _, err := NewMovementPath([]Point{{X: 1, Y: 1}}); !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints for a single waypoint, got %v", err)
	}
}

func TestMovementPathTotalLength(t *testing.T) {
	path, err := NewMovementPath([]Point{{0, 0}, {300, 0}, {300, 400}})
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	if !almostEqual(path.TotalLength(), 700) {
		t.Fatalf("expected total length 700, got %f", path.TotalLength())
	}
}

func TestPositionAtProgressEndpoints(t *testing.T) {
	waypoints := []Point{{10, 20}, {110, 20}, {110, 220}, {50, 220}}
	path, err := NewMovementPath(waypoints)
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	if got := path.PositionAtProgress(0); got != waypoints[0] {
		t.Fatalf("expected spawn point %v at progress 0, got %v", waypoints[0], got)
	}
	if got := path.PositionAtProgress(1); got != waypoints[3] {
		t.Fatalf("expected base point %v at progress 1, got %v", waypoints[3], got)
	}
	if got := path.PositionAtProgress(-0.5); got != waypoints[0] {
		t.Fatalf("expected clamp to spawn point, got %v", got)
	}
	if got := path.PositionAtProgress(2); got != waypoints[3] {
		t.Fatalf("expected clamp to base point, got %v", got)
	}
}

func TestPositionAtProgressInterpolatesWithinSegment(t *testing.T) {
	path, err := NewMovementPath([]Point{{0, 0}, {100, 0}, {100, 100}})
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	// Half the 200px path is exactly the corner.
	if got := path.PositionAtProgress(0.5); got != (Point{100, 0}) {
		t.Fatalf("expected corner at progress 0.5, got %v", got)
	}
	// 75% lies halfway down the second segment.
	if got := path.PositionAtProgress(0.75); !almostEqual(got.X, 100) || !almostEqual(got.Y, 50) {
		t.Fatalf("expected (100, 50) at progress 0.75, got %v", got)
	}
}

func TestAdvanceProgressConvertsSpeedThroughDistance(t *testing.T) {
	path, err := NewMovementPath([]Point{{0, 0}, {800, 0}})
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	// 100 px/s over 1s on an 800px path is 1/8 of the way.
	got := path.AdvanceProgress(0, 100, 1000)
	if !almostEqual(got, 0.125) {
		t.Fatalf("expected progress 0.125, got %f", got)
	}
	// Advancing past the end clamps at exactly 1 and stays there.
	got = path.AdvanceProgress(0.9, 100, 5000)
	if got != 1 {
		t.Fatalf("expected progress clamped to 1, got %f", got)
	}
	if got = path.AdvanceProgress(1, 100, 1000); got != 1 {
		t.Fatalf("expected progress to stay at 1, got %f", got)
	}
}

func TestAdvanceProgressIgnoresNonPositiveInput(t *testing.T) {
	path, err := NewMovementPath([]Point{{0, 0}, {100, 0}})
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	if got := path.AdvanceProgress(0.25, 0, 1000); got != 0.25 {
		t.Fatalf("expected zero speed to hold progress, got %f", got)
	}
	if got := path.AdvanceProgress(0.25, 100, 0); got != 0.25 {
		t.Fatalf("expected zero delta to hold progress, got %f", got)
	}
}

func TestTotalTravelTime(t *testing.T) {
	path, err := NewMovementPath([]Point{{0, 0}, {800, 0}})
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	ms, err := path.TotalTravelTime(100)
	if err != nil {
		t.Fatalf("total travel time: %v", err)
	}
	if !almostEqual(ms, 8000) {
		t.Fatalf("expected 8000ms, got %f", ms)
	}
	if _, err := path.TotalTravelTime(0); !errors.Is(err, ErrInvalidSpeed) {
		t.Fatalf("expected ErrInvalidSpeed for zero speed, got %v", err)
	}
	if _, err := path.TotalTravelTime(-5); !errors.Is(err, ErrInvalidSpeed) {
		t.Fatalf("expected ErrInvalidSpeed for negative speed, got %v", err)
	}
}

func TestWaypointsCopyIsolation(t *testing.T) {
	source := []Point{{0, 0}, {10, 0}}
	path, err := NewMovementPath(source)
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	source[0].X = 99
	if path.SpawnPoint().X != 0 {
		t.Fatalf("path observed caller mutation of the waypoint slice")
	}
	view := path.Waypoints()
	view[1].X = 99
	if path.BasePoint().X != 10 {
		t.Fatalf("path observed mutation through the Waypoints view")
	}
}

func TestMovementPathDistanceTo(t *testing.T) {
	path, err := NewMovementPath([]Point{{0, 0}, {100, 0}, {100, 100}})
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	cases := []struct {
		name string
		pt   Point
		want float64
	}{
		{"above first segment", Point{50, 30}, 30},
		{"beside second segment", Point{140, 50}, 40},
		{"beyond corner", Point{130, -40}, 50},
		{"on the path", Point{100, 0}, 0},
	}
	for _, tc := range cases {
		if got := path.DistanceTo(tc.pt); !almostEqual(got, tc.want) {
			t.Fatalf("%s: expected distance %f, got %f", tc.name, tc.want, got)
		}
	}
}
