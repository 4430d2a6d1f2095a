// pkg/geom/path.go
package geom

import "errors"

// ErrInsufficientPoints is returned when a path is built from fewer than two
// waypoints.
var ErrInsufficientPoints = errors.New("geom: path requires at least 2 waypoints")

// ErrInvalidSpeed is returned for speed values that cannot produce travel.
var ErrInvalidSpeed = errors.New("geom: speed must be positive")

// MovementPath is an immutable polyline from spawn (progress 0) to base
// (progress 1). Progress is a fraction of the total path length, independent
// of pixel coordinates, so enemies of different speeds share one path.
type MovementPath struct {
	waypoints []Point
	// cumulative[i] is the distance from the spawn point to waypoints[i].
	cumulative []float64
	total      float64
}

// NewMovementPath builds a path over the given waypoints. The waypoint slice
// is copied; the path never observes later mutation of the argument.
func NewMovementPath(waypoints []Point) (*MovementPath, error) {
	if len(waypoints) < 2 {
		return nil, ErrInsufficientPoints
	}
	pts := make([]Point, len(waypoints))
	copy(pts, waypoints)

	cumulative := make([]float64, len(pts))
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].DistanceTo(pts[i])
		cumulative[i] = total
	}
	return &MovementPath{waypoints: pts, cumulative: cumulative, total: total}, nil
}

// TotalLength returns the summed segment length in pixels.
func (p *MovementPath) TotalLength() float64 {
	return p.total
}

// Waypoints returns a copy of the path's waypoints.
func (p *MovementPath) Waypoints() []Point {
	pts := make([]Point, len(p.waypoints))
	copy(pts, p.waypoints)
	return pts
}

// SpawnPoint returns the position at progress 0.
func (p *MovementPath) SpawnPoint() Point {
	return p.waypoints[0]
}

// BasePoint returns the position at progress 1.
func (p *MovementPath) BasePoint() Point {
	return p.waypoints[len(p.waypoints)-1]
}

// PositionAtProgress converts a progress fraction into a world position.
// Progress outside [0, 1] is clamped.
func (p *MovementPath) PositionAtProgress(progress float64) Point {
	progress = clamp01(progress)
	target := progress * p.total
	if p.total == 0 {
		return p.waypoints[0]
	}

	for i := 1; i < len(p.waypoints); i++ {
		if target <= p.cumulative[i] {
			segStart := p.cumulative[i-1]
			segLen := p.cumulative[i] - segStart
			if segLen == 0 {
				continue
			}
			t := (target - segStart) / segLen
			return p.waypoints[i-1].Lerp(p.waypoints[i], t)
		}
	}
	return p.BasePoint()
}

// AdvanceProgress moves from currentProgress by speed (pixels per second)
// over deltaMs milliseconds and returns the new progress, clamped to 1.
// Speed is expressed in pixels along the polyline, so the progress delta is
// derived by converting to distance and back rather than scaling progress
// directly.
func (p *MovementPath) AdvanceProgress(currentProgress, speed float64, deltaMs float64) float64 {
	if p.total == 0 || speed <= 0 || deltaMs <= 0 {
		return clamp01(currentProgress)
	}
	distance := clamp01(currentProgress)*p.total + speed*deltaMs/1000.0
	return clamp01(distance / p.total)
}

// NextPosition advances currentProgress by speed over deltaMs and returns the
// resulting world position together with the new progress.
func (p *MovementPath) NextPosition(currentProgress, speed float64, deltaMs float64) (Point, float64) {
	progress := p.AdvanceProgress(currentProgress, speed, deltaMs)
	return p.PositionAtProgress(progress), progress
}

// DistanceTo returns the shortest distance from pt to the polyline, used to
// validate tower placement against the enemy route.
func (p *MovementPath) DistanceTo(pt Point) float64 {
	best := pt.DistanceTo(p.waypoints[0])
	for i := 1; i < len(p.waypoints); i++ {
		d := distanceToSegment(pt, p.waypoints[i-1], p.waypoints[i])
		if d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(pt, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lengthSq := abx*abx + aby*aby
	if lengthSq == 0 {
		return pt.DistanceTo(a)
	}
	t := ((pt.X-a.X)*abx + (pt.Y-a.Y)*aby) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pt.DistanceTo(Point{X: a.X + abx*t, Y: a.Y + aby*t})
}

// TotalTravelTime returns the milliseconds a unit moving at speed pixels per
// second needs to traverse the whole path.
func (p *MovementPath) TotalTravelTime(speed float64) (float64, error) {
	if speed <= 0 {
		return 0, ErrInvalidSpeed
	}
	return p.total / speed * 1000.0, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
