package gcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MoveType represents the type of CNC toolpath movement.
type MoveType int

const (
	MoveRapid   MoveType = iota // G0: rapid positioning (no cutting)
	MoveFeed                    // G1: linear feed (cutting move in XY plane)
	MovePlunge                  // G1 with Z decreasing: plunging into material
	MoveRetract                 // G0/G1 with Z increasing: retracting from material
)

// Move represents a single parsed movement from GCode.
type Move struct {
	Type     MoveType
	FromX    float64
	FromY    float64
	FromZ    float64
	ToX      float64
	ToY      float64
	ToZ      float64
	FeedRate float64
}

var coordRe = regexp.MustCompile(`([XYZF])([-]?\d+\.?\d*)`)

// Parse parses a GCode string into a slice of structured moves. It tracks
// absolute position state and classifies each G0/G1 command by its movement
// characteristics (rapid, feed, plunge, retract).
func Parse(code string) []Move {
	var moves []Move

	// Current machine state
	curX, curY, curZ := 0.0, 0.0, 0.0
	curFeed := 0.0

	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Strip inline comments (semicolon or parenthetical)
		if idx := strings.Index(line, ";"); idx >= 0 {
			line = line[:idx]
		}
		if idx := strings.Index(line, "("); idx >= 0 {
			if end := strings.Index(line, ")"); end > idx {
				line = line[:idx] + line[end+1:]
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		isRapid := false
		isFeed := false
		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "G0 ") || strings.HasPrefix(upper, "G00 ") || upper == "G0" || upper == "G00" {
			isRapid = true
		} else if strings.HasPrefix(upper, "G1 ") || strings.HasPrefix(upper, "G01 ") || upper == "G1" || upper == "G01" {
			isFeed = true
		}

		if !isRapid && !isFeed {
			continue
		}

		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		for _, m := range coordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				newX = val
			case "Y":
				newY = val
			case "Z":
				newZ = val
			case "F":
				newFeed = val
			}
		}

		moveType := classifyMove(isRapid, curZ, newZ, curX, curY, newX, newY)

		moves = append(moves, Move{
			Type:     moveType,
			FromX:    curX,
			FromY:    curY,
			FromZ:    curZ,
			ToX:      newX,
			ToY:      newY,
			ToZ:      newZ,
			FeedRate: newFeed,
		})

		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}

	return moves
}

// classifyMove determines the MoveType based on movement characteristics.
func classifyMove(isRapid bool, fromZ, toZ, fromX, fromY, toX, toY float64) MoveType {
	zDelta := toZ - fromZ
	hasXY := fromX != toX || fromY != toY

	switch {
	case isRapid:
		if zDelta > 0 {
			return MoveRetract
		}
		return MoveRapid
	case zDelta < -0.001 && !hasXY:
		return MovePlunge
	case zDelta > 0.001 && !hasXY:
		return MoveRetract
	default:
		return MoveFeed
	}
}

// Bounds returns the XY extent touched by any move in the program.
// ok is false when there are no moves.
func Bounds(moves []Move) (minX, minY, maxX, maxY float64, ok bool) {
	if len(moves) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, m := range moves {
		for _, x := range []float64{m.FromX, m.ToX} {
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
		}
		for _, y := range []float64{m.FromY, m.ToY} {
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY, true
}

// EstimateTime returns the estimated run time in minutes for the parsed
// program. Rapid moves use rapidRate (mm/min); cutting moves use their own
// feed rate, falling back to rapidRate when the program never set one.
func EstimateTime(moves []Move, rapidRate float64) float64 {
	if rapidRate <= 0 {
		rapidRate = 3000
	}
	var minutes float64
	for _, m := range moves {
		dx := m.ToX - m.FromX
		dy := m.ToY - m.FromY
		dz := m.ToZ - m.FromZ
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if dist == 0 {
			continue
		}
		rate := rapidRate
		if m.Type != MoveRapid && m.Type != MoveRetract && m.FeedRate > 0 {
			rate = m.FeedRate
		}
		minutes += dist / rate
	}
	return minutes
}
