package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/blokus/internal/piece"
)

// encodePoints stores cells as "x,y;x,y;...". Order is preserved.
func encodePoints(points []piece.Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
	}
	return sb.String()
}

// decodePoints parses the encodePoints format.
func decodePoints(s string) ([]piece.Point, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ";")
	points := make([]piece.Point, 0, len(parts))
	for _, part := range parts {
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("invalid cell %q", part)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("invalid cell %q: %w", part, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("invalid cell %q: %w", part, err)
		}
		points = append(points, piece.P(x, y))
	}
	return points, nil
}
