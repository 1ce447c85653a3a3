package euler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/will-rowe/dbgasm/src/graph"
)

// ErrEmptyTrail is returned when there is no trail to spell out
var ErrEmptyTrail = errors.New("trail has no edges")

// Reconstruct spells out the sequence of a trail: the first node label, then the last base of each following node
func Reconstruct(trail graph.Edges) (string, error) {
	if len(trail) == 0 {
		return "", ErrEmptyTrail
	}
	var sb strings.Builder
	sb.Grow(len(trail[0].From) + len(trail))
	sb.WriteString(trail[0].From)
	for i, edge := range trail {
		if i > 0 && trail[i-1].To != edge.From {
			return "", fmt.Errorf("trail is broken at edge %d (%v -> %v follows %v)", i, edge.From, edge.To, trail[i-1].To)
		}
		sb.WriteByte(edge.To[len(edge.To)-1])
	}
	return sb.String(), nil
}
