// Package export renders stored run traces as standalone SVG charts.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/akl-leul/momentumsimu/internal/door"
)

// Series is one plotted line: a label, a stroke color, and an
// extractor over snapshots.
type Series struct {
	Label   string
	Color   string
	Extract func(door.State) float64
}

// DefaultSeries plots both door angles and door A's angular velocity.
func DefaultSeries() []Series {
	return []Series{
		{"door A angle", "#00ff88", func(s door.State) float64 { return s.DoorA.Angle }},
		{"door B angle", "#00aaff", func(s door.State) float64 { return s.DoorB.Angle }},
		{"door A omega", "#ffaa00", func(s door.State) float64 { return s.DoorA.AngularVelocity }},
	}
}

// TraceSVG renders the given series over a run trace as an SVG
// document, time on the x axis.
func TraceSVG(states []door.State, series []Series, width, height int) string {
	if len(states) < 2 || len(series) == 0 {
		return ""
	}

	tMin := states[0].Time
	tMax := states[len(states)-1].Time
	if tMax == tMin {
		tMax = tMin + 1
	}

	vMin, vMax := 0.0, 0.0
	for _, sp := range series {
		for _, s := range states {
			v := sp.Extract(s)
			if v < vMin {
				vMin = v
			}
			if v > vMax {
				vMax = v
			}
		}
	}
	if vMax == vMin {
		vMax = vMin + 1
	}
	pad := (vMax - vMin) * 0.05
	vMin -= pad
	vMax += pad

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, sp := range series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, sp.Color))
		for j, s := range states {
			x := (s.Time - tMin) / (tMax - tMin) * float64(width)
			y := float64(height) - (sp.Extract(s)-vMin)/(vMax-vMin)*float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+i*16, sp.Color, sp.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteTraceSVG writes the default chart for a trace to a file.
func WriteTraceSVG(path string, states []door.State, width, height int) error {
	svg := TraceSVG(states, DefaultSeries(), width, height)
	if svg == "" {
		return fmt.Errorf("not enough data to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
