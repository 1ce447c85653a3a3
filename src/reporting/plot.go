package reporting

import (
	"fmt"
	"image/color"
	"math"

	"github.com/will-rowe/dbgasm/src/graph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotting parameters
const (
	plotSize     = 8 * vg.Inch
	arcSteps     = 20  // number of line segments used for each edge
	arcOffset    = 0.2 // curvature of the first edge between two nodes
	arcSpacing   = 0.2 // extra curvature for each parallel edge
	loopRadius   = 0.15
	arrowPercent = 0.85 // where the arrow head sits along an edge
)

var (
	nodeColour  = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	edgeColour  = color.RGBA{A: 255}
	arrowColour = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// OrthogonalLayout places the nodes on a square grid, in node order
func OrthogonalLayout(g *graph.DeBruijnGraph) plotter.XYs {
	n := g.NumNodes()
	positions := make(plotter.XYs, n)
	if n == 0 {
		return positions
	}
	size := int(math.Sqrt(float64(n)))
	if n%size != 0 {
		size++
	}
	for i := range positions {
		positions[i].X = float64(i % size)
		positions[i].Y = float64(i / size)
	}
	return positions
}

// PlotGraph draws the graph and saves it as a png, parallel edges are given different curvatures so they can be told apart
func PlotGraph(g *graph.DeBruijnGraph, fileName string) error {
	if g.NumNodes() == 0 {
		return fmt.Errorf("can't plot a graph without nodes")
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("de bruijn graph (k=%d, nodes=%d, edges=%d)", g.KmerSize, g.NumNodes(), g.NumEdges())
	p.HideAxes()
	positions := OrthogonalLayout(g)

	// draw the edges first so the nodes sit on top
	arrows := plotter.XYs{}
	for _, node := range g.Nodes {
		parallel := make(map[string]int)
		for _, edge := range node.OutEdges {
			parallel[edge.To]++
		}
		seen := make(map[string]int)
		for _, edge := range node.OutEdges {
			from := positions[g.NodeLookup[edge.From]]
			to := positions[g.NodeLookup[edge.To]]
			index := seen[edge.To]
			seen[edge.To]++
			rad := arcOffset + (float64(index)-float64(parallel[edge.To])/2)*arcSpacing
			var points plotter.XYs
			if edge.From == edge.To {
				points = loop(from.X, from.Y, loopRadius*(1+float64(index)))
			} else {
				points = arc(from.X, from.Y, to.X, to.Y, rad)
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				return err
			}
			line.LineStyle.Width = vg.Points(1)
			line.LineStyle.Color = edgeColour
			p.Add(line)
			arrows = append(arrows, points[int(arrowPercent*float64(len(points)-1))])
		}
	}
	if len(arrows) != 0 {
		heads, err := plotter.NewScatter(arrows)
		if err != nil {
			return err
		}
		heads.GlyphStyle.Shape = draw.TriangleGlyph{}
		heads.GlyphStyle.Color = arrowColour
		heads.GlyphStyle.Radius = vg.Points(3)
		p.Add(heads)
	}

	// draw the nodes and their labels
	nodes, err := plotter.NewScatter(positions)
	if err != nil {
		return err
	}
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	nodes.GlyphStyle.Color = nodeColour
	nodes.GlyphStyle.Radius = vg.Points(12)
	names := make([]string, g.NumNodes())
	for i, node := range g.Nodes {
		names[i] = node.Label
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: positions, Labels: names})
	if err != nil {
		return err
	}
	p.Add(nodes, labels)

	// pad the ranges so the outer nodes aren't clipped
	p.X.Min, p.Y.Min = p.X.Min-0.5, p.Y.Min-0.5
	p.X.Max, p.Y.Max = p.X.Max+0.5, p.Y.Max+0.5
	return p.Save(plotSize, plotSize, fileName)
}

// arc returns the points of a quadratic curve between two positions, bent to one side by rad
func arc(fromX, fromY, toX, toY, rad float64) plotter.XYs {
	midX, midY := (fromX+toX)/2, (fromY+toY)/2
	dx, dy := toX-fromX, toY-fromY
	ctrlX, ctrlY := midX+rad*dy, midY-rad*dx
	points := make(plotter.XYs, arcSteps+1)
	for i := range points {
		t := float64(i) / arcSteps
		points[i].X = (1-t)*(1-t)*fromX + 2*(1-t)*t*ctrlX + t*t*toX
		points[i].Y = (1-t)*(1-t)*fromY + 2*(1-t)*t*ctrlY + t*t*toY
	}
	return points
}

// loop returns the points of a circle sitting on top of a position, used for self edges
func loop(x, y, radius float64) plotter.XYs {
	points := make(plotter.XYs, arcSteps+1)
	for i := range points {
		theta := 2*math.Pi*float64(i)/arcSteps - math.Pi/2
		points[i].X = x + radius*math.Cos(theta)
		points[i].Y = y + radius + radius*math.Sin(theta)
	}
	return points
}
