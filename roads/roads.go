// Package roads declares the payloads carried by a road network graph:
// City on nodes and Road on edges. The graph core never inspects them.
package roads

import (
	"fmt"
	"strconv"
)

// HasDistance is implemented by edge payloads that know their own length.
type HasDistance interface {
	Distance() float64
}

// Coord is a planar position.
type Coord struct {
	X float64
	Y float64
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%g,%g)", c.X, c.Y)
}

// City is a named location. Coordinates is nil when unknown.
type City struct {
	Name        string
	Coordinates *Coord
}

// String returns the city name, with coordinates when known.
func (c City) String() string {
	if c.Coordinates == nil {
		return c.Name
	}

	return c.Name + " " + c.Coordinates.String()
}

// Road is the edge payload between two named locations.
// It is comparable so it can serve as a core.Graph edge payload.
type Road struct {
	From   string
	To     string
	Length float64
}

// Distance implements HasDistance.
func (r Road) Distance() float64 { return r.Length }

// String renders the road length.
func (r Road) String() string {
	return strconv.FormatFloat(r.Length, 'g', -1, 64)
}

var _ HasDistance = Road{}
