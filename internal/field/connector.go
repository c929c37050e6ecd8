package field

// Edge joins two points, I < J.
type Edge struct {
	I, J int
}

// Connector links every pair of points closer than a threshold. Pairs are
// checked exhaustively; at a few hundred points that stays well inside a frame.
type Connector struct {
	threshold2 float64
	edges      []Edge
	connected  []bool
}

func NewConnector(threshold float64) *Connector {
	return &Connector{threshold2: threshold * threshold}
}

// Connect returns the edges of this frame and, per point, whether it has at
// least one neighbor. Both slices are reused on the next call.
func (c *Connector) Connect(positions []Vec2) ([]Edge, []bool) {
	if cap(c.connected) < len(positions) {
		c.connected = make([]bool, len(positions))
	}
	c.connected = c.connected[:len(positions)]
	clear(c.connected)
	c.edges = c.edges[:0]

	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			dx := positions[i].X - positions[j].X
			dy := positions[i].Y - positions[j].Y
			if dx*dx+dy*dy < c.threshold2 {
				c.edges = append(c.edges, Edge{I: i, J: j})
				c.connected[i] = true
				c.connected[j] = true
			}
		}
	}
	return c.edges, c.connected
}
