package core

// Offset is a relative (dx, dy) step on the grid. Positive dy points down.
type Offset struct {
	DX, DY int
}

// Orthogonal lists the 4-neighbourhood in scan order: left, right, up, down.
// Reaction rules depend on this order for reproducible tie-breaking.
var Orthogonal = [4]Offset{
	{DX: -1, DY: 0},
	{DX: 1, DY: 0},
	{DX: 0, DY: -1},
	{DX: 0, DY: 1},
}

// Moore lists the 8-neighbourhood column by column, top to bottom, skipping
// the centre.
var Moore = [8]Offset{
	{DX: -1, DY: -1},
	{DX: -1, DY: 0},
	{DX: -1, DY: 1},
	{DX: 0, DY: -1},
	{DX: 0, DY: 1},
	{DX: 1, DY: -1},
	{DX: 1, DY: 0},
	{DX: 1, DY: 1},
}

// Neighbor returns the coordinates of (x, y) shifted by o and whether they are
// inside d.
func (d Dims) Neighbor(x, y int, o Offset) (int, int, bool) {
	nx, ny := x+o.DX, y+o.DY
	return nx, ny, d.InBounds(nx, ny)
}
