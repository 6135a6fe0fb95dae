// Package viz renders scenes into a braille-dot terminal canvas and
// provides the grid/axis plumbing shared by the TUI.
package viz

import (
	"strings"
)

// Braille patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// SubW and SubH are the canvas dimensions in sub-pixel (dot)
// coordinates.
func (c *Canvas) SubW() int { return c.Width * 2 }
func (c *Canvas) SubH() int { return c.Height * 4 }

// Set lights the dot at sub-pixel (x, y). Out-of-range coordinates are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line in sub-pixel space using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Dot fills a 3x3 block around (x, y): the marker for a flying body.
func (c *Canvas) Dot(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

// Ring draws a hollow circle outline around (x, y): the marker for a
// landed body.
func (c *Canvas) Ring(x, y int) {
	offsets := [][2]int{
		{-1, -2}, {0, -2}, {1, -2},
		{-2, -1}, {2, -1},
		{-2, 0}, {2, 0},
		{-2, 1}, {2, 1},
		{-1, 2}, {0, 2}, {1, 2},
	}
	for _, o := range offsets {
		c.Set(x+o[0], y+o[1])
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Rows returns the canvas content one string per character row,
// without trailing newlines, for styled line-by-line rendering.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.Height)
	for i, row := range c.Grid {
		rows[i] = string(row)
	}
	return rows
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
