package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"roomgraph/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning. Every leaf
// is carved into an open room and every partition line is a one-cell wall
// pierced by exactly one gateway, so the rooms form a tree.
type BSPGenerator struct {
	rng *rand.Rand
}

// NewBSPGenerator returns a generator whose output depends only on seed
func NewBSPGenerator(seed int64) *BSPGenerator {
	return &BSPGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode

	// split line between left and right, valid on inner nodes
	splitHorizontal bool
	splitAt         int

	name string
}

// Room name templates
var roomNames = []string{
	"Bridge", "Cargo Bay", "Engineering", "Med Bay", "Crew Quarters",
	"Airlock", "Server Room", "Reactor Core", "Armory", "Lab",
	"Hangar", "Command Center", "Life Support", "Mess Hall", "Storage",
}

var roomAdjectives = []string{
	"Abandoned", "Damaged", "Dark", "Derelict", "Emergency",
	"Flickering", "Isolated", "Sealed", "Depressurized", "Overgrown",
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minLeafSize = 3 // Smallest room side a split may leave
	maxRows     = 60
	maxCols     = 100
)

// Generate creates a new grid using BSP algorithm
func (g *BSPGenerator) Generate(level int) (*world.Grid, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	// Level 1: 18x32, Level 5: 34x56, Level 10: 54x86
	rows := 14 + level*4
	cols := 26 + level*6
	if rows > maxRows {
		rows = maxRows
	}
	if cols > maxCols {
		cols = maxCols
	}

	grid := world.NewGrid(rows, cols)
	grid.WallPerimeter()

	// Create BSP tree (leaving 1 cell border for perimeter walls)
	root := &bspNode{x: 1, y: 1, width: cols - 2, height: rows - 2}

	// More splits at higher levels for more rooms
	minSize := minNodeSize - level/3
	if minSize < minLeafSize*2 {
		minSize = minLeafSize * 2
	}
	g.splitBSP(root, minSize)

	buildSplitWalls(grid, root)
	g.carveRooms(grid, root)
	if err := g.placeGateways(grid, root); err != nil {
		return nil, err
	}
	return grid, nil
}

// splitBSP recursively splits a BSP node, keeping a one-cell wall line
// between the halves
func (g *BSPGenerator) splitBSP(node *bspNode, minSize int) {
	canSplitRows := node.height >= minSize*2+1
	canSplitCols := node.width >= minSize*2+1

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && canSplitCols:
		splitHorizontal = false
	case node.height > node.width && canSplitRows:
		splitHorizontal = true
	case canSplitRows && canSplitCols:
		splitHorizontal = g.rng.Intn(2) == 0
	case canSplitCols:
		splitHorizontal = false
	case canSplitRows:
		splitHorizontal = true
	default:
		return // Can't split
	}

	node.splitHorizontal = splitHorizontal
	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + g.rng.Intn(node.height-minSize*2)
		node.splitAt = node.y + splitPoint
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{
			x:      node.x,
			y:      node.splitAt + 1,
			width:  node.width,
			height: node.height - splitPoint - 1,
		}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + g.rng.Intn(node.width-minSize*2)
		node.splitAt = node.x + splitPoint
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{
			x:      node.splitAt + 1,
			y:      node.y,
			width:  node.width - splitPoint - 1,
			height: node.height,
		}
	}

	// Recursively split children
	g.splitBSP(node.left, minSize)
	g.splitBSP(node.right, minSize)
}

// buildSplitWalls walls off every split line. Together with the perimeter
// and the leaves these cover the whole grid.
func buildSplitWalls(grid *world.Grid, node *bspNode) {
	if node.left == nil {
		return
	}
	if node.splitHorizontal {
		for col := node.x; col < node.x+node.width; col++ {
			grid.MarkAsWall(node.splitAt, col)
		}
	} else {
		for row := node.y; row < node.y+node.height; row++ {
			grid.MarkAsWall(row, node.splitAt)
		}
	}
	buildSplitWalls(grid, node.left)
	buildSplitWalls(grid, node.right)
}

// carveRooms opens every leaf and gives its cells a shared room name
func (g *BSPGenerator) carveRooms(grid *world.Grid, node *bspNode) {
	if node.left != nil {
		g.carveRooms(grid, node.left)
		g.carveRooms(grid, node.right)
		return
	}

	adjective := roomAdjectives[g.rng.Intn(len(roomAdjectives))]
	baseName := roomNames[g.rng.Intn(len(roomNames))]
	node.name = fmt.Sprintf("%s %s", adjective, baseName)

	for row := node.y; row < node.y+node.height; row++ {
		for col := node.x; col < node.x+node.width; col++ {
			grid.MarkAsOpen(row, col, node.name)
		}
	}
}

// placeGateways pierces every split line once. Runs after carving so the
// cells on both sides of each line are final.
func (g *BSPGenerator) placeGateways(grid *world.Grid, node *bspNode) error {
	if node.left == nil {
		return nil
	}

	sites := gatewaySites(grid, node)
	if len(sites) == 0 {
		return fmt.Errorf("%w: node at %d:%d", ErrNoGatewaySite, node.y, node.x)
	}
	site := sites[g.rng.Intn(len(sites))]
	grid.MarkAsGateway(site.Row, site.Col)

	if err := g.placeGateways(grid, node.left); err != nil {
		return err
	}
	return g.placeGateways(grid, node.right)
}

// gatewaySites lists the cells of node's split line that have open floor
// on both sides and no gateway along the line
func gatewaySites(grid *world.Grid, node *bspNode) []world.Location {
	var line []world.Location
	across, along := world.North, world.East
	if node.splitHorizontal {
		for col := node.x; col < node.x+node.width; col++ {
			line = append(line, world.Loc(node.splitAt, col))
		}
	} else {
		across, along = world.East, world.South
		for row := node.y; row < node.y+node.height; row++ {
			line = append(line, world.Loc(row, node.splitAt))
		}
	}

	taken := mapset.New[world.Location]()
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.IsGateway() {
			taken.Put(cell.Location())
		}
	})

	var sites []world.Location
	for _, loc := range line {
		cell := grid.CellAt(loc)
		if !grid.GetCellRelative(cell, across).IsOpen() ||
			!grid.GetCellRelative(cell, across.Backward()).IsOpen() {
			continue
		}
		if taken.Has(loc.Translate(along)) || taken.Has(loc.Translate(along.Backward())) {
			continue
		}
		sites = append(sites, loc)
	}
	return sites
}
