// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"roomgraph/pkg/engine/topology"
	"roomgraph/pkg/engine/world"
)

const mapDumpFilename = "topology.txt"

// ErrNoGraph indicates a dump request without an extracted graph
var ErrNoGraph = errors.New("devtools: no topology to dump")

// DumpOptions controls the topology dump
type DumpOptions struct {
	// Color wraps walls, gateways and ids in ANSI styles
	Color bool

	// Labels translates section headers; nil uses DefaultLabels
	Labels *Labels

	// Metadata lines printed as "key: value", in order
	Metadata [][2]string
}

// dumpStyles are the styles used when Color is set
var (
	styleWall    = color.Style{color.FgGray}
	styleGateway = color.Style{color.FgYellow, color.OpBold}
	styleRoom    = color.Style{color.FgBlue}
	stylePseudo  = color.Style{color.FgMagenta}
	styleHeader  = color.Style{color.FgGreen, color.OpBold}
)

type dumper struct {
	w      io.Writer
	err    error
	color  bool
	labels *Labels
}

func (d *dumper) printf(format string, a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *dumper) paint(s color.Style, text string) string {
	if !d.color {
		return text
	}
	return s.Sprint(text)
}

func (d *dumper) section(key string) {
	d.printf("--- %s ---\n", d.paint(styleHeader, d.labels.Get(key)))
}

// DumpTopology writes a debug dump of graph: metadata, legend, the
// occupancy map, the room-id map, each room's barriers and every gateway's
// destinations. Format is sections of "key: value" lines.
func DumpTopology(w io.Writer, grid *world.Grid, graph *topology.Graph, opts DumpOptions) error {
	if grid == nil || graph == nil {
		return ErrNoGraph
	}
	labels := opts.Labels
	if labels == nil {
		labels = DefaultLabels()
	}
	d := &dumper{w: w, color: opts.Color, labels: labels}

	d.printf("=== %s ===\n\n", labels.Get("DUMP_TITLE"))

	// --- Metadata ---
	d.section("SECTION_METADATA")
	for _, kv := range opts.Metadata {
		d.printf("%s: %s\n", kv[0], kv[1])
	}
	d.printf("grid_rows: %d\n", graph.Rows())
	d.printf("grid_cols: %d\n", graph.Cols())
	d.printf("coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	d.printf("rooms: %d\n", graph.OpenRoomCount())
	d.printf("gateway_rooms: %d\n", graph.GatewayRoomCount())
	d.printf("wall_barriers: %d\n", graph.WallCount())
	d.printf("gateway_barriers: %d\n\n", graph.GatewayCount())

	// --- Legend ---
	d.section("SECTION_LEGEND")
	d.printf("%s\n\n", labels.Get("LEGEND_TEXT"))

	d.section("SECTION_MAP")
	d.writeOccupancy(grid)
	d.printf("\n")

	d.section("SECTION_ROOM_MAP")
	d.writeRoomIDs(graph)
	d.printf("\n")

	d.section("SECTION_ROOMS")
	for _, id := range graph.RoomIDs() {
		d.writeRoom(grid, graph, id)
	}
	d.printf("\n")

	d.section("SECTION_GATEWAYS")
	if graph.GatewayCount() == 0 {
		d.printf("  %s\n", labels.Get("NONE"))
	}
	for i := 1; i <= graph.GatewayCount(); i++ {
		id := topology.BarrierID(i)
		bar, err := graph.Barrier(topology.GatewayBarrier, id)
		if err != nil {
			return err
		}
		dests, err := graph.GatewayDestinations(id)
		if err != nil {
			return err
		}
		d.printf("  %s: %d cells: %s-%s destinations: %s\n",
			d.paint(styleGateway, labels.Get("GATEWAY")), id, bar.Left, bar.Right, joinIDs(dests))
	}
	d.printf("\n=== %s ===\n", labels.Get("DUMP_END"))
	return d.err
}

func (d *dumper) writeOccupancy(grid *world.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		var b strings.Builder
		for col := 0; col < grid.Cols(); col++ {
			kind := grid.KindAt(world.Loc(row, col))
			glyph := string(kind.Glyph())
			switch kind {
			case world.Wall:
				glyph = d.paint(styleWall, glyph)
			case world.Gateway:
				glyph = d.paint(styleGateway, glyph)
			}
			b.WriteString(glyph)
		}
		d.printf("%s\n", b.String())
	}
}

// writeRoomIDs prints one right-aligned column per cell, as wide as the
// largest room id
func (d *dumper) writeRoomIDs(graph *topology.Graph) {
	width := len(strconv.Itoa(graph.RoomCount()))
	wall := strings.Repeat(string(world.GlyphWall), width)
	for row := 0; row < graph.Rows(); row++ {
		cells := make([]string, 0, graph.Cols())
		for col := 0; col < graph.Cols(); col++ {
			id, err := graph.LocationRoomID(world.Loc(row, col))
			if err != nil {
				cells = append(cells, d.paint(styleWall, wall))
				continue
			}
			text := fmt.Sprintf("%*d", width, id)
			if graph.IsGatewayRoom(id) {
				text = d.paint(stylePseudo, text)
			} else {
				text = d.paint(styleRoom, text)
			}
			cells = append(cells, text)
		}
		d.printf("%s\n", strings.Join(cells, " "))
	}
}

func (d *dumper) writeRoom(grid *world.Grid, graph *topology.Graph, id topology.RoomID) {
	seed, _ := graph.RoomSeed(id)
	area, _ := graph.RoomArea(id)
	barriers, _ := graph.RoomBarriers(id)
	neighbors, _ := graph.Neighbors(id)

	kind := d.paint(styleRoom, d.labels.Get("ROOM"))
	if graph.IsGatewayRoom(id) {
		kind = d.paint(stylePseudo, d.labels.Get("GATEWAY_ROOM"))
	}
	d.printf("%s: %d seed: %s name: %q cells: %d %s: %s\n",
		kind, id, seed, grid.CellAt(seed).Name, area, d.labels.Get("NEIGHBOURS"), joinIDs(neighbors))
	for _, bar := range barriers {
		style := styleWall
		if bar.Kind == topology.GatewayBarrier {
			style = styleGateway
		}
		c := bar.Centerpoint()
		d.printf("    %s: %d facing: %s cells: %s-%s length: %d center: %g,%g\n",
			d.paint(style, d.labels.named(bar.Kind)), bar.ID, d.labels.named(bar.Facing),
			bar.Left, bar.Right, bar.Len(), c.Row, c.Col)
	}
}

func joinIDs(ids []topology.RoomID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// DumpTopologyToFile writes the dump to topology.txt under dir and returns
// the absolute path. Files never carry colour codes.
func DumpTopologyToFile(dir string, grid *world.Grid, graph *topology.Graph, opts DumpOptions) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	opts.Color = false
	if err := DumpTopology(f, grid, graph, opts); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
