package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"roomgraph/pkg/engine/terminal"
	"roomgraph/pkg/engine/topology"
	"roomgraph/pkg/engine/world"
	"roomgraph/pkg/game/devtools"
	"roomgraph/pkg/game/generator"
)

// loadGrid reads mapPath, or generates a level when no map is given
func loadGrid(mapPath string, level int, seed int64) (*world.Grid, [][2]string, error) {
	if mapPath != "" {
		grid, err := devtools.LoadMapFile(mapPath)
		return grid, [][2]string{{"map", mapPath}}, err
	}

	gen := generator.New(seed)
	grid, err := gen.Generate(level)
	meta := [][2]string{
		{"generator", gen.Name()},
		{"level", strconv.Itoa(level)},
		{"level_seed", strconv.FormatInt(seed, 10)},
	}
	return grid, meta, err
}

// parseRoute reads a "from,to" room pair
func parseRoute(s string) (topology.RoomID, topology.RoomID, error) {
	from, to, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("route %q: want FROM,TO", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("route %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, fmt.Errorf("route %q: %w", s, err)
	}
	return topology.RoomID(a), topology.RoomID(b), nil
}

func run() error {
	mapPath := flag.String("map", "", "text map to load ('#' wall, 'D' gateway, '.' open); generates one when empty")
	level := flag.Int("level", 1, "level number for the generator (bigger levels have more rooms)")
	seed := flag.Int64("seed", 0, "generator seed (0 picks one from the clock)")
	colorMode := flag.String("color", "auto", "colour output: auto, always or never")
	dumpDir := flag.String("dump-dir", "", "also write the dump to topology.txt in this directory")
	route := flag.String("route", "", "print the room route FROM,TO")
	verbose := flag.Bool("v", false, "log extraction progress to stderr")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.Ltime)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	grid, meta, err := loadGrid(*mapPath, *level, *seed)
	if err != nil {
		return err
	}

	rooms := topology.NewRoomMap(topology.WithLogger(logger))
	if err := rooms.Load(grid); err != nil {
		return err
	}
	graph := rooms.Graph()

	if terminal.IsTerminal(os.Stdout) {
		if width := terminal.GetWidth(os.Stdout); grid.Cols() > width {
			logger.Printf("map is %d columns wide, terminal has %d; try -dump-dir", grid.Cols(), width)
		}
	}

	opts := devtools.DumpOptions{
		Color:    terminal.ColorMode(*colorMode, os.Stdout),
		Metadata: meta,
	}
	if err := devtools.DumpTopology(os.Stdout, grid, graph, opts); err != nil {
		return err
	}

	if *dumpDir != "" {
		path, err := devtools.DumpTopologyToFile(*dumpDir, grid, graph, opts)
		if err != nil {
			return err
		}
		logger.Printf("wrote %s", path)
	}

	if *route != "" {
		from, to, err := parseRoute(*route)
		if err != nil {
			return err
		}
		path, err := graph.Route(from, to)
		if err != nil {
			return err
		}
		fmt.Printf("route %d -> %d: %v\n", from, to, path)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "roomgraph:", err)
		os.Exit(1)
	}
}
