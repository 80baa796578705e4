// Command gridpart builds the graph of a grid scenario, contracts its
// wells, exports the result through the partitioner callback contract,
// fakes a round-robin partition assignment, and expands the resulting
// ownership list back to full cell coverage.
//
// It exists to exercise the whole preprocessing pipeline end to end on a
// scenario file; the real partitioner is an external engine outside this
// module.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kvasir-sim/gridpart/graph"
	"github.com/kvasir-sim/gridpart/grid"
	"github.com/kvasir-sim/gridpart/partition"
)

var (
	configPath = flag.String("config", "scenario.yaml", "path to the YAML grid scenario")
	numProcs   = flag.Int("procs", 4, "number of processes for the mock assignment")
)

// scenario is the YAML shape of a grid scenario file.
type scenario struct {
	// Dims is the cartesian extent [nx, ny, nz].
	Dims grid.Dims `yaml:"dims"`
	// Inactive lists cartesian indices of inactive cells.
	Inactive []int `yaml:"inactive"`
	// Wells maps a well name to the cartesian indices of its cells.
	Wells map[string][]int `yaml:"wells"`
}

// ownedCell is the assignment-list record shape used by the demo.
type ownedCell struct {
	ID   int
	Proc int
}

func (c ownedCell) CellID() int { return c.ID }
func (c ownedCell) WithCellID(id int) ownedCell {
	c.ID = id

	return c
}

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(logger); err != nil {
		logger.Fatal("gridpart failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	sc, err := loadScenario(*configPath)
	if err != nil {
		return err
	}

	g, err := grid.NewWithInactive(sc.Dims, sc.Inactive)
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}
	gog := graph.NewGraph(g)
	logger.Info("graph built",
		zap.Any("dims", sc.Dims),
		zap.Int("activeCells", g.NumCells()))

	wells := make(map[string]graph.CellSet, len(sc.Wells))
	for name, cells := range sc.Wells {
		wells[name] = graph.NewCellSet(cells...)
	}
	if err = gog.AddFutureConnectionWells(wells, true); err != nil {
		return fmt.Errorf("adding wells: %w", err)
	}
	logger.Info("wells contracted",
		zap.Int("wells", len(gog.Wells())),
		zap.Int("vertices", gog.Size()))

	// Export through the callback contract, the way the partitioner would.
	var slots partition.Slots
	partition.Register(&slots, gog, partition.WithLogger(logger))

	nVer, st := slots.NumVertices()
	if st != partition.StatusOK {
		return fmt.Errorf("vertex count query: %s", st)
	}
	ids := make([]int, nVer)
	weights := make([]float64, nVer)
	if st = slots.VertexList(ids, weights); st != partition.StatusOK {
		return fmt.Errorf("vertex list query: %s", st)
	}
	counts := make([]int, nVer)
	if st = slots.NumEdges(ids, counts); st != partition.StatusOK {
		return fmt.Errorf("edge count query: %s", st)
	}
	nEdges := 0
	for _, c := range counts {
		nEdges += c
	}
	nborIDs := make([]int, nEdges)
	nborProcs := make([]int, nEdges)
	edgeWeights := make([]float64, nEdges)
	if st = slots.EdgeList(ids, counts, nborIDs, nborProcs, edgeWeights); st != partition.StatusOK {
		return fmt.Errorf("edge list query: %s", st)
	}
	logger.Info("graph exported",
		zap.Int("vertices", nVer),
		zap.Int("adjacencyEntries", nEdges))

	// Mock partitioner: assign surviving vertices round-robin.
	assigned := make([]ownedCell, nVer)
	for i, id := range ids {
		proc := i % *numProcs
		v, vErr := gog.GetVertex(id)
		if vErr != nil {
			return vErr
		}
		v.Nproc = proc
		assigned[i] = ownedCell{ID: id, Proc: proc}
	}
	sortByID(assigned)

	full := partition.ExtendCellList(gog, assigned)
	logger.Info("assignment list expanded",
		zap.Int("partitionedVertices", len(assigned)),
		zap.Int("cellsCovered", len(full)))

	perProc := make([]int, *numProcs)
	for _, c := range full {
		perProc[c.Proc]++
	}
	for p, n := range perProc {
		logger.Info("process load", zap.Int("process", p), zap.Int("cells", n))
	}

	return nil
}

// loadScenario reads and decodes the YAML scenario file.
func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc scenario
	if err = yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", path, err)
	}

	return &sc, nil
}

// sortByID orders the assignment list ascending by cell id, the order
// ExtendCellList merges into.
func sortByID(cells []ownedCell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].ID < cells[j].ID })
}
