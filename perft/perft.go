// Package perft implements the move-count verification harness: given a FEN
// and a depth, it returns the exact number of leaf positions reachable,
// broken down by root move, so the generator can be checked against
// published reference counts. It is an importable library rather than a
// bare CLI so the counts can be exercised directly from tests.
package perft

import (
	"sync"

	chess "github.com/opennull/chessforge"
)

// Stats tallies leaf-ply event counts for callers (the CLI, tests) rather
// than just being printed from within the search.
type Stats struct {
	Nodes        uint64
	Captures     uint64
	EnPassant    uint64
	Castles      uint64
	Promotions   uint64
	Checks       uint64
	DoubleChecks uint64
}

// Result is the outcome of a perft run: total node count, the same count
// split per root move (keyed by UCI move string), and the aggregate Stats.
type Result struct {
	Nodes   uint64
	PerMove map[string]uint64
	Stats   Stats
}

// Run computes perft(depth) from the position described by fen.
func Run(fen string, depth int) (Result, error) {
	pos, err := chess.FromFEN(fen)
	if err != nil {
		return Result{}, err
	}
	return RunPosition(pos, depth), nil
}

// RunPosition computes perft(depth) starting from an already-built position.
func RunPosition(pos *chess.Position, depth int) Result {
	res := Result{PerMove: make(map[string]uint64)}
	if depth <= 0 {
		res.Nodes = 1
		return res
	}

	list := chess.Generate(pos)
	for _, m := range list.Slice() {
		var sub Stats
		pos.Make(m)
		n := countLeaves(pos, depth-1, &sub)
		tallyLeafPly(pos, m, depth, &sub)
		pos.Undo()

		res.Nodes += n
		res.PerMove[chess.MoveToUCI(m)] = n
		mergeStats(&res.Stats, sub)
	}
	res.Stats.Nodes = res.Nodes
	return res
}

// countLeaves recurses depth more plies, tallying into stats every move that
// transitions directly into a leaf (i.e. played when depth==1).
func countLeaves(pos *chess.Position, depth int, stats *Stats) uint64 {
	if depth == 0 {
		return 1
	}
	list := chess.Generate(pos)
	var nodes uint64
	for _, m := range list.Slice() {
		pos.Make(m)
		nodes += countLeaves(pos, depth-1, stats)
		tallyLeafPly(pos, m, depth, stats)
		pos.Undo()
	}
	return nodes
}

// tallyLeafPly records m's event counts into stats if m was the move that
// produced a leaf (depth==1 means no plies remain after m).
func tallyLeafPly(pos *chess.Position, m chess.Move, depth int, stats *Stats) {
	if depth != 1 {
		return
	}
	switch m.Flag() {
	case chess.Capture:
		stats.Captures++
	case chess.EnPassant:
		stats.Captures++
		stats.EnPassant++
	case chess.CastleK, chess.CastleQ:
		stats.Castles++
	}
	if m.Flag().IsPromotion() {
		stats.Promotions++
	}
	if chess.IsCheck(pos) {
		stats.Checks++
		if popcount(chess.Analyze(pos).Checkers) >= 2 {
			stats.DoubleChecks++
		}
	}
}

func mergeStats(dst *Stats, src Stats) {
	dst.Captures += src.Captures
	dst.EnPassant += src.EnPassant
	dst.Castles += src.Castles
	dst.Promotions += src.Promotions
	dst.Checks += src.Checks
	dst.DoubleChecks += src.DoubleChecks
}

func popcount(bb uint64) int {
	n := 0
	for bb != 0 {
		bb &= bb - 1
		n++
	}
	return n
}

// RunParallel is a coarse fork-join variant: one goroutine per root move,
// fanned out with a plain sync.WaitGroup since the work is exactly one
// level deep and needs no queueing or worker pool.
func RunParallel(fen string, depth int) (Result, error) {
	pos, err := chess.FromFEN(fen)
	if err != nil {
		return Result{}, err
	}
	if depth <= 0 {
		return Result{Nodes: 1, PerMove: map[string]uint64{}}, nil
	}

	list := chess.Generate(pos)
	moves := list.Slice()
	nodeCounts := make([]uint64, len(moves))
	statsPerMove := make([]Stats, len(moves))

	var wg sync.WaitGroup
	for i, m := range moves {
		wg.Add(1)
		go func(i int, m chess.Move) {
			defer wg.Done()
			child, err := chess.FromFEN(pos.ToFEN())
			if err != nil {
				return
			}
			child.Make(m)
			var sub Stats
			nodeCounts[i] = countLeaves(child, depth-1, &sub)
			tallyLeafPly(child, m, depth, &sub)
			statsPerMove[i] = sub
		}(i, m)
	}
	wg.Wait()

	res := Result{PerMove: make(map[string]uint64, len(moves))}
	for i, m := range moves {
		res.Nodes += nodeCounts[i]
		res.PerMove[chess.MoveToUCI(m)] = nodeCounts[i]
		mergeStats(&res.Stats, statsPerMove[i])
	}
	res.Stats.Nodes = res.Nodes
	return res, nil
}
