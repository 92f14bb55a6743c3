package perft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunStartPosition(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tc := range cases {
		res, err := Run(fen, tc.depth)
		require.NoError(t, err)
		require.Equalf(t, tc.want, res.Nodes, "depth %d", tc.depth)
	}
}

func TestRunPerMoveSumsToTotal(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	res, err := Run(fen, 2)
	require.NoError(t, err)

	var sum uint64
	for _, n := range res.PerMove {
		sum += n
	}
	require.Equal(t, res.Nodes, sum, "per-move counts should sum to the total")
	require.Len(t, res.PerMove, 20, "expected 20 root moves at depth 2")
}

func TestRunMalformedFEN(t *testing.T) {
	_, err := Run("garbage", 1)
	require.Error(t, err)
}

func TestRunParallelMatchesSerial(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	serial, err := Run(fen, 3)
	require.NoError(t, err)
	parallel, err := RunParallel(fen, 3)
	require.NoError(t, err)

	require.Equal(t, serial.Nodes, parallel.Nodes)
	require.EqualValues(t, 97862, serial.Nodes, "kiwipete depth 3")
}

func TestStatsCapturesAtDepthOne(t *testing.T) {
	// From the kiwipete position, every depth-1 root move's capture/castle
	// counts are well-known reference values.
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	res, err := Run(fen, 1)
	require.NoError(t, err)

	require.EqualValues(t, 8, res.Stats.Captures)
	require.EqualValues(t, 2, res.Stats.Castles)
	require.EqualValues(t, 0, res.Stats.Checks)
}
