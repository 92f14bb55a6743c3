// Command chessperft is the CLI for the perft move-count harness, built on
// Cobra/pflag with structured logging via logrus and a colorized board dump
// via fatih/color for quick visual sanity checks.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	chess "github.com/opennull/chessforge"
	"github.com/opennull/chessforge/perft"
)

var log = logrus.New()

func main() {
	var (
		fen      string
		depth    int
		verbose  bool
		parallel bool
		showBoard bool
	)

	root := &cobra.Command{
		Use:   "chessperft",
		Short: "Run the perft move-count harness against a FEN position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			log.WithFields(logrus.Fields{"fen": fen, "depth": depth}).Debug("starting perft run")

			pos, err := chess.FromFEN(fen)
			if err != nil {
				return err
			}
			if showBoard {
				printBoard(pos)
			}

			var res perft.Result
			if parallel {
				res, err = perft.RunParallel(fen, depth)
			} else {
				res, err = perft.Run(fen, depth)
			}
			if err != nil {
				return err
			}

			for move, n := range res.PerMove {
				fmt.Printf("%s: %d\n", move, n)
			}
			fmt.Printf("\nNodes searched: %d\n", res.Nodes)
			if verbose {
				fmt.Printf("captures=%d ep=%d castles=%d promotions=%d checks=%d double-checks=%d\n",
					res.Stats.Captures, res.Stats.EnPassant, res.Stats.Castles,
					res.Stats.Promotions, res.Stats.Checks, res.Stats.DoubleChecks)
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVar(&fen, "fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the position to search")
	flags.IntVar(&depth, "depth", 4, "perft depth")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print per-event stats and debug logging")
	flags.BoolVar(&parallel, "parallel", false, "fan perft out across root moves")
	flags.BoolVar(&showBoard, "board", false, "print the starting board before searching")

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("perft run failed")
		os.Exit(1)
	}
}

func printBoard(pos *chess.Position) {
	white := color.New(color.FgWhite, color.Bold)
	black := color.New(color.FgBlack, color.Bold)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := r*8 + f
			pc := pos.PieceAt(sq)
			glyph := pc.String()
			if pc != chess.NoPiece && pc.Color() == chess.White {
				white.Printf(" %s", glyph)
			} else if pc != chess.NoPiece {
				black.Printf(" %s", glyph)
			} else {
				fmt.Print(" .")
			}
		}
		fmt.Println()
	}
}
