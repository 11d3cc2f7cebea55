package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/estensen/merkleroot"
	"github.com/estensen/merkleroot/internal/logging"
	"github.com/urfave/cli/v2"
)

// exampleLeaves is used when no leaves are given on the command line.
var exampleLeaves = []string{
	"data1", "data2", "data3", "data4",
	"data5", "data6", "data7", "data8",
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "merkleroot",
		Usage:     "compute the Merkle root of a list of leaves",
		ArgsUsage: "[leaf...]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "hash",
				Usage:   "hash algorithm: " + strings.Join(merkle.HasherNames(), ", "),
				Value:   merkle.SHA256.Name(),
				EnvVars: []string{"MERKLE_HASH"},
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read leaves from a file, one per line (- for stdin)",
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Usage:   "goroutines used per layer",
				Value:   1,
				EnvVars: []string{"MERKLE_CONCURRENCY"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every layer of the tree",
			},
		},
		Action: run,
	}
}

func run(cCtx *cli.Context) error {
	logger := logging.New("merkleroot", cCtx.App.ErrWriter)

	hasher, err := merkle.HasherByName(cCtx.String("hash"))
	if err != nil {
		return err
	}

	leaves, err := sourceLeaves(cCtx)
	if err != nil {
		return err
	}

	opts := []merkle.Option{
		merkle.WithHasher(hasher),
		merkle.WithConcurrency(cCtx.Int("concurrency")),
	}
	if cCtx.Bool("verbose") {
		logger.Printf("hashing %s leaves with %s\n", logging.Highlight(len(leaves)), logging.Highlight(hasher.Name()))
		opts = append(opts, merkle.WithLayerHook(func(level int, layer []merkle.Digest) {
			logger.Print(formatLayer(level, layer))
		}))
	}

	builder, err := merkle.NewBuilder(opts...)
	if err != nil {
		return err
	}

	root, err := builder.Root(leaves)
	if err != nil {
		return fmt.Errorf("compute root: %w", err)
	}

	fmt.Fprintln(cCtx.App.Writer, root)
	return nil
}

func sourceLeaves(cCtx *cli.Context) ([][]byte, error) {
	if path := cCtx.String("file"); path != "" {
		return readLeavesFile(path, cCtx.App.Reader)
	}
	args := cCtx.Args().Slice()
	if len(args) == 0 {
		args = exampleLeaves
	}
	leaves := make([][]byte, len(args))
	for i, arg := range args {
		leaves[i] = []byte(arg)
	}
	return leaves, nil
}

// formatLayer renders one layer in the same branch style as a tree printout.
func formatLayer(level int, layer []merkle.Digest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "layer %d (%d nodes)\n", level, len(layer))
	for i, d := range layer {
		branch := "├──"
		if i == len(layer)-1 {
			branch = "└──"
		}
		fmt.Fprintf(&b, "%s %s\n", branch, d)
	}
	return b.String()
}
