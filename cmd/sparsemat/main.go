// Command sparsemat adds, subtracts or multiplies two sparse matrix files and
// writes the result in the same text format.
//
//	sparsemat add      --a A.txt --b B.txt [--out R.txt | --out-dir output]
//	sparsemat subtract --a A.txt --b B.txt
//	sparsemat multiply --a A.txt --b B.txt [--transpose auto|never|always]
//
// Without --out the result goes to <out-dir>/result_<operation>.txt.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sparsemat/sparse"
	"gopkg.in/urfave/cli.v1"
)

var (
	// AFlag is the left operand file.
	AFlag = cli.StringFlag{
		Name:  "a",
		Usage: "path of the first (left) matrix file",
	}
	// BFlag is the right operand file.
	BFlag = cli.StringFlag{
		Name:  "b",
		Usage: "path of the second (right) matrix file",
	}
	OutFlag = cli.StringFlag{
		Name:  "out",
		Usage: "result file; overrides --out-dir",
	}
	OutDirFlag = cli.StringFlag{
		Name:  "out-dir",
		Usage: "directory receiving result_<operation>.txt",
		Value: defaultOutputDir,
	}
	StrictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "reject input files that repeat a coordinate",
	}
	MaxDimFlag = cli.IntFlag{
		Name:  "max-dim",
		Usage: "reject input headers above this size (0 = unlimited)",
	}
	TransposeFlag = cli.StringFlag{
		Name:  "transpose",
		Usage: "multiply by the transpose of b: auto, never or always",
		Value: transposeModeAuto,
	}
)

var ioFlags = []cli.Flag{AFlag, BFlag, OutFlag, OutDirFlag, StrictFlag, MaxDimFlag}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "sparsemat"
	app.Usage = "sparse integer matrix arithmetic on rows=/cols= text files"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Commands = []cli.Command{
		{
			Name:   "add",
			Usage:  "element-wise a + b",
			Flags:  ioFlags,
			Action: combineAction(sparse.OpAdd),
		},
		{
			Name:   "subtract",
			Usage:  "element-wise a - b",
			Flags:  ioFlags,
			Action: combineAction(sparse.OpSubtract),
		},
		{
			Name:   "multiply",
			Usage:  "matrix product a × b, or a × bᵀ when only that shape fits",
			Flags:  append(append([]cli.Flag{}, ioFlags...), TransposeFlag),
			Action: multiplyAction,
			Description: `
With --transpose=auto the product a × b is used when a.cols == b.rows,
otherwise a × bᵀ when a.cols == b.cols. Any other shape pair is an error.
`,
		},
	}

	return app
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "Error: %v\n", err)
		os.Exit(1)
	}
}

// decodeOptions turns the shared input flags into codec options.
func decodeOptions(ctx *cli.Context) []sparse.Option {
	var opts []sparse.Option
	if ctx.Bool(StrictFlag.Name) {
		opts = append(opts, sparse.WithDuplicatePolicy(sparse.DuplicateReject))
	}
	if n := ctx.Int(MaxDimFlag.Name); n > 0 {
		opts = append(opts, sparse.WithMaxDimension(n))
	}

	return opts
}

// loadOperands reads both operand files; the first failure aborts.
func loadOperands(ctx *cli.Context) (*sparse.Matrix, *sparse.Matrix, error) {
	pa, pb := ctx.String(AFlag.Name), ctx.String(BFlag.Name)
	if pa == "" || pb == "" {
		return nil, nil, fmt.Errorf("both --%s and --%s are required", AFlag.Name, BFlag.Name)
	}
	opts := decodeOptions(ctx)
	a, err := sparse.ReadFile(pa, opts...)
	if err != nil {
		return nil, nil, err
	}
	b, err := sparse.ReadFile(pb, opts...)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// save writes the result and reports where it went.
func save(ctx *cli.Context, name string, m *sparse.Matrix) error {
	path, err := resolveOutput(ctx.String(OutFlag.Name), ctx.String(OutDirFlag.Name), name)
	if err != nil {
		return err
	}
	if err = sparse.WriteFile(path, m); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "Operation %s completed successfully.\n", name)
	fmt.Fprintf(ctx.App.Writer, "Result saved to: %s\n", path)

	return nil
}

func combineAction(op sparse.Op) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		a, b, err := loadOperands(ctx)
		if err != nil {
			return err
		}
		res, err := sparse.Combine(op, a, b)
		if err != nil {
			return err
		}

		return save(ctx, combineName(op), res)
	}
}

func multiplyAction(ctx *cli.Context) error {
	mode, err := parseTransposeMode(ctx.String(TransposeFlag.Name))
	if err != nil {
		return err
	}
	a, b, err := loadOperands(ctx)
	if err != nil {
		return err
	}
	plan, err := planMultiply(a, b, mode)
	if err != nil {
		return err
	}
	if plan.transposeB && mode == transposeAuto {
		fmt.Fprintln(ctx.App.Writer, "Multiplying with transpose of second matrix (original dimensions incompatible).")
	}
	res, err := plan.execute(a, b)
	if err != nil {
		return err
	}

	return save(ctx, plan.name, res)
}
