package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/seqsense/meshxform/mat"
	"github.com/seqsense/meshxform/mesh"
	"github.com/seqsense/meshxform/obj"
	"github.com/seqsense/pcgol/pc"
	"github.com/spf13/cobra"
)

type options struct {
	input, output string
	logPath       string
	pcdPath       string
	configPath    string
	verbose       bool
	directives    []directive
}

func newRootCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "meshxform <input.obj> <output.obj> [flags]",
		Short: "Apply affine transforms to an OBJ mesh",
		Long: `meshxform reads an OBJ mesh, applies the given transforms and writes
the result to a new OBJ file with a log of every step.

Transforms are applied in the order they are given (order matters).
Values are comma separated and rotation angles are in degrees.
Boolean flags take their value after "=", e.g. --verbose=false or --verbose=0.`,
		Example: "  meshxform in.obj out.obj --translate 1,2,3 --rotate-z 45 --scale 2 --log transform.log --verbose=false",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o.input, o.output = args[0], args[1]
			if err := o.applyConfig(cmd); err != nil {
				return err
			}
			return run(o, cmd.OutOrStdout())
		},
		SilenceErrors: true,
	}
	f := cmd.Flags()
	f.SortFlags = false
	for _, name := range transformCommandNames() {
		f.Var(&directiveFlag{op: name, list: &o.directives}, name, transformCommands[name].usage)
	}
	f.StringVar(&o.configPath, "config", "", "read transforms and defaults from a YAML pipeline file")
	f.StringVar(&o.logPath, "log", "", "log file path (default: output path with .log extension)")
	f.BoolVar(&o.verbose, "verbose", true, "print transform matrices to stdout")
	f.StringVar(&o.pcdPath, "pcd", "", "also write the transformed vertices as a PCD file")
	return cmd
}

// applyConfig merges the pipeline file. Its transforms run before the ones
// given on the command line.
func (o *options) applyConfig(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}
	c, err := readPipelineConfig(o.configPath)
	if err != nil {
		return err
	}
	o.directives = append(append([]directive{}, c.Transforms...), o.directives...)

	f := cmd.Flags()
	if !f.Changed("log") && c.Log != "" {
		o.logPath = c.Log
	}
	if !f.Changed("verbose") && c.Verbose != nil {
		o.verbose = *c.Verbose
	}
	if !f.Changed("pcd") && c.PCD != "" {
		o.pcdPath = c.PCD
	}
	return nil
}

func run(o *options, out io.Writer) error {
	if o.logPath == "" {
		o.logPath = defaultLogPath(o.output)
	}
	logFile, err := os.Create(o.logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	l := newTransformLog(logFile, out, o.verbose)
	l.Logf("=== Mesh Transformation Log ===")
	l.Logf("Input file: %s", o.input)
	l.Logf("Output file: %s", o.output)
	l.Logf("Verbose: %v", o.verbose)
	l.Logf("")

	m, err := obj.Load(o.input)
	if err != nil {
		l.Logf("Failed to load input mesh: %v", err)
		return fmt.Errorf("failed to load input file %s: %w", o.input, err)
	}
	if len(m.Vertices) == 0 {
		l.Printf("Warning: no vertices loaded from %s", o.input)
	}
	l.Printf("Loaded mesh with %d vertices, %d normals, %d faces from %s",
		len(m.Vertices), len(m.Normals), len(m.Faces), o.input,
	)
	logBounds(l, "Input bounds", m)

	l.Printf("\n=== Begin Transformation Sequence ===")
	trans, err := compose(o.directives, func(d directive, acc mat.Mat4) {
		l.Printf("\n[Transform] %s", d)
		l.Matrix(acc)
	})
	if err != nil {
		l.Logf("Invalid transform: %v", err)
		return err
	}

	l.Printf("\n=== Final Transform Matrix ===")
	l.Matrix(trans)

	m.Transform(trans)

	if err := obj.Save(o.output, m); err != nil {
		l.Logf("Failed to save output mesh: %v", err)
		return fmt.Errorf("failed to save output file %s: %w", o.output, err)
	}
	if o.pcdPath != "" {
		if err := savePCD(o.pcdPath, m); err != nil {
			l.Logf("Failed to save point cloud: %v", err)
			return fmt.Errorf("failed to save point cloud %s: %w", o.pcdPath, err)
		}
	}
	logBounds(l, "Output bounds", m)

	l.Logf("\nTransformation complete.")
	fmt.Fprintf(out, "\nTransformation complete.\nInput:  %s\nOutput: %s\nLog:    %s\n",
		o.input, o.output, o.logPath,
	)
	if o.pcdPath != "" {
		fmt.Fprintf(out, "PCD:    %s\n", o.pcdPath)
	}
	return nil
}

func logBounds(l *transformLog, name string, m *mesh.Mesh) {
	min, max, err := m.Bounds()
	if err != nil {
		if !errors.Is(err, mesh.ErrNoVertex) {
			l.Logf("%s: %v", name, err)
		}
		return
	}
	l.Logf("%s: min=(%g, %g, %g) max=(%g, %g, %g)",
		name, min[0], min[1], min[2], max[0], max[1], max[2],
	)
}

func savePCD(path string, m *mesh.Mesh) error {
	pp, err := m.PointCloud()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := pc.Marshal(pp, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
