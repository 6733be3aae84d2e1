package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/seqsense/meshxform/mat"
)

var (
	errArgumentNumber = errors.New("invalid number of arguments")
	errInvalidCommand = errors.New("invalid command")
)

// directive is one transform operation in the order given by the user.
type directive struct {
	Op   string    `yaml:"op"`
	Args []float64 `yaml:"args"`
}

type transformCommand struct {
	args  []string
	usage string
	build func(args []float64) mat.Mat4
	label func(args []float64) string
}

// Rotation angles are given in degrees.
var transformCommands = map[string]transformCommand{
	"translate": {
		args:  []string{"tx", "ty", "tz"},
		usage: "translate by (tx, ty, tz)",
		build: func(a []float64) mat.Mat4 {
			return mat.Translate(a[0], a[1], a[2])
		},
		label: func(a []float64) string {
			return fmt.Sprintf("Translate (%g, %g, %g)", a[0], a[1], a[2])
		},
	},
	"scale": {
		args:  []string{"s"},
		usage: "scale uniformly by s",
		build: func(a []float64) mat.Mat4 {
			return mat.Scale(a[0])
		},
		label: func(a []float64) string {
			return fmt.Sprintf("Scale (%g)", a[0])
		},
	},
	"scale-nonuniform": {
		args:  []string{"sx", "sy", "sz"},
		usage: "scale each axis by (sx, sy, sz)",
		build: func(a []float64) mat.Mat4 {
			return mat.ScaleNonUniform(a[0], a[1], a[2])
		},
		label: func(a []float64) string {
			return fmt.Sprintf("ScaleNonUniform (%g, %g, %g)", a[0], a[1], a[2])
		},
	},
	"rotate-x": {
		args:  []string{"deg"},
		usage: "rotate about the X axis",
		build: func(a []float64) mat.Mat4 {
			return mat.RotateX(mat.DegToRad(a[0]))
		},
		label: func(a []float64) string {
			return fmt.Sprintf("RotateX (%g rad)", mat.DegToRad(a[0]))
		},
	},
	"rotate-y": {
		args:  []string{"deg"},
		usage: "rotate about the Y axis",
		build: func(a []float64) mat.Mat4 {
			return mat.RotateY(mat.DegToRad(a[0]))
		},
		label: func(a []float64) string {
			return fmt.Sprintf("RotateY (%g rad)", mat.DegToRad(a[0]))
		},
	},
	"rotate-z": {
		args:  []string{"deg"},
		usage: "rotate about the Z axis",
		build: func(a []float64) mat.Mat4 {
			return mat.RotateZ(mat.DegToRad(a[0]))
		},
		label: func(a []float64) string {
			return fmt.Sprintf("RotateZ (%g rad)", mat.DegToRad(a[0]))
		},
	},
	"rotate-axis": {
		args:  []string{"ax", "ay", "az", "deg"},
		usage: "rotate about the axis (ax, ay, az)",
		build: func(a []float64) mat.Mat4 {
			return mat.RotateAroundAxis(mat.Vec3{a[0], a[1], a[2]}, mat.DegToRad(a[3]))
		},
		label: func(a []float64) string {
			return fmt.Sprintf("RotateAxis axis=(%g, %g, %g), angle=%g rad",
				a[0], a[1], a[2], mat.DegToRad(a[3]),
			)
		},
	},
	"shear": {
		args:  []string{"sxy", "sxz", "syx", "syz", "szx", "szy"},
		usage: "shear, sxy is the contribution of y to x",
		build: func(a []float64) mat.Mat4 {
			return mat.Shear(a[0], a[1], a[2], a[3], a[4], a[5])
		},
		label: func(a []float64) string {
			return fmt.Sprintf("Shear (%g, %g, %g, %g, %g, %g)", a[0], a[1], a[2], a[3], a[4], a[5])
		},
	},
}

func transformCommandNames() []string {
	names := make([]string, 0, len(transformCommands))
	for name := range transformCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d directive) command() (transformCommand, error) {
	cmd, ok := transformCommands[d.Op]
	if !ok {
		return transformCommand{}, fmt.Errorf("%q: %w", d.Op, errInvalidCommand)
	}
	if len(d.Args) != len(cmd.args) {
		return transformCommand{}, fmt.Errorf("%s takes %s, got %d values: %w",
			d.Op, strings.Join(cmd.args, ","), len(d.Args), errArgumentNumber,
		)
	}
	return cmd, nil
}

func (d directive) validate() error {
	_, err := d.command()
	return err
}

func (d directive) Matrix() (mat.Mat4, error) {
	cmd, err := d.command()
	if err != nil {
		return mat.Mat4{}, err
	}
	return cmd.build(d.Args), nil
}

func (d directive) String() string {
	cmd, err := d.command()
	if err != nil {
		return fmt.Sprintf("%s %v", d.Op, d.Args)
	}
	return cmd.label(d.Args)
}

// compose accumulates the directives into one matrix. Each matrix is
// multiplied from the left, so the first directive is applied to a point
// first. fn, if not nil, is called with the accumulated matrix after each
// step. All directives are validated before anything is composed.
func compose(ds []directive, fn func(d directive, acc mat.Mat4)) (mat.Mat4, error) {
	for _, d := range ds {
		if err := d.validate(); err != nil {
			return mat.Mat4{}, err
		}
	}
	acc := mat.Identity()
	for _, d := range ds {
		m, err := d.Matrix()
		if err != nil {
			return mat.Mat4{}, err
		}
		acc = m.Mul(acc)
		if fn != nil {
			fn(d, acc)
		}
	}
	return acc, nil
}
