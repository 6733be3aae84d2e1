package main

import (
	"errors"
	"math"
	"testing"

	"github.com/seqsense/meshxform/mat"
)

const tol = 1e-9

func TestCompose_Order(t *testing.T) {
	ds := []directive{
		{Op: "rotate-z", Args: []float64{90}},
		{Op: "translate", Args: []float64{1, 0, 0}},
	}
	m, err := compose(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := mat.Translate(1, 0, 0).Mul(mat.RotateZ(math.Pi / 2))
	if !m.Equal(expected, tol) {
		t.Errorf("Expected:\n%v\ngot:\n%v", expected, m)
	}

	// Rotation about the origin does not move it; translation comes last.
	if v := m.Transform(mat.Vec3{}); !v.Equal(mat.Vec3{1, 0, 0}, tol) {
		t.Errorf("Expected (1, 0, 0), got %v", v)
	}
	// The first directive is applied first.
	if v := m.Transform(mat.Vec3{1, 0, 0}); !v.Equal(mat.Vec3{1, 1, 0}, tol) {
		t.Errorf("Expected (1, 1, 0), got %v", v)
	}
}

func TestCompose_OrderReversed(t *testing.T) {
	ds := []directive{
		{Op: "translate", Args: []float64{1, 0, 0}},
		{Op: "rotate-z", Args: []float64{90}},
	}
	m, err := compose(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := mat.RotateZ(math.Pi / 2).Mul(mat.Translate(1, 0, 0))
	if !m.Equal(expected, tol) {
		t.Errorf("Expected:\n%v\ngot:\n%v", expected, m)
	}
	if v := m.Transform(mat.Vec3{}); !v.Equal(mat.Vec3{0, 1, 0}, tol) {
		t.Errorf("Expected (0, 1, 0), got %v", v)
	}
}

func TestCompose_Empty(t *testing.T) {
	m, err := compose(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m != mat.Identity() {
		t.Errorf("Expected identity, got %v", m)
	}
}

func TestCompose_InverseTranslate(t *testing.T) {
	m, err := compose([]directive{
		{Op: "translate", Args: []float64{3, -4, 5}},
		{Op: "translate", Args: []float64{-3, 4, -5}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := mat.Vec3{0.3, 7, -2}
	if v := m.Transform(p); !v.Equal(p, tol) {
		t.Errorf("Expected %v, got %v", p, v)
	}
}

func TestCompose_Steps(t *testing.T) {
	ds := []directive{
		{Op: "scale", Args: []float64{2}},
		{Op: "shear", Args: []float64{1, 0, 0, 0, 0, 0}},
		{Op: "rotate-axis", Args: []float64{0, 0, 1, 45}},
	}
	var steps []mat.Mat4
	var ops []string
	m, err := compose(ds, func(d directive, acc mat.Mat4) {
		ops = append(ops, d.Op)
		steps = append(steps, acc)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 3 {
		t.Fatalf("Expected 3 steps, got %d", len(steps))
	}
	if ops[0] != "scale" || ops[1] != "shear" || ops[2] != "rotate-axis" {
		t.Errorf("Unexpected step order: %v", ops)
	}
	if !steps[0].Equal(mat.Scale(2), tol) {
		t.Errorf("Unexpected first step:\n%v", steps[0])
	}
	if steps[2] != m {
		t.Error("Last step must be the result")
	}
}

func TestCompose_Error(t *testing.T) {
	testCases := map[string]struct {
		ds       []directive
		expected error
	}{
		"Unknown": {
			ds:       []directive{{Op: "mirror", Args: []float64{1}}},
			expected: errInvalidCommand,
		},
		"TooFew": {
			ds:       []directive{{Op: "translate", Args: []float64{1, 2}}},
			expected: errArgumentNumber,
		},
		"TooMany": {
			ds:       []directive{{Op: "rotate-x", Args: []float64{1, 2}}},
			expected: errArgumentNumber,
		},
		"Later": {
			ds: []directive{
				{Op: "scale", Args: []float64{2}},
				{Op: "shear", Args: []float64{1}},
			},
			expected: errArgumentNumber,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			var called bool
			_, err := compose(tt.ds, func(directive, mat.Mat4) { called = true })
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if called {
				t.Error("Nothing must be composed on error")
			}
		})
	}
}

func TestDirective_Matrix(t *testing.T) {
	testCases := map[string]struct {
		d        directive
		expected mat.Mat4
	}{
		"Translate":       {directive{"translate", []float64{1, 2, 3}}, mat.Translate(1, 2, 3)},
		"Scale":           {directive{"scale", []float64{2}}, mat.Scale(2)},
		"ScaleNonUniform": {directive{"scale-nonuniform", []float64{2, 3, 4}}, mat.ScaleNonUniform(2, 3, 4)},
		"RotateX":         {directive{"rotate-x", []float64{30}}, mat.RotateX(math.Pi / 6)},
		"RotateY":         {directive{"rotate-y", []float64{-60}}, mat.RotateY(-math.Pi / 3)},
		"RotateZ":         {directive{"rotate-z", []float64{180}}, mat.RotateZ(math.Pi)},
		"RotateAxis": {
			directive{"rotate-axis", []float64{1, 1, 0, 90}},
			mat.RotateAroundAxis(mat.Vec3{1, 1, 0}, math.Pi/2),
		},
		"Shear": {
			directive{"shear", []float64{1, 2, 3, 4, 5, 6}},
			mat.Shear(1, 2, 3, 4, 5, 6),
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			m, err := tt.d.Matrix()
			if err != nil {
				t.Fatal(err)
			}
			if !m.Equal(tt.expected, tol) {
				t.Errorf("Expected:\n%v\ngot:\n%v", tt.expected, m)
			}
		})
	}
}

func TestDirective_String(t *testing.T) {
	testCases := map[string]struct {
		d        directive
		expected string
	}{
		"Translate": {directive{"translate", []float64{1, -2, 3.5}}, "Translate (1, -2, 3.5)"},
		"Scale":     {directive{"scale", []float64{2}}, "Scale (2)"},
		"RotateZ":   {directive{"rotate-z", []float64{0}}, "RotateZ (0 rad)"},
		"Invalid":   {directive{"mirror", []float64{1}}, "mirror [1]"},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if s := tt.d.String(); s != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, s)
			}
		})
	}
}
