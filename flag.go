package main

import (
	"strconv"
	"strings"
)

// directiveFlag appends a directive to a shared list each time the flag is
// given, so that the list keeps the command line order across all
// transform flags.
type directiveFlag struct {
	op   string
	list *[]directive
}

func (f *directiveFlag) String() string {
	return ""
}

func (f *directiveFlag) Type() string {
	return strings.Join(transformCommands[f.op].args, ",")
}

func (f *directiveFlag) Set(s string) error {
	args, err := parseFloats(s)
	if err != nil {
		return err
	}
	d := directive{Op: f.op, Args: args}
	if err := d.validate(); err != nil {
		return err
	}
	*f.list = append(*f.list, d)
	return nil
}

// parseFloats parses comma or space separated numbers.
func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
