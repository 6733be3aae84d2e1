package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/seqsense/meshxform/mat"
)

// transformLog writes every step to the log file and progress messages to
// the console. Matrices are printed to the console only in verbose mode.
type transformLog struct {
	file    *log.Logger
	out     io.Writer
	verbose bool
}

func newTransformLog(file, out io.Writer, verbose bool) *transformLog {
	return &transformLog{
		file:    log.New(file, "", 0),
		out:     out,
		verbose: verbose,
	}
}

// Printf writes to both the log file and the console.
func (l *transformLog) Printf(format string, v ...interface{}) {
	l.file.Printf(format, v...)
	fmt.Fprintf(l.out, format+"\n", v...)
}

// Logf writes to the log file only.
func (l *transformLog) Logf(format string, v ...interface{}) {
	l.file.Printf(format, v...)
}

func (l *transformLog) Matrix(m mat.Mat4) {
	s := m.String()
	l.file.Print(s)
	if l.verbose {
		fmt.Fprint(l.out, s)
	}
}

func defaultLogPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".log"
}
