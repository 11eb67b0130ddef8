// Command mcqmatch finds the fragments of two or more structures with
// similar backbone geometry. Structures are read as torsion angle tables
// (see package io/tors) and compared residue by residue with the mean of
// circular quantities (MCQ) of their torsion angles.
//
// Usage:
//
//	mcqmatch align [flags] left.tors right.tors [right.tors ...]
//	mcqmatch angles
//
// Every right structure is aligned with the left one. Options may also be
// given in a YAML file (--config) or as MCQ_* environment variables, e.g.,
// MCQ_THRESHOLD=30.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/BurntSushi/torsmatch/cmd/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	_ = util.Log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
