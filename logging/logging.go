// Package logging labels goroutines so they can be told apart in profiles and goroutine dumps.
package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/pprof"
	"strconv"
)

// Labels are extra pprof labels attached to an annotated goroutine.
type Labels map[string]any

// GoAnnotate runs fn in a new goroutine labelled with its caller's location and the given labels.
func GoAnnotate(ctx context.Context, fn func(context.Context), labels ...Labels) {
	go pprof.Do(ctx, getLabels(labels...), fn)
}

// DoAnnotate runs fn in the current goroutine, labelled as GoAnnotate would.
func DoAnnotate(ctx context.Context, fn func(context.Context), labels ...Labels) {
	pprof.Do(ctx, getLabels(labels...), fn)
}

func getLabels(labelMaps ...Labels) pprof.LabelSet {
	// Skip getLabels and the exported caller.
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		panic("failed to get caller's stack frame")
	}

	labels := []string{"fn", runtime.FuncForPC(pc).Name(), "file", file, "line", strconv.Itoa(line)}

	for _, labelMap := range labelMaps {
		for key, val := range labelMap {
			labels = append(labels, key, fmt.Sprintf("%v", val))
		}
	}

	return pprof.Labels(labels...)
}
