package exporter

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// contain runs fn and turns a returned error or a panic into an error
// carrying a stack trace.
func contain(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = errors.Wrap(e, "panic")
			return
		}
		err = errors.Newf("panic: %v", r)
	}()
	if err := fn(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// diagnostic renders the text block that replaces a failed node.
func diagnostic(subject string, err error, depth int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EXPORT ERROR : YOU HAVE A PROBLEM WITH YOUR EXPORT OF %s. THE FOLLOWING INFORMATION MAY HELP:\n", subject)
	fmt.Fprintf(&b, "MESSAGE: %q\n", err.Error())
	b.WriteString("TRACE: ")
	b.WriteString(strings.Join(traceFrames(err, depth), " | "))
	b.WriteString("\n")
	return b.String()
}

// traceFrames returns up to n frames of the deepest stack trace in the error
// chain, innermost call first.
func traceFrames(err error, n int) []string {
	var st *errors.ReportableStackTrace
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		if s := errors.GetReportableStackTrace(e); s != nil && len(s.Frames) > 0 {
			st = s
		}
	}
	if st == nil {
		return []string{"no stack trace"}
	}
	frames := make([]string, 0, n)
	for i := len(st.Frames) - 1; i >= 0 && len(frames) < n; i-- {
		fr := st.Frames[i]
		name := fr.Function
		if fr.Module != "" {
			name = fr.Module + "." + fr.Function
		}
		frames = append(frames, fmt.Sprintf("%s (%s:%d)", name, fr.Filename, fr.Lineno))
	}
	return frames
}
