// pkg/util/diagnostics.go

package util

import (
	"fmt"
	"strings"
)

// Diagnostics accumulates non-fatal problems found while parsing or
// validating input, so that processing can continue past the first error
// (e.g. a single malformed ARINC 424 record must not abort an entire
// navigation database load). Context frames can be pushed and popped to
// scope messages to the record or section currently being processed,
// without panicking on unbalanced push/pop depth.
type Diagnostics struct {
	hierarchy []string
	messages  []string
}

func (d *Diagnostics) Push(context string) {
	d.hierarchy = append(d.hierarchy, context)
}

func (d *Diagnostics) Pop() {
	if len(d.hierarchy) == 0 {
		return
	}
	d.hierarchy = d.hierarchy[:len(d.hierarchy)-1]
}

func (d *Diagnostics) Addf(format string, args ...any) {
	d.messages = append(d.messages, strings.Join(d.hierarchy, " / ")+": "+fmt.Sprintf(format, args...))
}

func (d *Diagnostics) Add(err error) {
	d.messages = append(d.messages, strings.Join(d.hierarchy, " / ")+": "+err.Error())
}

func (d *Diagnostics) HaveErrors() bool {
	return d != nil && len(d.messages) > 0
}

func (d *Diagnostics) Messages() []string {
	if d == nil {
		return nil
	}
	return DuplicateSlice(d.messages)
}

func (d *Diagnostics) String() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.messages, "\n")
}
