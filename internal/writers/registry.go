// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// ProductWriters maps an output format to its handler. Handlers register in
// init() blocks; the payload is the writer's productArgs.
var ProductWriters = map[string]func(w io.Writer, data interface{}) error{}

// RegisterProduct adds or replaces (last wins) the handler for format.
func RegisterProduct(format string, fn func(io.Writer, interface{}) error) { ProductWriters[format] = fn }

// WriteProduct dispatches payload to the handler registered for format.
func WriteProduct(format string, w io.Writer, payload interface{}) error {
	fn, ok := ProductWriters[format]
	if !ok {
		return fmt.Errorf("unknown product format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Registered returns the registered formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(ProductWriters))
	for f := range ProductWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
