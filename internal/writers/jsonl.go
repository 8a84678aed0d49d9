// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"selffold/internal/engine"
	"selffold/internal/jsonlutil"
	"selffold/internal/output"
)

// StartProductJSONLWriter streams each engine.Product as one JSON line (v1).
func StartProductJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Product, <-chan error) {
	return jsonlutil.Start[engine.Product](out, bufSize,
		func(enc *json.Encoder, p engine.Product) error {
			return enc.Encode(output.ToAPIStructure(p))
		},
		IsBrokenPipe,
	)
}
