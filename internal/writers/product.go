// internal/writers/product.go
package writers

import (
	"io"

	"selffold/internal/common"
	"selffold/internal/engine"
	"selffold/internal/output"
)

type productArgs struct {
	Sort   bool
	Header bool
	In     <-chan engine.Product
}

func drainProducts(ch <-chan engine.Product) []engine.Product {
	list := make([]engine.Product, 0, 128)
	for p := range ch {
		list = append(list, p)
	}
	return list
}

// sorted drains and sorts when requested; ok=false means stream instead.
func (a productArgs) sorted() ([]engine.Product, bool) {
	if !a.Sort {
		return nil, false
	}
	list := drainProducts(a.In)
	common.SortProducts(list)
	return list, true
}

func init() {
	RegisterProduct(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(productArgs)
		if list, ok := args.sorted(); ok {
			return output.WriteText(w, list)
		}
		return output.StreamText(w, args.In)
	})

	RegisterProduct(output.FormatTSV, func(w io.Writer, payload interface{}) error {
		args := payload.(productArgs)
		if list, ok := args.sorted(); ok {
			return output.WriteTSV(w, list, args.Header)
		}
		return output.StreamTSV(w, args.In, args.Header)
	})

	RegisterProduct(output.FormatTable, func(w io.Writer, payload interface{}) error {
		args := payload.(productArgs)
		if list, ok := args.sorted(); ok {
			return output.WriteTable(w, list)
		}
		return output.StreamTable(w, args.In)
	})

	// JSON array
	RegisterProduct(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(productArgs)
		list := drainProducts(args.In)
		if args.Sort {
			common.SortProducts(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming
	RegisterProduct(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(productArgs)
		if list, ok := args.sorted(); ok {
			pipe, done := StartProductJSONLWriter(w, len(list))
			for _, p := range list {
				pipe <- p
			}
			close(pipe)
			return <-done
		}
		pipe, done := StartProductJSONLWriter(w, 64)
		for p := range args.In {
			pipe <- p
		}
		close(pipe)
		return <-done
	})
}

// StartProductWriter spins up a writer goroutine for folded products. The
// returned channel is always drained, even after a write error, so senders
// never block; the error (nil on success or broken pipe) arrives on the
// second channel once the input is closed.
func StartProductWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- engine.Product, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Product, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteProduct(format, out, productArgs{Sort: sort, Header: header, In: in})
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
