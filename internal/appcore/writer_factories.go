package appcore

import (
	"io"

	"selffold/internal/engine"
	"selffold/internal/writers"
)

type ProductWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewProductWriterFactory(format string, sort, header bool) ProductWriterFactory {
	return ProductWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w ProductWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Product, <-chan error) {
	return writers.StartProductWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
