package topology

import (
	"io"
	"log"
)

// ScanOrder pins the order in which the flood fill visits cells. It only
// affects id numbering, never which cells share a room.
type ScanOrder int

// Scan orders
const (
	// RowMajor scans row by row, west to east within a row.
	RowMajor ScanOrder = iota
	// ColumnMajor scans column by column, north to south within a column.
	ColumnMajor
)

// Option configures an extraction.
type Option func(*options)

type options struct {
	order  ScanOrder
	logger *log.Logger
}

func defaultOptions() options {
	return options{
		order:  RowMajor,
		logger: log.New(io.Discard, "", 0),
	}
}

// WithScanOrder selects the flood-fill scan order.
func WithScanOrder(order ScanOrder) Option {
	return func(o *options) {
		if order == RowMajor || order == ColumnMajor {
			o.order = order
		}
	}
}

// WithLogger routes per-phase progress lines to l. Nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
