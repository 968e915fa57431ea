// Package service defines the contracts between the ledger core and its
// external collaborators.
package service

// BlobStore is the persistence collaborator: a key-value store that holds
// the whole serialized ledger as one blob. Save replaces the previous
// blob entirely; there are no partial writes.
type BlobStore interface {
	// Load returns the stored blob, or nil when nothing has been saved yet.
	Load() ([]byte, error)
	// Save durably replaces the stored blob.
	Save(data []byte) error
	// Close releases the underlying resources.
	Close() error
}

// ChartSink consumes labeled numeric series. The core only produces;
// it never reads back from the sink.
type ChartSink interface {
	Series(title string, labels []string, values []float64) error
}
