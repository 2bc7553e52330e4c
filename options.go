package bashnul

const (
	// DefaultChunkSize is the size of a single read from the source.
	DefaultChunkSize = 25 * 8192

	// DefaultRetryLimit is the number of consecutive reads or writes that may
	// make no progress before the stream is declared stuck.
	DefaultRetryLimit = 1000
)

type Option func(s *Stream)

// WithChunkSize sets the read size. Values below 1 are ignored.
func WithChunkSize(size int) Option {
	return func(s *Stream) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithRetryLimit sets how many consecutive attempts without progress are
// tolerated on the source or the sink. Values below 1 are ignored.
func WithRetryLimit(limit int) Option {
	return func(s *Stream) {
		if limit > 0 {
			s.retryLimit = limit
		}
	}
}
