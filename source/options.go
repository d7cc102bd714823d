package source

const (
	// DefaultMaxRecordBytes is the longest line accepted when Options leaves it unset.
	DefaultMaxRecordBytes = 1 << 20
	// DefaultBufferBytes is the initial read buffer size.
	DefaultBufferBytes = 64 << 10
)

// Options tunes how records are read.
type Options struct {
	// MaxRecordBytes is the longest accepted line, excluding the line terminator.
	MaxRecordBytes int
	// BufferBytes is the initial read buffer size. It grows up to MaxRecordBytes.
	BufferBytes int
}

// ApplyDefaults fills unset fields.
func (o *Options) ApplyDefaults() {
	if o.MaxRecordBytes <= 0 {
		o.MaxRecordBytes = DefaultMaxRecordBytes
	}
	if o.BufferBytes <= 0 {
		o.BufferBytes = DefaultBufferBytes
	}
	if o.BufferBytes > o.MaxRecordBytes {
		o.BufferBytes = o.MaxRecordBytes
	}
}
