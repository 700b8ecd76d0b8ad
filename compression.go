package heredity

// Compression indicates how (and whether) a pedigree CSV file is compressed
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionGzip
	CompressionZStandard
)

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "CompressionDisabled"
	case CompressionGzip:
		return "CompressionGzip"
	case CompressionZStandard:
		return "CompressionZStandard"

	default:
		return "Illegal selection"
	}
}
