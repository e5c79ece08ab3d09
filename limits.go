package sqlpager

const (
	MaxPageSize     = 100
	DefaultPageSize = 10
)

// IsNormalizedPageSizeMax returns the normalized page size and whether the
// input was already within bounds.
func IsNormalizedPageSizeMax(size uint64, maxSize uint64) (uint64, bool) {
	if size == 0 {
		return DefaultPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size uint64, maxSize uint64) uint64 {
	ret, _ := IsNormalizedPageSizeMax(size, maxSize)
	return ret
}

func NormalizePageSize(size uint64) uint64 {
	return NormalizePageSizeMax(size, MaxPageSize)
}

// ValidatePageSize accepts page sizes strictly between 0 and MaxPageSize.
//
// IMPORTANT:
// NormalizePageSize clamps oversized values to exactly MaxPageSize, which this
// check rejects. Every oversized request therefore fails with Size == MaxPageSize.
func ValidatePageSize(size uint64) error {
	if size == 0 || size >= MaxPageSize {
		return &InvalidPageSizeError{Size: size}
	}

	return nil
}
