// Package paginate splits an ordered slice into fixed-size pages.
package paginate

import "errors"

// ErrInvalidPageSize is returned when Paginate is called with a
// non-positive page size.
var ErrInvalidPageSize = errors.New("paginate: page size must be positive")

// Page is a contiguous view into the slice Paginate was given.
type Page[T any] []T

// Paginate splits items into pages of at most pageSize elements each; the
// last page may be shorter. It returns ErrInvalidPageSize if pageSize is
// not positive.
func Paginate[T any](items []T, pageSize int) ([]Page[T], error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	pages := make([]Page[T], 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, Page[T](items[start:end]))
	}
	return pages, nil
}
