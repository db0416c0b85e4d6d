package util

const (
	DefaultPageSize = 12
	maxPageSize     = 100
)

func Calculate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = DefaultPageSize
	}
	return (page - 1) * size, size
}
