package response_models

// PageResponse is the body of every list endpoint. TotalElements counts all
// rows, not only the returned page.
type PageResponse[T any] struct {
	Items         []T   `json:"items"`
	TotalElements int64 `json:"total_elements"`
}

func NewPage[S any, T any](items []S, total int64, mapper func(S) T) PageResponse[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, mapper(item))
	}
	return PageResponse[T]{Items: out, TotalElements: total}
}
