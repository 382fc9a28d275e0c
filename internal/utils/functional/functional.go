package functional

func Map[T any, R any](items []T, f func(T) R) []R {
	result := make([]R, len(items))
	for i, v := range items {
		result[i] = f(v)
	}
	return result
}

// Distinct returns the unique values of items, preserving first-seen order.
func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	var result []T
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
