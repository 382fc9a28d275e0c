package collectionutils

// Associate transforms a slice of items into a map by applying the transform
// function to each item. Later items overwrite earlier ones on key collision.
func Associate[T any, K comparable, V any](items []T, transform func(T) (K, V)) map[K]V {
	m := make(map[K]V, len(items))
	for _, item := range items {
		k, v := transform(item)
		m[k] = v
	}

	return m
}
