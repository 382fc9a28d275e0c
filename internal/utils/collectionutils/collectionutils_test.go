package collectionutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssociate(t *testing.T) {
	type user struct {
		id   int64
		name string
	}

	users := []user{{1, "jake"}, {2, "anna"}}
	byId := Associate(users, func(u user) (int64, string) {
		return u.id, u.name
	})

	assert.Equal(t, map[int64]string{1: "jake", 2: "anna"}, byId)
}

func TestAssociateDuplicateKeysKeepLast(t *testing.T) {
	byId := Associate([]int{1, 1, 1}, func(v int) (int, int) {
		return v, v * 2
	})

	assert.Len(t, byId, 1)
}
