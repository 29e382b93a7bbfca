package notification

import (
	"strings"
	"unicode/utf8"
)

// Batch joins items into chunks of at most limit characters. Items are packed
// greedily in order and are never split, so an item longer than limit is sent
// as a chunk of its own.
func Batch(items []string, limit int) []string {
	var (
		chunks  []string
		current strings.Builder
		size    int
		open    bool
	)

	for _, item := range items {
		itemSize := utf8.RuneCountInString(item)

		if open && size+itemSize > limit {
			chunks = append(chunks, current.String())
			current.Reset()
			size = 0
		}

		current.WriteString(item)
		size += itemSize
		open = true
	}

	if open {
		chunks = append(chunks, current.String())
	}

	return chunks
}
