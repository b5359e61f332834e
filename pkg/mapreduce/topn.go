package mapreduce

import (
	"fmt"
	"sort"
)

// TopTerms returns the n most frequent terms formatted as "term:count".
// Ties are broken alphabetically so manifests are stable between runs.
func TopTerms(counts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}

	terms := make([]string, limit)
	for i := 0; i < limit; i++ {
		terms[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return terms
}
