package scoring

import "sort"

// rankSectionsAscending returns section names ordered lowest score first,
// considering only sections with a defined score. Ties keep the original
// section order (stable sort) so output is deterministic across runs.
// n <= 0 returns all ranked sections; otherwise the list is capped at n.
//
// This is the single ranking primitive behind both improvement priorities and
// recommendation priority selection; the two lists must come from the same
// logic or they drift apart.
func rankSectionsAscending(order []string, scores map[string]*float64, n int) []string {
	ranked := make([]string, 0, len(order))
	for _, name := range order {
		if s, ok := scores[name]; ok && s != nil {
			ranked = append(ranked, name)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *scores[ranked[i]] < *scores[ranked[j]]
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
