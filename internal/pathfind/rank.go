package pathfind

import "sort"

// rank collapses equivalent candidates and orders the survivors.
//
// An inherited candidate is dropped when some direct candidate has exactly
// its node sequence minus the projected target, at equal or shorter
// length: a real direct path always beats an inherited substitute. The
// rule deliberately checks only identical prefixes; it does not minimize
// inheritance depth across different ancestors.
func rank(candidates []Candidate, maxPaths int) []Candidate {
	if len(candidates) == 0 {
		return nil
	}

	directs := make(map[string]int) // node-sequence key -> path length
	for _, c := range candidates {
		if c.Inherited() {
			continue
		}
		if prev, ok := directs[c.key()]; !ok || c.Len() < prev {
			directs[c.key()] = c.Len()
		}
	}

	seen := make(map[string]bool)
	unique := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.key()] {
			continue
		}
		if c.Inherited() {
			prefix := Candidate{Nodes: c.Nodes[:c.Len()-1]}
			if dlen, ok := directs[prefix.key()]; ok && dlen <= c.Len() {
				continue
			}
		}
		seen[c.key()] = true
		unique = append(unique, c)
	}

	// Shorter paths first; direct before inherited at equal length.
	// Stable so equal keys keep enumeration order.
	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Len() != unique[j].Len() {
			return unique[i].Len() < unique[j].Len()
		}
		return !unique[i].Inherited() && unique[j].Inherited()
	})

	if maxPaths > 0 && len(unique) > maxPaths {
		unique = unique[:maxPaths]
	}
	return unique
}
