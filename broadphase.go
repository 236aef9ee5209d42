package boundtree

// ============================================================================
// Types
// ============================================================================

// Pair - Paire de valeurs potentiellement en collision
// Candidate only: boundaries overlap, so the pair is worth handing to
// narrow-phase testing, which is not this package's job.
type Pair[V comparable] struct {
	A V
	B V
}

// candidate snapshots one indexed value with its boundary and enumeration
// index, so the pair scan can dedupe (A,B)/(B,A) by index order the way the
// grid scan dedupes by body index.
type candidate[V comparable, B Boundary[B]] struct {
	index    int
	value    V
	boundary B
}

const DEFAULT_WORKERS = 1

// ============================================================================
// Pair finding
// ============================================================================

func snapshot[V comparable, B Boundary[B]](tree *Tree[V, B]) ([]candidate[V, B], map[V]int) {
	candidates := make([]candidate[V, B], 0, tree.Count())
	index := make(map[V]int, tree.Count())

	i := 0
	for v := range tree.All() {
		candidates = append(candidates, candidate[V, B]{
			index:    i,
			value:    v,
			boundary: tree.extractor(v),
		})
		if _, seen := index[v]; !seen {
			index[v] = i
		}
		i++
	}

	return candidates, index
}

// FindPairs - Version séquentielle
// Enumerates every unordered pair of indexed values whose boundaries
// overlap, each pair exactly once. The tree is only read.
func FindPairs[V comparable, B Boundary[B]](tree *Tree[V, B]) []Pair[V] {
	candidates, index := snapshot(tree)
	pairs := make([]Pair[V], 0, len(candidates)/2)

	for _, c := range candidates {
		for other := range tree.Query(c.boundary) {
			// Évite doublons (A,B) et (B,A)
			if index[other] <= c.index {
				continue
			}
			pairs = append(pairs, Pair[V]{A: c.value, B: other})
		}
	}

	return pairs
}

// FindPairsParallel - Version parallèle retournant un channel
// Workers query the tree concurrently; queries are read-only, so this is
// safe as long as nothing mutates the tree until the channel is drained.
func FindPairsParallel[V comparable, B Boundary[B]](tree *Tree[V, B], workersCount int) <-chan Pair[V] {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	pairsChan := make(chan Pair[V], workersCount*10)

	candidates, index := snapshot(tree)

	go func() {
		defer close(pairsChan)

		task(workersCount, candidates, func(c candidate[V, B]) {
			for other := range tree.Query(c.boundary) {
				if index[other] <= c.index {
					continue
				}
				pairsChan <- Pair[V]{A: c.value, B: other}
			}
		})
	}()

	return pairsChan
}
