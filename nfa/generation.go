package nfa

// generationTracker implements the "have I already added this state in
// this generation?" test in O(1) without clearing an array between input
// characters (§4.6, §9). Each slot holds the generation number it was
// last visited in; a state is considered visited iff its slot equals the
// current generation counter.
type generationTracker struct {
	visited []uint32
	gen     uint32
}

func newGenerationTracker(numStates int) *generationTracker {
	return &generationTracker{
		visited: make([]uint32, numStates),
		gen:     1,
	}
}

func (g *generationTracker) isVisited(s StateID) bool {
	return g.visited[s] == g.gen
}

func (g *generationTracker) markVisited(s StateID) {
	g.visited[s] = g.gen
}

// advance moves to the next input-character step.
func (g *generationTracker) advance() {
	g.gen++
}
