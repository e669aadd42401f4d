package nfa

import "testing"

func TestGenerationTracker_VisitedWithinGeneration(t *testing.T) {
	g := newGenerationTracker(4)
	if g.isVisited(2) {
		t.Fatal("fresh tracker reports state 2 as visited")
	}
	g.markVisited(2)
	if !g.isVisited(2) {
		t.Error("state 2 not visited after markVisited")
	}
	if g.isVisited(1) {
		t.Error("state 1 should not be visited")
	}
}

func TestGenerationTracker_AdvanceClearsWithoutReallocating(t *testing.T) {
	g := newGenerationTracker(4)
	g.markVisited(0)
	g.markVisited(3)

	g.advance()

	if g.isVisited(0) || g.isVisited(3) {
		t.Fatal("advance() did not clear the previous generation's visited set")
	}
	g.markVisited(0)
	if !g.isVisited(0) {
		t.Error("state 0 not visited in the new generation")
	}
}
