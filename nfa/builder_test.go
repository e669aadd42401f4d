package nfa

import (
	"testing"

	"github.com/go-automata/automata/literal"
)

func TestBuilder_NewBuilderSeedsEofState(t *testing.T) {
	b := NewBuilder()
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	if b.Transitions()[0].Kind != TEof {
		t.Errorf("Transitions()[0].Kind = %v, want TEof", b.Transitions()[0].Kind)
	}
	if b.Eof() != 0 {
		t.Errorf("Eof() = %d, want 0", b.Eof())
	}
}

func TestBuilder_NewLabelSelfLoops(t *testing.T) {
	b := NewBuilder()
	id := b.NewLabel(literal.NewChar('a'))
	got := b.Transitions()[id]
	if got.Kind != TLabel {
		t.Fatalf("Kind = %v, want TLabel", got.Kind)
	}
	if got.Next != id {
		t.Errorf("Next = %d, want self-loop %d", got.Next, id)
	}
}

func TestBuilder_NewSplitVacantSlots(t *testing.T) {
	b := NewBuilder()
	id := b.NewSplit(3, true, 0, false)
	got := b.Transitions()[id]
	if !got.HasA || got.A != 3 {
		t.Errorf("A = (%d, %v), want (3, true)", got.A, got.HasA)
	}
	if got.HasB {
		t.Error("HasB = true, want false for a vacant second slot")
	}
}

func TestBuilder_NewAccept(t *testing.T) {
	b := NewBuilder()
	id := b.NewAccept()
	if b.Transitions()[id].Kind != TAccept {
		t.Errorf("Kind = %v, want TAccept", b.Transitions()[id].Kind)
	}
}

func TestBuilder_NewGroupCarriesLabel(t *testing.T) {
	b := NewBuilder()
	start := b.NewLabel(literal.NewChar('x'))
	id := b.NewGroup("number", start)
	got := b.Transitions()[id]
	if got.Kind != TGroup {
		t.Fatalf("Kind = %v, want TGroup", got.Kind)
	}
	if got.Label != "number" || got.Next != start {
		t.Errorf("Label/Next = (%q, %d), want (\"number\", %d)", got.Label, got.Next, start)
	}
}

func TestBuilder_PatchLabel(t *testing.T) {
	b := NewBuilder()
	lbl := b.NewLabel(literal.NewChar('a'))
	accept := b.NewAccept()
	b.patch(fragment{out: []StateID{lbl}}, accept)
	if got := b.Transitions()[lbl].Next; got != accept {
		t.Errorf("Next = %d, want %d", got, accept)
	}
}

func TestBuilder_PatchSplitSecondSlot(t *testing.T) {
	b := NewBuilder()
	split := b.NewSplit(0, true, 0, false)
	accept := b.NewAccept()
	b.patch(fragment{out: []StateID{split}}, accept)
	got := b.Transitions()[split]
	if !got.HasB || got.B != accept {
		t.Errorf("B/HasB = (%d, %v), want (%d, true)", got.B, got.HasB, accept)
	}
}

func TestBuilder_PatchPanicsOnInvalidTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("patch on an Accept state did not panic")
		}
	}()
	b := NewBuilder()
	accept := b.NewAccept()
	b.patch(fragment{out: []StateID{accept}}, 0)
}
