package nfa

import (
	"sort"
	"testing"
)

func labeled(t *testing.T, label, pattern string) LabeledNFA {
	t.Helper()
	return LabeledNFA{Label: Label(label), NFA: mustCompile(t, pattern)}
}

func TestBuild_RejectsEmptyInput(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Error("Build(nil) succeeded, want error")
	}
}

func TestNFASet_UnionOfPatterns(t *testing.T) {
	set, err := Build([]LabeledNFA{
		labeled(t, "(a-z)+", "(a-z)+"),
		labeled(t, "(A-Z)+", "(A-Z)+"),
		labeled(t, "(0-9)+", "(0-9)+"),
		labeled(t, "do", "do"),
		labeled(t, "w|if|b", "while|if|break"),
	})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	nonEmpty := []string{
		"abcdefghijklmnopqrstuvwxyz",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"012931230912312912212",
		"do",
		"while",
		"if",
		"break",
	}
	for _, input := range nonEmpty {
		if len(set.IsMatch(input)) == 0 {
			t.Errorf("IsMatch(%q) = empty, want at least one match", input)
		}
	}

	empty := []string{"", "!hello"}
	for _, input := range empty {
		if len(set.IsMatch(input)) != 0 {
			t.Errorf("IsMatch(%q) = %v, want empty", input, set.IsMatch(input))
		}
	}

	matches := set.IsMatch("ifbreak")
	sort.Slice(matches, func(i, j int) bool { return matches[i].Len < matches[j].Len })

	want := []Match{
		{Label: "w|if|b", HasLabel: true, Len: 2},
		{Label: "(a-z)+", HasLabel: true, Len: 7},
	}
	if len(matches) != len(want) {
		t.Fatalf("IsMatch(\"ifbreak\") = %v, want %v", matches, want)
	}
	for i := range matches {
		if matches[i] != want[i] {
			t.Errorf("IsMatch(\"ifbreak\")[%d] = %v, want %v", i, matches[i], want[i])
		}
	}
}

func TestNFASet_FixedStringFastPath(t *testing.T) {
	set, err := Build([]LabeledNFA{
		labeled(t, "if", "if"),
		labeled(t, "while", "while"),
	})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !set.allFixed {
		t.Fatal("allFixed = false, want true for two fixed-string components")
	}

	got := set.IsMatch("if")
	if len(got) != 1 || got[0].Label != "if" || got[0].Len != 2 {
		t.Errorf("IsMatch(\"if\") = %v, want one match labeled \"if\" of length 2", got)
	}
}
