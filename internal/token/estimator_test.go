package token

import (
	"strings"
	"testing"
)

func TestHeuristic_EmptyText(t *testing.T) {
	if got := (Heuristic{}).Count(""); got != 0 {
		t.Errorf("expected 0 tokens for empty text, got %d", got)
	}
}

func TestHeuristic_Deterministic(t *testing.T) {
	est := Heuristic{}
	text := "name,age\nAlice,20\nBob,30"

	first := est.Count(text)
	for i := 0; i < 10; i++ {
		if got := est.Count(text); got != first {
			t.Fatalf("count changed across calls: %d then %d", first, got)
		}
	}
	if first <= 0 {
		t.Errorf("expected positive count, got %d", first)
	}
}

func TestHeuristic_MonotonicUnderGrowth(t *testing.T) {
	est := Heuristic{}

	small := "name,age\nAlice,20"
	large := small + "\nBob,30\nCharlie,40"

	if est.Count(large) < est.Count(small) {
		t.Errorf("larger document yielded fewer tokens: %d < %d",
			est.Count(large), est.Count(small))
	}
}

func TestHeuristic_ScalesWithDataSize(t *testing.T) {
	est := Heuristic{}

	small := "a b c"
	big := strings.Repeat("a b c ", 100)

	if est.Count(big) <= est.Count(small) {
		t.Errorf("expected count to grow with input size: small=%d big=%d",
			est.Count(small), est.Count(big))
	}
}

func TestTiktoken_Count(t *testing.T) {
	est, err := NewTiktoken()
	if err != nil {
		t.Fatalf("failed to construct tiktoken estimator: %v", err)
	}

	if got := est.Count(""); got != 0 {
		t.Errorf("expected 0 tokens for empty text, got %d", got)
	}

	text := "name,age\nAlice,20\nBob,30\nCharlie,40"
	first := est.Count(text)
	if first <= 0 {
		t.Errorf("expected positive count for valid CSV, got %d", first)
	}
	if second := est.Count(text); second != first {
		t.Errorf("count not deterministic: %d then %d", first, second)
	}
}
