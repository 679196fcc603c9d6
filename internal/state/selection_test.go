package state

import (
	"testing"
	"testing/quick"
)

func TestSelectionAdvanceWraps(t *testing.T) {
	var s Selection
	s.Reset(3)
	for i := 0; i < 5; i++ {
		s.Advance()
	}
	if s.Index() != 2 {
		t.Fatalf("expected index 2 after 5 advances on 3 rows, got %d", s.Index())
	}
}

func TestSelectionRetreatWraps(t *testing.T) {
	var s Selection
	s.Reset(4)
	s.Retreat()
	if s.Index() != 3 {
		t.Fatalf("expected retreat from 0 to wrap to 3, got %d", s.Index())
	}
	s.Retreat()
	if s.Index() != 2 {
		t.Fatalf("expected 2, got %d", s.Index())
	}
}

func TestSelectionEmptyListStaysAtZero(t *testing.T) {
	var s Selection
	s.Reset(0)
	s.Advance()
	s.Retreat()
	if s.Index() != 0 {
		t.Fatalf("expected 0 on empty list, got %d", s.Index())
	}
	if s.Select(0) {
		t.Fatalf("Select should fail on an empty list")
	}
}

func TestSelectionSelectBounds(t *testing.T) {
	var s Selection
	s.Reset(3)
	if !s.Select(2) || s.Index() != 2 {
		t.Fatalf("expected Select(2) to succeed, index=%d", s.Index())
	}
	if s.Select(3) || s.Select(-1) {
		t.Fatalf("out of range selects should fail")
	}
	if s.Index() != 2 {
		t.Fatalf("failed Select must not move the index, got %d", s.Index())
	}
}

func TestSelectionResetAfterMovement(t *testing.T) {
	var s Selection
	s.Reset(10)
	s.Advance()
	s.Advance()
	s.Reset(1)
	if s.Index() != 0 || s.Len() != 1 {
		t.Fatalf("expected reset to (0, 1), got (%d, %d)", s.Index(), s.Len())
	}
}

func TestSelectionStaysInBounds(t *testing.T) {
	prop := func(ops []uint8, lengths []uint8) bool {
		var s Selection
		for i, op := range ops {
			switch op % 3 {
			case 0:
				s.Advance()
			case 1:
				s.Retreat()
			default:
				n := 0
				if len(lengths) > 0 {
					n = int(lengths[i%len(lengths)] % 8)
				}
				s.Reset(n)
			}

			if s.Len() == 0 {
				if s.Index() != 0 {
					return false
				}
				continue
			}
			if s.Index() < 0 || s.Index() >= s.Len() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 500}); err != nil {
		t.Fatal(err)
	}
}
