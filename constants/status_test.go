package constants_test

import (
	"testing"

	"github.com/takuya-okamoto/zumenkan/constants"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to constants.DrawingStatus
		want     bool
	}{
		{constants.StatusPending, constants.StatusAnalyzing, true},
		{constants.StatusPending, constants.StatusUnapproved, true},
		{constants.StatusPending, constants.StatusApproved, false},
		{constants.StatusAnalyzing, constants.StatusUnapproved, true},
		{constants.StatusAnalyzing, constants.StatusFailed, true},
		{constants.StatusAnalyzing, constants.StatusApproved, false},
		{constants.StatusUnapproved, constants.StatusApproved, true},
		{constants.StatusUnapproved, constants.StatusFailed, false},
		{constants.StatusApproved, constants.StatusUnapproved, true},
		{constants.StatusFailed, constants.StatusAnalyzing, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestEveryStatusMayReturnToPending(t *testing.T) {
	for _, s := range []constants.DrawingStatus{
		constants.StatusPending,
		constants.StatusAnalyzing,
		constants.StatusUnapproved,
		constants.StatusApproved,
		constants.StatusFailed,
	} {
		if !s.CanTransition(constants.StatusPending) {
			t.Errorf("%s -> pending should be allowed for re-analysis", s)
		}
	}
}

func TestUnknownStatusNeverTransitions(t *testing.T) {
	bogus := constants.DrawingStatus("archived")
	if bogus.Valid() {
		t.Fatal("unexpected valid status")
	}
	if bogus.CanTransition(constants.StatusPending) {
		t.Error("unknown status must not transition")
	}
	if constants.StatusPending.CanTransition(bogus) {
		t.Error("transition into unknown status must fail")
	}
}

func TestTerminal(t *testing.T) {
	if constants.StatusAnalyzing.Terminal() || constants.StatusPending.Terminal() {
		t.Error("pending/analyzing are not terminal")
	}
	for _, s := range []constants.DrawingStatus{
		constants.StatusUnapproved, constants.StatusApproved, constants.StatusFailed,
	} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestCanonicalizeClassification(t *testing.T) {
	cases := []struct {
		in   string
		want constants.Classification
		ok   bool
	}{
		{"PartDrawing", constants.PartDrawing, true},
		{"partdrawing", constants.PartDrawing, true},
		{"部品図", constants.PartDrawing, true},
		{"ユニット図", constants.UnitDrawing, true},
		{"組立図", constants.AssemblyDrawing, true},
		{"assembly", constants.AssemblyDrawing, true},
		{"", constants.Unclassified, false},
		{"floor plan", constants.Unclassified, false},
	}
	for _, tc := range cases {
		got, ok := constants.CanonicalizeClassification(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalizeClassification(%q) = (%s, %v), expected (%s, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
