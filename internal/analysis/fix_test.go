package analysis_test

import (
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/analysis"
)

func TestCorrectDrawingNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"misread fourth char", "NAX13722D", "NAXT3722D"},
		{"already correct", "NAXT3722D", "NAXT3722D"},
		{"too short", "NAX1372", "NAX1372"},
		{"wrong prefix", "MAX13722D", "MAX13722D"},
		{"exactly min length", "NA1234567", "NA1T34567"},
		{"empty", "", ""},
		{"longer than min", "NAB93722D-01", "NABT3722D-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := analysis.CorrectDrawingNumber(tc.in); got != tc.want {
				t.Errorf("CorrectDrawingNumber(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}
