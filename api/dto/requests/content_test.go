package requests

import (
	"reflect"
	"testing"
)

func TestSplitCategories(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"technology,finance", []string{"technology", "finance"}},
		{" technology , finance ", []string{"technology", "finance"}},
		{"technology,,finance,", []string{"technology", "finance"}},
		{"technology", []string{"technology"}},
		{"", []string{}},
		{"  ,  ", []string{}},
	}

	for _, tc := range cases {
		got := SplitCategories(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitCategories(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestSplitCategories_EmptyIsNotNil(t *testing.T) {
	if SplitCategories("") == nil {
		t.Error("empty input should yield an empty slice, not nil")
	}
}
