package service

import "testing"

// TestUseSearchIndex 指定了排序字段的检索必须走MySQL 否则排序参数会被吞掉
func TestUseSearchIndex(t *testing.T) {
	cases := []struct {
		name    string
		keyword string
		sortBy  string
		want    bool
	}{
		{"keyword only", "golang", "", true},
		{"keyword with sort", "golang", "visit_count", false},
		{"sort only", "", "visit_count", false},
		{"neither", "", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := useSearchIndex(c.keyword, c.sortBy); got != c.want {
				t.Errorf("useSearchIndex(%q, %q) = %v, want %v", c.keyword, c.sortBy, got, c.want)
			}
		})
	}
}
