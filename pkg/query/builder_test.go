package query

import (
	"testing"

	"PlayTube.com/pkg/constants"
)

// TestNormalizePage 测试分页参数归一化
func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name         string
		page, size   int64
		wantPage     int64
		wantPageSize int64
	}{
		{"defaults", 0, 0, constants.DefaultPageNum, constants.DefaultPageSize},
		{"negative", -3, -10, constants.DefaultPageNum, constants.DefaultPageSize},
		{"normal", 2, 20, 2, 20},
		{"capped", 1, 100000, 1, constants.MaxPageSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			page, size := NormalizePage(c.page, c.size)
			if page != c.wantPage || size != c.wantPageSize {
				t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					c.page, c.size, page, size, c.wantPage, c.wantPageSize)
			}
		})
	}
}

// TestResolveSort 测试排序白名单 不在白名单里的字段要回落到默认排序
func TestResolveSort(t *testing.T) {
	allowed := map[string]bool{"visit_count": true, "duration": true}

	cases := []struct {
		name      string
		field     string
		direction string
		want      string
	}{
		{"empty falls back", "", "", "created_at DESC"},
		{"not in whitelist", "password", "asc", "created_at DESC"},
		{"injection attempt", "created_at; DROP TABLE users", "asc", "created_at DESC"},
		{"asc", "visit_count", "asc", "visit_count ASC"},
		{"numeric asc", "visit_count", "1", "visit_count ASC"},
		{"desc", "duration", "desc", "duration DESC"},
		{"numeric desc", "duration", "-1", "duration DESC"},
		{"unknown direction defaults desc", "duration", "sideways", "duration DESC"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveSort(c.field, c.direction, allowed)
			if got != c.want {
				t.Errorf("ResolveSort(%q, %q) = %q, want %q", c.field, c.direction, got, c.want)
			}
		})
	}
}
