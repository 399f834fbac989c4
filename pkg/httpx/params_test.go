package httpx_test

import (
	"testing"

	"github.com/vietct/orderflow-client/pkg/httpx"
)

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestPageQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		sort       string
		categoryID string
		want       string
	}{
		{"full", 2, 9, "createdAt,DESC", "cat-1", "categoryId=cat-1&page=2&size=9&sort=createdAt%2CDESC"},
		{"no_category", 0, 9, "createdAt,DESC", "", "page=0&size=9&sort=createdAt%2CDESC"},
		{"no_sort", 1, 20, "", "", "page=1&size=20"},
		{"negative_page_clamped", -3, 9, "", "", "page=0&size=9"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := httpx.PageQuery(tt.page, tt.size, tt.sort, tt.categoryID).Encode()
			if got != tt.want {
				t.Fatalf("PageQuery(%d,%d,%q,%q) = %q, want %q",
					tt.page, tt.size, tt.sort, tt.categoryID, got, tt.want)
			}
		})
	}
}
