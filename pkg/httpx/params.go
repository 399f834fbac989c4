package httpx

import (
	"net/url"
	"strconv"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PageQuery — query-параметры страничного запроса каталога.
// Отрицательный индекс страницы приводится к нулю; пустые sort/categoryId
// в строку запроса не попадают.
func PageQuery(page, size int, sort, categoryID string) url.Values {
	if page < 0 {
		page = 0
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if sort != "" {
		q.Set("sort", sort)
	}
	if categoryID != "" {
		q.Set("categoryId", categoryID)
	}
	return q
}
