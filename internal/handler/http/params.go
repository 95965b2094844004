package http

import (
	"net/http"
	"strconv"
	"time"
)

// pageLimit reads the page and limit query parameters. Out-of-range
// values are left for the filter's Normalize to clamp.
func pageLimit(r *http.Request) (page int, limit int) {
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}
	return page, limit
}

// queryDate reads a YYYY-MM-DD query parameter. Returns ok=false when
// the parameter is absent or malformed.
func queryDate(r *http.Request, name string) (time.Time, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
