package shared

import (
	"net/url"
	"strconv"
	"strings"
)

// ParsePageSize reads pageSize, falling back to defaultSize and capping at
// maxSize. Malformed values are reported to v.
func ParsePageSize(values url.Values, defaultSize, maxSize int, v *Validator) int {
	size := defaultSize
	if raw := strings.TrimSpace(values.Get("pageSize")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			v.Add("pageSize", "must be a positive integer")
		} else {
			size = parsed
		}
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return size
}

func parsePage(values url.Values, v *Validator) int {
	raw := strings.TrimSpace(values.Get("page"))
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		v.Add("page", "must be a positive integer")
		return 1
	}
	return page
}
