package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultTake = 20
	MaxTake     = 100
)

// ParsePagination parses skip/take query values. Missing values default to
// skip 0 and take DefaultTake; take is capped at MaxTake.
func ParsePagination(skipStr, takeStr string) (int, int, error) {
	skip, take := 0, DefaultTake

	if skipStr != "" {
		v, err := strconv.Atoi(skipStr)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("invalid skip %q, expected a non-negative integer", skipStr)
		}
		skip = v
	}

	if takeStr != "" {
		v, err := strconv.Atoi(takeStr)
		if err != nil || v < 1 {
			return 0, 0, fmt.Errorf("invalid take %q, expected a positive integer", takeStr)
		}
		take = min(v, MaxTake)
	}

	return skip, take, nil
}

// ParseOptionalBool returns nil for an empty value so "not filtered" stays
// distinct from false.
func ParseOptionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", value)
	}
	return &b, nil
}

// ParsePage parses page/page_size for offset search APIs.
func ParsePage(pageStr, sizeStr string) (int, int, error) {
	page, size := 1, DefaultTake

	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil || v < 1 {
			return 0, 0, fmt.Errorf("invalid page %q, expected a positive integer", pageStr)
		}
		page = v
	}
	if sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v < 1 {
			return 0, 0, fmt.Errorf("invalid page_size %q, expected a positive integer", sizeStr)
		}
		size = min(v, MaxTake)
	}

	return page, size, nil
}
