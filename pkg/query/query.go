// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses optional, typed values out of URL query strings.
package query

import (
	"strconv"
	"strings"
)

// Float parses an optional float query parameter.
//
// Returns (nil, true) when the parameter is absent, (value, true) when it
// parses cleanly, and (nil, false) when it is present but malformed.
func Float(val string) (*float64, bool) {
	if val == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

// Trimmed returns the whitespace-trimmed value of a query parameter.
func Trimmed(val string) string {
	return strings.TrimSpace(val)
}
