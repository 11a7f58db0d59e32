// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidateID trims s and checks that it is a single non-empty token.
// It returns the trimmed ID.
func ValidateID(s string) (string, error) {
	id := strings.TrimSpace(s)
	if id == "" {
		return "", fmt.Errorf("%w: ID must not be empty", ErrInvalidIDFormat)
	}
	if len(strings.Fields(id)) != 1 {
		return "", fmt.Errorf("%w: %q must not contain spaces", ErrInvalidIDFormat, id)
	}
	return id, nil
}

// ValidateYear checks that year lies within [MinYear, MaxYear].
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidYearValue, year, MinYear, MaxYear)
	}
	return nil
}

// ParseYear parses a single year token and checks its bounds. The token
// must be plain digits with no sign or leading zero.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(strings.Fields(s)) != 1 {
		return 0, fmt.Errorf("%w: enter exactly one year", ErrInvalidYearValue)
	}
	if !isDigits(s) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidYearValue, s)
	}
	if s[0] == '0' {
		return 0, fmt.Errorf("%w: %q has a leading zero", ErrInvalidYearValue, s)
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidYearValue, s)
	}
	if err := ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// ParsePrice parses a raw price. A blank entry yields NoPrice; anything else
// must be a single number greater than zero.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoPrice, nil
	}
	if len(strings.Fields(s)) != 1 {
		return 0, fmt.Errorf("%w: enter exactly one number", ErrInvalidPrice)
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPrice, s)
	}
	if !(price > 0) || math.IsInf(price, 1) {
		return 0, fmt.Errorf("%w: %v must be greater than 0", ErrInvalidPrice, price)
	}
	return price, nil
}
