package common

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CheckArgs checks that exactly n arguments are passed.
func CheckArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidArgument, n, len(args))
	}
	return nil
}

// ParsePincodes decodes JSON array of integers.
func ParsePincodes(s string) ([]int, error) {
	var res []int

	err := json.Unmarshal([]byte(s), &res)
	if err != nil {
		return nil, fmt.Errorf("%w: pincodes must be JSON array of integers: %w", ErrInvalidArgument, err)
	}

	return NonNilPincodes(res), nil
}

// NonNilPincodes returns empty list for nil pincodes so records always hold
// JSON array.
func NonNilPincodes(pincodes []int) []int {
	if pincodes == nil {
		return []int{}
	}
	return pincodes
}

// ParsePincode decodes single decimal pincode.
func ParsePincode(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: pincode must be integer: %w", ErrInvalidArgument, err)
	}
	return n, nil
}

// ParseBool decodes boolean flag.
func ParseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return b, nil
}
