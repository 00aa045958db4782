package models

import "fmt"

// SortKey selects the feed attribute the report is ordered by.
type SortKey string

const (
	SortByListeners SortKey = "listeners"
	SortByJump      SortKey = "jump"
)

func NewSortKeyFromString(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByListeners, SortByJump:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("invalid sort key: %q", s)
}

// SortOrder selects the direction of the report ordering.
type SortOrder string

const (
	OrderAscending  SortOrder = "ascending"
	OrderDescending SortOrder = "descending"
)

func NewSortOrderFromString(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case OrderAscending, OrderDescending:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("invalid sort order: %q", s)
}
