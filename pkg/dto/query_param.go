package dto

import (
	"math"
	"strconv"

	"github.com/alimikegami/bdseller-service/pkg/errs"
)

// Filter carries the optional page/size window of a list request. Skip and
// Limit are only meaningful when Paginate is set.
type Filter struct {
	Page     int64
	Size     int64
	Paginate bool
}

func (f Filter) Skip() int64 {
	return f.Page * f.Size
}

func (f Filter) Limit() int64 {
	return f.Size
}

// ParseFilter applies pagination only when both page and size are supplied.
func ParseFilter(page, size string) (Filter, error) {
	filter := Filter{}
	if page == "" && size == "" {
		return filter, nil
	}

	pageInt, pageErr := parseOptionalInt(page)
	sizeInt, sizeErr := parseOptionalInt(size)
	if pageErr != nil || sizeErr != nil {
		return filter, errs.ErrInvalidPagination
	}

	if page == "" || size == "" {
		return filter, nil
	}

	if pageInt < 0 || sizeInt <= 0 {
		return filter, errs.ErrInvalidPagination
	}

	// page*size must fit in the skip count
	if pageInt > math.MaxInt64/sizeInt {
		return filter, errs.ErrInvalidPagination
	}

	filter.Page = pageInt
	filter.Size = sizeInt
	filter.Paginate = true

	return filter, nil
}

func parseOptionalInt(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}
