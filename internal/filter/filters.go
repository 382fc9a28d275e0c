package filter

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Filter struct {
	Limit  int64
	Offset int64
}

func NewFilter(limit, offset int64) Filter {
	return Filter{
		Limit:  limit,
		Offset: offset,
	}
}

// Normalized clamps the filter to the supported window: limit to [0, MaxLimit]
// and offset to a minimum of 0, whatever the caller supplied. Out-of-range
// values are coerced rather than rejected so result sets stay bounded.
func (f Filter) Normalized() Filter {
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	return f
}
