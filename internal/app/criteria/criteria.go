package criteria

import (
	"net/url"
	"strconv"
)

// DefaultLimit is the page size restored by Clear
const DefaultLimit = 100

// Query parameter names understood by the log store
const (
	ParamMinTime        = "minTime"
	ParamMaxTime        = "maxTime"
	ParamOffset         = "offset"
	ParamLimit          = "limit"
	ParamExcludeLoggers = "excludeLoggers"
	ParamSearch         = "search"
)

// Criteria is one immutable snapshot of the log query filters and pagination
type Criteria struct {
	MinTime        string
	MaxTime        string
	Offset         int
	Limit          int
	ExcludeLoggers ExclusionSet
	Search         string
}

// Defaults returns the cleared criteria
func Defaults() Criteria {
	return Criteria{
		Limit:          DefaultLimit,
		ExcludeLoggers: NewExclusionSet(),
	}
}

// Clone returns a deep copy
func (c Criteria) Clone() Criteria {
	c.ExcludeLoggers = c.ExcludeLoggers.Clone()
	return c
}

// Equal reports structural equality of two snapshots
func (c Criteria) Equal(other Criteria) bool {
	return c.MinTime == other.MinTime &&
		c.MaxTime == other.MaxTime &&
		c.Offset == other.Offset &&
		c.Limit == other.Limit &&
		c.Search == other.Search &&
		c.ExcludeLoggers.Equal(other.ExcludeLoggers)
}

// Values encodes the snapshot as query parameters, clamping pagination; excluded ids become repeated keys
func (c Criteria) Values() url.Values {
	clamped := Clamp(c)
	values := url.Values{}

	if clamped.MinTime != "" {
		values.Set(ParamMinTime, clamped.MinTime)
	}

	if clamped.MaxTime != "" {
		values.Set(ParamMaxTime, clamped.MaxTime)
	}

	values.Set(ParamOffset, strconv.Itoa(clamped.Offset))
	values.Set(ParamLimit, strconv.Itoa(clamped.Limit))

	for _, id := range clamped.ExcludeLoggers.IDs() {
		values.Add(ParamExcludeLoggers, strconv.Itoa(id))
	}

	if clamped.Search != "" {
		values.Set(ParamSearch, clamped.Search)
	}

	return values
}

// Encode returns the URL-encoded query string
func (c Criteria) Encode() string {
	return c.Values().Encode()
}
