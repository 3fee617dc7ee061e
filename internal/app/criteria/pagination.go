package criteria

// NextOffset returns the offset of the following page
func NextOffset(c Criteria) int {
	return c.Offset + c.Limit
}

// PrevOffset returns the offset of the preceding page; the result is not clamped
func PrevOffset(c Criteria) int {
	return c.Offset - c.Limit
}

// PageNumber returns the 1-based page shown for the snapshot after clamping
func PageNumber(c Criteria) int {
	clamped := Clamp(c)
	return clamped.Offset/clamped.Limit + 1
}

// Clamp makes a snapshot safe to display or send: offset >= 0 and limit > 0
func Clamp(c Criteria) Criteria {
	if c.Offset < 0 {
		c.Offset = 0
	}

	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}

	return c
}
