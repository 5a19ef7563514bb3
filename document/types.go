package document

// Range is a selection in linear offsets.
//
// From is where the selection was anchored and To is where it was extended
// to, so a Range may be backward (From > To). Lookups use Start and End,
// which are normalized.
type Range struct {
	From int
	To   int
}

func NewRange(from, to int) Range { return Range{From: from, To: to} }

// Caret returns a collapsed range at offset.
func Caret(offset int) Range { return Range{From: offset, To: offset} }

func (r Range) Start() int {
	if r.From <= r.To {
		return r.From
	}
	return r.To
}

func (r Range) End() int {
	if r.From <= r.To {
		return r.To
	}
	return r.From
}

func (r Range) Length() int { return r.End() - r.Start() }

func (r Range) IsCollapsed() bool { return r.From == r.To }

func (r Range) IsBackward() bool { return r.From > r.To }

// Normalize returns the forward form of r.
func (r Range) Normalize() Range { return Range{From: r.Start(), To: r.End()} }

// Flip swaps the anchor and the extended end.
func (r Range) Flip() Range { return Range{From: r.To, To: r.From} }

// Contains reports whether offset lies within [Start, End].
func (r Range) Contains(offset int) bool {
	return offset >= r.Start() && offset <= r.End()
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps both ends of r into [0, length], preserving direction.
func ClampRange(r Range, length int) Range {
	return Range{
		From: clampInt(r.From, 0, length),
		To:   clampInt(r.To, 0, length),
	}
}
