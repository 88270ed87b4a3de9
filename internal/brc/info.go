package brc

// Info holds running statistics of a single station. Readings are scaled
// by 10, Sum is kept in 64 bits so it can't overflow on large inputs.
type Info struct {
	Min   int32
	Max   int32
	Sum   int64
	Count int64
}

func InfoFromItem(item Item) *Info {
	return &Info{
		Min:   item.value,
		Max:   item.value,
		Sum:   int64(item.value),
		Count: 1,
	}
}

func (info *Info) Update(value int32) {
	info.Sum += int64(value)
	info.Count += 1
	if info.Min > value {
		info.Min = value
	}
	if info.Max < value {
		info.Max = value
	}
}

// Merge folds other into info. It is associative and commutative, so
// partial results can be merged in any order.
func (info *Info) Merge(other *Info) {
	if info.Min > other.Min {
		info.Min = other.Min
	}
	if info.Max < other.Max {
		info.Max = other.Max
	}
	info.Sum += other.Sum
	info.Count += other.Count
}

// Mean returns ceil(Sum/Count) computed exactly on integers.
func (info *Info) Mean() int64 {
	q := info.Sum / info.Count
	if info.Sum%info.Count != 0 && info.Sum > 0 {
		q++
	}
	return q
}
