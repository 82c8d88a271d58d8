package registry

import "sort"

// maxNumber is the highest identifier number a category can hold.
const maxNumber = 999

// CategoryLedger tracks which numbers are in use per category code and
// computes next-free suggestions.
type CategoryLedger struct {
	used map[string]map[int]struct{}
}

// NewCategoryLedger returns an empty ledger.
func NewCategoryLedger() *CategoryLedger {
	return &CategoryLedger{used: make(map[string]map[int]struct{})}
}

// RecordUsed marks number as taken in category. Idempotent.
func (l *CategoryLedger) RecordUsed(category string, number int) {
	nums, ok := l.used[category]
	if !ok {
		nums = make(map[int]struct{})
		l.used[category] = nums
	}
	nums[number] = struct{}{}
}

// UsedNumbers returns the numbers in use for category, sorted ascending.
func (l *CategoryLedger) UsedNumbers(category string) []int {
	nums := make([]int, 0, len(l.used[category]))
	for n := range l.used[category] {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Count returns how many numbers are in use for category.
func (l *CategoryLedger) Count(category string) int {
	return len(l.used[category])
}

// NextFree returns the lowest free number in [1, 999] for category. The
// second return value is false when all 999 slots are taken.
func (l *CategoryLedger) NextFree(category string) (int, bool) {
	nums := l.used[category]
	for n := 1; n <= maxNumber; n++ {
		if _, taken := nums[n]; !taken {
			return n, true
		}
	}
	return 0, false
}

// NextFreeInBlock returns the lowest free number within the 100-wide hundreds
// block, scanning from the block base and never crossing into the next block.
// The second return value is false when all 100 slots are taken.
func (l *CategoryLedger) NextFreeInBlock(category string, block int) (int, bool) {
	nums := l.used[category]
	base := block * 100
	for off := 0; off < 100; off++ {
		n := base + off
		if _, taken := nums[n]; !taken {
			return n, true
		}
	}
	return 0, false
}

// Categories returns every category code observed in the data, sorted.
func (l *CategoryLedger) Categories() []string {
	codes := make([]string, 0, len(l.used))
	for code := range l.used {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
