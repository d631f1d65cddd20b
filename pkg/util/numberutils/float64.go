package numberutils

// MaxFloat64 returns the maximum value from a list of float64 values.
// It returns 0 when called with no arguments.
func MaxFloat64(nums ...float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	maxVal := nums[0]
	for _, num := range nums[1:] {
		if num > maxVal {
			maxVal = num
		}
	}
	return maxVal
}

// MinFloat64 returns the minimum value from a list of float64 values.
// It returns 0 when called with no arguments.
func MinFloat64(nums ...float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	minVal := nums[0]
	for _, num := range nums[1:] {
		if num < minVal {
			minVal = num
		}
	}
	return minVal
}

// AvgFloat64 returns the arithmetic mean of a list of float64 values.
// It returns 0 when called with no arguments.
func AvgFloat64(nums ...float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	var sum float64
	for _, num := range nums {
		sum += num
	}
	return sum / float64(len(nums))
}
