package calendar

// isValidWeekDate checks the ISO week-date fields. The week number is capped
// at 52; 53-week years are not special-cased.
func isValidWeekDate(weekYear, weekOfYear, dayOfWeek int32) bool {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return false
	}
	if weekOfYear < 1 || weekOfYear > 52 {
		return false
	}
	if weekYear < MinYear || weekYear > MaxYear {
		return false
	}
	return true
}

// isValidWeekOfMonthDate checks that weekOfMonth and dayOfWeek address a day
// that actually falls within the given month, given the weekday its first
// day lands on.
func isValidWeekOfMonthDate(year, month, weekOfMonth, dayOfWeek int32) bool {
	if year < 1 || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}

	firstOfMonth, err := DaysFromDate(year, month, 1)
	if err != nil {
		return false
	}

	firstDayOfWeek := DayOfWeek(firstOfMonth)
	firstWeekLength := 7 - firstDayOfWeek + 1
	monthLength := MaxDayOfMonth(year, month)
	actualWeeks := 1 + ceilDiv(monthLength-firstWeekLength, 7)
	if weekOfMonth < 1 || weekOfMonth > actualWeeks {
		return false
	}

	// A day before the first day of the first week is not in this month.
	if weekOfMonth == 1 && dayOfWeek < firstDayOfWeek {
		return false
	}
	// Nor is a day past the end of the last, possibly short, week.
	lastWeekLength := (monthLength - firstWeekLength) % 7
	if weekOfMonth == actualWeeks && lastWeekLength != 0 && dayOfWeek > lastWeekLength {
		return false
	}

	return true
}

// ceilDiv divides a by b rounding away from zero for non-negative a. b must
// be positive.
func ceilDiv(a, b int32) int32 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
