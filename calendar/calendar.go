// Package calendar converts between Gregorian calendar fields and a linear
// count of days since the Unix epoch (1970-01-01 is day zero). It supports
// plain dates, ISO week dates, week-of-month dates, and day-of-year dates
// over the full year range [MinYear, MaxYear], rejecting anything outside
// rather than clamping.
package calendar

// Year limits for every calendar conversion in this package.
const (
	MinYear int32 = -292275055
	MaxYear int32 = 292278994
)

// The cumulative tables below cover the 400-year Gregorian cycle starting at
// 1970. Years outside [1970, 2370) are normalized into the window by whole
// cycles before lookup.
const (
	yearInterval        = 400
	daysPerYearInterval = 146097
)

var leapDays = [13]int32{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var normalDays = [13]int32{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var cumulativeDays = [13]int32{
	0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365,
}

var cumulativeLeapDays = [13]int32{
	0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366,
}

// cumulativeYearDays[y-1970] is the number of days from 1970-01-01 to the
// first day of year y, for y in [1970, 2370).
var cumulativeYearDays = [yearInterval + 1]int32{
	0, 365, 730, 1096, 1461, 1826, 2191, 2557, 2922,
	3287, 3652, 4018, 4383, 4748, 5113, 5479, 5844, 6209,
	6574, 6940, 7305, 7670, 8035, 8401, 8766, 9131, 9496,
	9862, 10227, 10592, 10957, 11323, 11688, 12053, 12418, 12784,
	13149, 13514, 13879, 14245, 14610, 14975, 15340, 15706, 16071,
	16436, 16801, 17167, 17532, 17897, 18262, 18628, 18993, 19358,
	19723, 20089, 20454, 20819, 21184, 21550, 21915, 22280, 22645,
	23011, 23376, 23741, 24106, 24472, 24837, 25202, 25567, 25933,
	26298, 26663, 27028, 27394, 27759, 28124, 28489, 28855, 29220,
	29585, 29950, 30316, 30681, 31046, 31411, 31777, 32142, 32507,
	32872, 33238, 33603, 33968, 34333, 34699, 35064, 35429, 35794,
	36160, 36525, 36890, 37255, 37621, 37986, 38351, 38716, 39082,
	39447, 39812, 40177, 40543, 40908, 41273, 41638, 42004, 42369,
	42734, 43099, 43465, 43830, 44195, 44560, 44926, 45291, 45656,
	46021, 46387, 46752, 47117, 47482, 47847, 48212, 48577, 48942,
	49308, 49673, 50038, 50403, 50769, 51134, 51499, 51864, 52230,
	52595, 52960, 53325, 53691, 54056, 54421, 54786, 55152, 55517,
	55882, 56247, 56613, 56978, 57343, 57708, 58074, 58439, 58804,
	59169, 59535, 59900, 60265, 60630, 60996, 61361, 61726, 62091,
	62457, 62822, 63187, 63552, 63918, 64283, 64648, 65013, 65379,
	65744, 66109, 66474, 66840, 67205, 67570, 67935, 68301, 68666,
	69031, 69396, 69762, 70127, 70492, 70857, 71223, 71588, 71953,
	72318, 72684, 73049, 73414, 73779, 74145, 74510, 74875, 75240,
	75606, 75971, 76336, 76701, 77067, 77432, 77797, 78162, 78528,
	78893, 79258, 79623, 79989, 80354, 80719, 81084, 81450, 81815,
	82180, 82545, 82911, 83276, 83641, 84006, 84371, 84736, 85101,
	85466, 85832, 86197, 86562, 86927, 87293, 87658, 88023, 88388,
	88754, 89119, 89484, 89849, 90215, 90580, 90945, 91310, 91676,
	92041, 92406, 92771, 93137, 93502, 93867, 94232, 94598, 94963,
	95328, 95693, 96059, 96424, 96789, 97154, 97520, 97885, 98250,
	98615, 98981, 99346, 99711, 100076, 100442, 100807, 101172, 101537,
	101903, 102268, 102633, 102998, 103364, 103729, 104094, 104459, 104825,
	105190, 105555, 105920, 106286, 106651, 107016, 107381, 107747, 108112,
	108477, 108842, 109208, 109573, 109938, 110303, 110669, 111034, 111399,
	111764, 112130, 112495, 112860, 113225, 113591, 113956, 114321, 114686,
	115052, 115417, 115782, 116147, 116513, 116878, 117243, 117608, 117974,
	118339, 118704, 119069, 119435, 119800, 120165, 120530, 120895, 121260,
	121625, 121990, 122356, 122721, 123086, 123451, 123817, 124182, 124547,
	124912, 125278, 125643, 126008, 126373, 126739, 127104, 127469, 127834,
	128200, 128565, 128930, 129295, 129661, 130026, 130391, 130756, 131122,
	131487, 131852, 132217, 132583, 132948, 133313, 133678, 134044, 134409,
	134774, 135139, 135505, 135870, 136235, 136600, 136966, 137331, 137696,
	138061, 138427, 138792, 139157, 139522, 139888, 140253, 140618, 140983,
	141349, 141714, 142079, 142444, 142810, 143175, 143540, 143905, 144271,
	144636, 145001, 145366, 145732, 146097,
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MaxDayOfMonth returns the number of days in the given month of the given
// year. The month must be in [1, 12].
func MaxDayOfMonth(year, month int32) int32 {
	if IsLeapYear(year) {
		return leapDays[month]
	}
	return normalDays[month]
}

// IsValidDate reports whether year, month, and day form a real calendar date
// with year within [MinYear, MaxYear].
func IsValidDate(year, month, day int32) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < MinYear || year > MaxYear {
		return false
	}
	if day < 1 {
		return false
	}
	return day <= MaxDayOfMonth(year, month)
}

// IsValidDayOfYear reports whether dayOfYear addresses a real day of year.
func IsValidDayOfYear(year, dayOfYear int32) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	max := int32(365)
	if IsLeapYear(year) {
		max = 366
	}
	return dayOfYear >= 1 && dayOfYear <= max
}

// floorDiv divides a by b rounding toward negative infinity. b must be
// positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// DaysFromDate converts a calendar date to days since the epoch. It returns
// a *RangeError if the fields do not form a valid date.
func DaysFromDate(year, month, day int32) (int64, error) {
	if !IsValidDate(year, month, day) {
		return 0, &RangeError{Fields: []int32{year, month, day}}
	}

	// Shift the year into [1970, 2370) by whole 400-year cycles, crediting
	// the matching number of days.
	cycles := floorDiv(int64(year)-1970, yearInterval)
	year -= int32(cycles * yearInterval)

	days := cycles * daysPerYearInterval
	days += int64(cumulativeYearDays[year-1970])
	if IsLeapYear(year) {
		days += int64(cumulativeLeapDays[month-1])
	} else {
		days += int64(cumulativeDays[month-1])
	}
	days += int64(day - 1)
	return days, nil
}

// DateFromDays converts days since the epoch back to calendar fields. It is
// the inverse of DaysFromDate for every day count that function can return.
func DateFromDays(days int64) (year, month, day int32) {
	cycles := floorDiv(days, daysPerYearInterval)
	days -= cycles * daysPerYearInterval

	// days is now in [0, 146097); find the year within the cycle.
	yr := int32(1970)
	// Estimate low, then walk up; the estimate is never more than one year
	// short because days/366 undercounts at most once per year.
	yr += int32(days / 366)
	for yr-1970+1 <= yearInterval && int64(cumulativeYearDays[yr-1970+1]) <= days {
		yr++
	}
	days -= int64(cumulativeYearDays[yr-1970])

	cumulative := &cumulativeDays
	if IsLeapYear(yr) {
		cumulative = &cumulativeLeapDays
	}
	mo := int32(1)
	for mo < 12 && int64(cumulative[mo]) <= days {
		mo++
	}
	days -= int64(cumulative[mo-1])

	return yr + int32(cycles*yearInterval), mo, int32(days) + 1
}

// DayOfWeek returns the ISO day of the week for a day count, 1 for Monday
// through 7 for Sunday. Day zero (1970-01-01) is a Thursday. Negative day
// counts use floor-style modulo so the 7-day cycle is unbroken across the
// epoch.
func DayOfWeek(days int64) int32 {
	if days < 0 {
		// Start at Thursday and cycle downwards.
		return int32(7 - (-days+3)%7)
	}
	return int32((days+3)%7) + 1
}

// DaysFromWeekDate converts an ISO week date to days since the epoch. Week 1
// is the week containing January 4th. weekOfYear must be in [1, 52]; week 53
// is rejected even in years where it occurs.
func DaysFromWeekDate(weekYear, weekOfYear, dayOfWeek int32) (int64, error) {
	if !isValidWeekDate(weekYear, weekOfYear, dayOfWeek) {
		return 0, &RangeError{Fields: []int32{weekYear, weekOfYear, dayOfWeek}}
	}

	janFourth, err := DaysFromDate(weekYear, 1, 4)
	if err != nil {
		return 0, err
	}
	firstDayOfWeekYear := DayOfWeek(janFourth)
	return janFourth - int64(firstDayOfWeekYear-1) +
		7*int64(weekOfYear-1) + int64(dayOfWeek) - 1, nil
}

// DaysFromWeekOfMonthDate converts a (year, month, week-of-month, weekday)
// date to days since the epoch. Month values outside [1, 12] carry into the
// year. In lenient mode weekOfMonth and dayOfWeek are not checked against
// the month's real week layout and the arithmetic is allowed to run past it.
func DaysFromWeekOfMonthDate(year, month, weekOfMonth, dayOfWeek int32, lenient bool) (int64, error) {
	if !lenient && !isValidWeekOfMonthDate(year, month, weekOfMonth, dayOfWeek) {
		return 0, &RangeError{Fields: []int32{year, month, weekOfMonth, dayOfWeek}}
	}

	// Carry month overflow or underflow into the year.
	if month < 1 {
		year += month/12 - 1
		month = 12 - (-month)%12
	} else if month > 12 {
		year += (month - 1) / 12
		month = (month-1)%12 + 1
	}

	firstOfMonth, err := DaysFromDate(year, month, 1)
	if err != nil {
		return 0, err
	}
	firstDayOfWeek := DayOfWeek(firstOfMonth)

	var days int32
	switch {
	case dayOfWeek < 1:
		days = 7 - (-(dayOfWeek - 1))%7
	case dayOfWeek > 7:
		days = (dayOfWeek - 1) % 7
	default:
		days = dayOfWeek % 7
	}
	return firstOfMonth - int64(firstDayOfWeek-1) +
		7*int64(weekOfMonth-1) + int64(days) - 1, nil
}

// DaysFromDayOfYear converts a (year, day-of-year) date to days since the
// epoch.
func DaysFromDayOfYear(year, dayOfYear int32) (int64, error) {
	if !IsValidDayOfYear(year, dayOfYear) {
		return 0, &RangeError{What: "day of year", Fields: []int32{dayOfYear}}
	}
	startOfYear, err := DaysFromDate(year, 1, 1)
	if err != nil {
		return 0, err
	}
	return startOfYear + int64(dayOfYear-1), nil
}

// LastDayOfMonthDays returns the day count of the last day of the given
// month.
func LastDayOfMonthDays(year, month int32) (int64, error) {
	if month < 1 || month > 12 {
		return 0, &RangeError{Fields: []int32{year, month}}
	}
	return DaysFromDate(year, month, MaxDayOfMonth(year, month))
}
