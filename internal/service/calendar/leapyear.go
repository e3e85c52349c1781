package calendar

// IsLeapYear reports whether year is a leap year under the Gregorian rule:
// divisible by 4, except centuries not divisible by 400. The rule is applied
// proleptically, so it holds unchanged for year <= 0 (year 0 and -4 are leap).
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
