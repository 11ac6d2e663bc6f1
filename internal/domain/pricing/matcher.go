package pricing

import "court-booking/internal/domain/timerange"

// MatchRule returns the first rule in list order whose window touches r.
// Only r's start weekday is consulted, and minute-of-day is taken naively from both
// bounds in whatever location r is expressed in. A later, more specific rule never
// beats an earlier match.
func MatchRule(rules []Rule, r timerange.TimeRange) (Rule, bool) {
	day := r.Start().Weekday()
	startMinute := minuteOfDay(r.Start().Hour(), r.Start().Minute())
	endMinute := minuteOfDay(r.End().Hour(), r.End().Minute())

	for _, rule := range rules {
		if rule.Matches(day, startMinute, endMinute) {
			return rule, true
		}
	}
	return Rule{}, false
}

func minuteOfDay(hour, minute int) int {
	return hour*60 + minute
}
