package domain

import "time"

// DateOnly обнуляет время, оставляя только дату (полночь UTC)
// Все даты календаря хранятся и сравниваются с дневной гранулярностью
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// DatesInRange перечисляет все календарные даты от start до end включительно
// Границы нормализуются до полуночи; если end раньше start, возвращает пустой слайс
func DatesInRange(start, end time.Time) []time.Time {
	from := DateOnly(start)
	to := DateOnly(end)

	dates := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
