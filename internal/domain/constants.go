package domain

// Default values
const (
	// DefaultQuantity количество мест по умолчанию при бронировании
	DefaultQuantity = 1
)

// Business validation constants
const (
	MinSlotCapacity = 1
	MaxSlotCapacity = 1000

	// MaxRangeDays максимальная длина диапазона дат одного бронирования
	MaxRangeDays = 90

	MaxLabelLength       = 200
	MaxDescriptionLength = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
