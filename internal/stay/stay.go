package stay

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("invalid stay range")
)

// Range представляет интервал проживания [CheckIn, CheckOut).
// Даты календарные: время суток не учитывается.
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewRange создаёт интервал проживания и делает простую валидацию:
//   - обе даты заданы;
//   - дата выезда строго позже даты заезда.
// Даты нормализуются к полуночи UTC.
func NewRange(checkIn, checkOut time.Time) (Range, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Range{}, ErrInvalidRange
	}

	checkIn = Day(checkIn)
	checkOut = Day(checkOut)

	if !checkOut.After(checkIn) {
		return Range{}, ErrInvalidRange
	}

	return Range{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// Day отбрасывает время суток, оставляя календарную дату в UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights возвращает количество ночей в интервале — целое число суток
// между заездом и выездом, без пропорций за неполные дни.
func (r Range) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// TotalPrice — стоимость проживания: ночи × цена за ночь.
func (r Range) TotalPrice(pricePerNight float64) float64 {
	return float64(r.Nights()) * pricePerNight
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов:
// [a.CheckIn, a.CheckOut) и [b.CheckIn, b.CheckOut) пересекаются,
// если a.CheckIn < b.CheckOut && b.CheckIn < a.CheckOut.
func Overlaps(a, b Range) bool {
	return a.CheckIn.Before(b.CheckOut) && b.CheckIn.Before(a.CheckOut)
}

// Contains проверяет, попадает ли момент t (как календарная дата) в интервал.
func (r Range) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}
