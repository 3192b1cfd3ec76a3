package percent

import "github.com/shopspring/decimal"

const precision = 2

var hundred = decimal.NewFromInt(100)

// round2 округляет до двух знаков после запятой (half away from zero)
func round2(v decimal.Decimal) float64 {
	return v.Round(precision).InexactFloat64()
}

// Share доля part от total в процентах
// При total == 0 возвращает 0
func Share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))))
}

// Change изменение current относительно previous в процентах
// При previous == 0: 100, если current > 0, иначе 0
func Change(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round2(decimal.NewFromInt(int64(current - previous)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(previous))))
}
