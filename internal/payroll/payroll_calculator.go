package payroll

import "github.com/shopspring/decimal"

var two = decimal.NewFromInt(2)

// Inputs are the values one payroll computation depends on.
type Inputs struct {
	RawHours            decimal.Decimal
	OfficialWorkingDays int
	AllowedHoursPerDay  decimal.Decimal
	OfficialLeaves      int
	LateCount           int
	AbsentCount         int
	SalaryCap           decimal.Decimal
}

// Figures are the derived amounts. Money and hours are rounded to two places.
type Figures struct {
	TotalWorkingHours      decimal.Decimal
	NotAllowedHours        decimal.Decimal
	EffectiveAbsentCount   int
	AdjustedWorkingDays    int
	EffectiveAllowanceDays int
	HourlyWage             decimal.Decimal
	DailyAllowanceRate     decimal.Decimal
	DailyAllowanceTotal    decimal.Decimal
	HourlySalary           decimal.Decimal
	GrossSalary            decimal.Decimal
}

// Compute folds Inputs into Figures. Intermediate values keep full precision;
// rounding happens only on the returned fields.
func Compute(in Inputs) Figures {
	var out Figures

	officialDays := decimal.NewFromInt(int64(in.OfficialWorkingDays))
	bound := in.AllowedHoursPerDay.Mul(officialDays)
	if bound.IsNegative() {
		bound = decimal.Zero
	}

	raw := in.RawHours
	if raw.IsNegative() {
		raw = decimal.Zero
	}
	worked := decimal.Min(raw, bound)
	out.TotalWorkingHours = roundNotAbove(worked, bound)
	out.NotAllowedHours = decimal.Max(decimal.Zero, raw.Sub(bound)).Round(2)

	out.EffectiveAbsentCount = max(0, in.AbsentCount-in.OfficialLeaves)
	out.AdjustedWorkingDays = in.OfficialWorkingDays - max(0, out.EffectiveAbsentCount-AllowedAbsences) + in.OfficialLeaves
	out.EffectiveAllowanceDays = max(0, out.AdjustedWorkingDays-max(0, in.LateCount-AllowedLates))

	hourlyWage := decimal.Zero
	dailyRate := decimal.Zero
	if in.OfficialWorkingDays > 0 {
		dailyRate = in.SalaryCap.Div(officialDays).Div(two)
		if bound.IsPositive() {
			hourlyWage = in.SalaryCap.Div(bound).Div(two)
		}
	}

	dailyTotal := decimal.NewFromInt(int64(out.EffectiveAllowanceDays)).Mul(dailyRate)
	hourlySalary := worked.Mul(hourlyWage)
	gross := decimal.Min(hourlySalary.Add(dailyTotal), in.SalaryCap)
	if gross.IsNegative() {
		gross = decimal.Zero
	}

	out.HourlyWage = hourlyWage.Round(2)
	out.DailyAllowanceRate = dailyRate.Round(2)
	out.DailyAllowanceTotal = dailyTotal.Round(2)
	out.HourlySalary = hourlySalary.Round(2)
	out.GrossSalary = roundNotAbove(gross, in.SalaryCap)
	return out
}

// roundNotAbove rounds v to two places without letting it exceed limit.
func roundNotAbove(v, limit decimal.Decimal) decimal.Decimal {
	r := v.Round(2)
	if r.GreaterThan(limit) {
		return limit.Truncate(2)
	}
	return r
}
