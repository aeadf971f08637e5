package errors

import "math"

// ValidateFinite rejects NaN and ±Inf values for the named parameter.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite, got %v", name, v)
	}
	return nil
}

// ValidatePositive rejects values that are not finite or not strictly positive.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative rejects values that are not finite or below zero.
func ValidateNonNegative(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative, got %v", name, v)
	}
	return nil
}

// ValidateUnitInterval accepts values in the half-open range (0, 1].
func ValidateUnitInterval(name string, v float64) error {
	if err := ValidatePositive(name, v); err != nil {
		return err
	}
	if v > 1 {
		return New(ErrCodeInvalidConfig, "%s must be at most 1, got %v", name, v)
	}
	return nil
}

// ValidateIntRange accepts integers in the closed range [lo, hi].
func ValidateIntRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidConfig, "%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}
