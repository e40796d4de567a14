package model

import "errors"

// ErrDegenerateRate reports a discount rate for which the discounting
// arithmetic divides by zero: a rate of exactly -1 (the (1+r)^t factor
// vanishes), or a rate equal to the terminal growth rate in a Gordon
// growth terminal value. Callers are expected to guard their inputs;
// the model surfaces the condition instead of returning ±Inf or NaN.
var ErrDegenerateRate = errors.New("degenerate discount rate")
