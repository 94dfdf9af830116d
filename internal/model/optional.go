package model

import (
	"bytes"
	"encoding/json"
)

// OptionalFloat is a number the backend may omit or send as null.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) OptionalFloat { return OptionalFloat{Value: v, Valid: true} }

// None is the absent value.
func None() OptionalFloat { return OptionalFloat{} }

// Get returns the value and whether it is present.
func (o OptionalFloat) Get() (float64, bool) { return o.Value, o.Valid }

// OrZero returns the value, or 0 when absent.
func (o OptionalFloat) OrZero() float64 {
	if !o.Valid {
		return 0
	}
	return o.Value
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
