package models

import (
	"bytes"
	"encoding/json"

	"github.com/bahaaman/hitech-app/utils"
	"github.com/shopspring/decimal"
)

// Money is a decimal amount that decodes leniently: backups exported by older
// console builds store amounts as plain numbers or user-formatted strings
// ("20,000", "Rs 150"). Marshals back to a bare JSON number.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromInt(v int64) Money {
	return Money{Decimal: decimal.NewFromInt(v)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	d, err := utils.UnmarshalDecimal(raw)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}
