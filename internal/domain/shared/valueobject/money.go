package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	IDR Currency = "IDR" // Indonesian Rupiah (default)
	USD Currency = "USD" // US Dollar
	SGD Currency = "SGD" // Singapore Dollar
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = IDR

// Money is a value object representing monetary amounts.
// It is immutable - all operations return new Money instances.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyIDR creates Money in IDR (Indonesian Rupiah)
func NewMoneyIDR(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: IDR}
}

// NewMoneyIDRFromString creates Money in IDR from a string representation
func NewMoneyIDRFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d, currency: IDR}, nil
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is strictly positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns the sum of two Money values of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns the difference of two Money values of the same currency
func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Mul returns the Money multiplied by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Neg returns the Money with its sign flipped
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Equal reports whether two Money values have the same amount and currency
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns a human-readable representation
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.String())
}

// moneyJSON is the wire representation of Money
type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount, Currency: m.currency})
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Currency == "" {
		raw.Currency = DefaultCurrency
	}
	m.amount = raw.Amount
	m.currency = raw.Currency
	return nil
}

// Value implements driver.Valuer, storing only the decimal amount.
// The column's currency is implied by the system default.
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner
func (m *Money) Scan(value any) error {
	d := decimal.Decimal{}
	if err := d.Scan(value); err != nil {
		return err
	}
	m.amount = d
	m.currency = DefaultCurrency
	return nil
}
