package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/domain/model"
)

// StubProfileSource is a development/test adapter that returns deterministic
// customer records and financial signals derived from the customer number.
// It implements port.FinancialProfileSource.
type StubProfileSource struct{}

// NewStubProfileSource creates a new stub adapter.
func NewStubProfileSource() *StubProfileSource {
	return &StubProfileSource{}
}

// GetCustomer returns a synthetic customer record.
func (s *StubProfileSource) GetCustomer(_ context.Context, customerNumber string) (model.Customer, error) {
	if customerNumber == "" {
		return model.Customer{}, fmt.Errorf("customer number is required")
	}
	return model.Customer{
		CustomerNumber: customerNumber,
		FullName:       "Customer " + customerNumber,
		Email:          customerNumber + "@example.test",
	}, nil
}

// GetFinancialProfile returns a deterministic signal bag hashed from the
// customer number. This allows repeatable scoring scenarios.
func (s *StubProfileSource) GetFinancialProfile(_ context.Context, customerNumber string) (model.FinancialProfile, error) {
	if customerNumber == "" {
		return model.FinancialProfile{}, fmt.Errorf("customer number is required")
	}

	h := sha256.Sum256([]byte(customerNumber))
	num := binary.BigEndian.Uint32(h[:4])

	return model.FinancialProfile{
		MonthlyExpenses:  decimal.NewFromInt(int64(1000 + num%4000)),
		AverageBalance:   decimal.NewFromInt(int64(num % 20000)),
		OnTimePayments:   int(num % 40),
		LatePayments:     int(num % 5),
		AccountAgeMonths: int(num % 180),
	}, nil
}
