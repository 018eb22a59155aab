package testutil

import "time"

// Fixed identifiers for deterministic testing
const (
	TestCustomerNumber      = "CUST-0001"
	TestOtherCustomerNumber = "CUST-0002"
)

// FixedNow is a stable reference instant for time-sensitive tests.
var FixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
