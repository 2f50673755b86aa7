package model

import "time"

// CustomerID is the durable numeric identifier of a customer record
type CustomerID int64

// Customer is the durable customer record owned by the external store.
// The core reads it keyed by phone number and treats it as immutable
// within a session once loaded. JSON tags match the serialized context
// format persisted in snapshots.
type Customer struct {
	ID                CustomerID `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	DateOfBirth       time.Time  `json:"dob"`
	CompanyPreference string     `json:"company_preference"`
	CreatedAt         time.Time  `json:"created_at"`
}

// BirthdayOn reports whether the customer's date of birth falls on the
// month and day of the given time, ignoring the year.
func (c *Customer) BirthdayOn(t time.Time) bool {
	return c.DateOfBirth.Month() == t.Month() && c.DateOfBirth.Day() == t.Day()
}

// BirthdayKey returns the month-day key ("MM-DD") used for birthday
// sweep queries.
func (c *Customer) BirthdayKey() string {
	return c.DateOfBirth.Format("01-02")
}
