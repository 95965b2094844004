package client

import "time"

type Client struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	Zip       *string
	Notes     *string
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Contact is a named person at a client company.
type Contact struct {
	ID        string
	ClientID  string
	FirstName string
	LastName  string
	Title     *string
	Email     *string
	Phone     *string
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
