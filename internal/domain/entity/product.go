package entity

import "time"

// Product is a catalog record owned by exactly one user.
// SKU is globally unique. DateAdded is fixed at creation; DateLastUpdated
// is bumped by every mutation path.
type Product struct {
	ID              int64
	Name            string
	Description     string
	SKU             string
	Manufacturer    string
	Quantity        int
	OwnerUserID     int64
	DateAdded       time.Time
	DateLastUpdated time.Time
}
