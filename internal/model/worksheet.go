package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// WorkSheet is a timesheet entry. Entries are insert-only; there are no
// update or delete paths. Date is a calendar day in "2006-01-02" form so
// month-range filters work with plain string comparison.
type WorkSheet struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Task  string             `bson:"task,omitempty" json:"task,omitempty"`
	Hours float64            `bson:"hours,omitempty" json:"hours,omitempty"`
	Date  string             `bson:"date" json:"date"`
}
