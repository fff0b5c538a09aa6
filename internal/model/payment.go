package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one salary disbursement. EmployeeID is the hex _id of
// the paid user; the email is kept alongside for slug lookups.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EmployeeID    string             `bson:"employeeId" json:"employeeId"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Salary        float64            `bson:"salary" json:"salary"`
	PayMonth      int                `bson:"payMonth" json:"payMonth"`
	PayYear       int                `bson:"payYear" json:"payYear"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentPage is the paginated listing response for /employee-list.
type PaymentPage struct {
	Payments   []Payment `json:"payments"`
	Total      int64     `json:"total"`
	TotalPages int64     `json:"totalPages"`
	Page       int64     `json:"page"`
	Limit      int64     `json:"limit"`
}
