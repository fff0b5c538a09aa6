package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles assigned to users. The frontend sends these verbatim.
const (
	RoleEmployee = "Employee"
	RoleHR       = "HR"
	RoleAdmin    = "Admin"
)

// User is an account document in the users collection. Email is the
// natural key and carries a unique index.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	Status      bool               `bson:"status" json:"status"`
	Salary      float64            `bson:"salary,omitempty" json:"salary,omitempty"`
	BankAccount string             `bson:"bank_account,omitempty" json:"bank_account,omitempty"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Payment     bool               `bson:"payment,omitempty" json:"payment,omitempty"`
	Fired       bool               `bson:"fired,omitempty" json:"fired,omitempty"`
}

// Identity is the payload signed into the session token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}
