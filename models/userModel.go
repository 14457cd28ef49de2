package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      *string            `json:"name" validate:"required,min=2,max=100"`
	Password  *string            `json:"password" validate:"omitempty,min=6"`
	Email     *string            `json:"email" validate:"omitempty,email"`
	Phone     *string            `json:"phone"`
	User_role *string            `json:"user_role" validate:"required,eq=ADMIN|eq=KITCHEN|eq=CUSTOMER"`

	Token      *string   `json:"token"`
	Created_at time.Time `json:"created_at"`
	Updated_at time.Time `json:"updated_at"`
	User_id    string    `json:"user_id"`
}
