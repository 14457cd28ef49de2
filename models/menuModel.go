package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID `bson:"_id"`
	Category_id string             `json:"category_id"`
	Name        string             `json:"name" validate:"required,min=2,max=100"`
	Image       *string            `json:"image"`
	Created_at  time.Time          `json:"created_at"`
	Updated_at  time.Time          `json:"updated_at"`
}

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	Menu_id      string             `json:"menu_id"`
	Name         string             `json:"name" validate:"required,min=2,max=100"`
	Price        float64            `json:"price" validate:"min=0"`
	Image        *string            `json:"image"`
	Description  *string            `json:"description"`
	Category_id  string             `json:"category_id" validate:"required"`
	Is_veg       *bool              `json:"is_veg"`
	Is_available *bool              `json:"is_available"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
}
