package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/ungaaaabungaaa/yumyard-sub000/helpers"
	"github.com/ungaaaabungaaa/yumyard-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SendOTPRequest struct {
	Phone    string `json:"phone"`
	Template string `json:"template"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Otp   string `json:"otp"`
}

func SendOTP() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendOTPRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !helpers.ValidPhone(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone number must be exactly 10 digits"})
			return
		}

		sessionId, err := helpers.SendOTP(req.Phone, req.Template)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": sessionId})
	}
}

// VerifyOTP checks the code with the gateway and, on success, upserts a
// customer record for the phone and sets a customer session cookie so later
// orders can be linked to the user.
func VerifyOTP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req VerifyOTPRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !helpers.ValidPhone(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone number must be exactly 10 digits"})
			return
		}
		if !helpers.ValidOTP(req.Otp) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "otp must be 4 to 6 digits"})
			return
		}

		if err := helpers.VerifyOTP(req.Phone, req.Otp); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		err := userCollection.FindOne(ctx, bson.M{"phone": req.Phone}).Decode(&user)
		if err != nil {
			name := req.Phone
			role := helpers.RoleCustomer
			user = models.User{
				Name:      &name,
				Phone:     &req.Phone,
				User_role: &role,
			}
			user.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
			user.Updated_at = user.Created_at
			user.ID = primitive.NewObjectID()
			user.User_id = user.ID.Hex()

			upsert := true
			opts := options.UpdateOptions{Upsert: &upsert}
			_, err := userCollection.UpdateOne(
				ctx,
				bson.M{"phone": req.Phone},
				bson.D{{Key: "$setOnInsert", Value: user}},
				&opts,
			)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while saving the customer"})
				return
			}
		}

		token, err := helpers.GenerateToken(user.User_id, *user.Name, helpers.RoleCustomer)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while generating the token"})
			return
		}
		setSessionCookie(c, token, helpers.RoleCustomer)

		c.JSON(http.StatusOK, gin.H{"user_id": user.User_id, "token": token})
	}
}
