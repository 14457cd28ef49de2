package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ungaaaabungaaa/yumyard-sub000/database"
	"github.com/ungaaaabungaaa/yumyard-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var validate *validator.Validate = validator.New()

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := orderCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []bson.M
		if err := result.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var order models.Order

		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func GetOrdersByTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		tableNumber := c.Param("table_number")

		result, err := orderCollection.Find(ctx, bson.M{"table_number": tableNumber})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders for the table"})
			return
		}
		var orders []bson.M
		if err := result.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CreateOrder persists a submitted draft. Menu name and price are snapshotted
// into the line items at this moment and never re-read. The initial kitchen
// log entry and the kitchen socket notification are fire and forget: neither
// can fail the order itself.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var draft models.Order
		if err := c.BindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&draft)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		for i := range draft.Items {
			var menuItem models.MenuItem
			err := menuCollection.FindOne(ctx, bson.M{"menu_id": draft.Items[i].Menu_id}).Decode(&menuItem)
			if err != nil {
				msg := fmt.Sprintf("menu item %s was not found", draft.Items[i].Menu_id)
				c.JSON(http.StatusNotFound, gin.H{"error": msg})
				return
			}
			draft.Items[i].Name = menuItem.Name
			draft.Items[i].Unit_price = menuItem.Price
		}

		order := models.NewOrderFromDraft(draft, time.Now())

		_, err := orderCollection.InsertOne(ctx, order)
		if err != nil {
			msg := fmt.Sprintf("order was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		staffName := c.GetString("name")
		entry := models.CreationLogEntry(order.Order_id, staffName, time.Now())
		if _, err := kitchenLogCollection.InsertOne(ctx, entry); err != nil {
			log.Println("kitchen log append failed:", err)
		}
		notifyKitchen("newOrder", order)

		c.JSON(http.StatusOK, order)
	}
}

type StatusUpdateRequest struct {
	Status     string  `json:"status" validate:"required,eq=order-received|eq=cooking|eq=out-for-delivery|eq=delivered|eq=cancelled"`
	Staff_name string  `json:"staff_name"`
	Note       *string `json:"note"`
}

// UpdateOrderStatus applies a status transition. Any status may follow any
// other; the only hard failure is an unknown order id. A kitchen log entry is
// appended only when the request names the staff member making the change.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var req StatusUpdateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var updateObj primitive.D
		updateObj = append(updateObj, bson.E{Key: "status", Value: req.Status})
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updated_at})

		filter := bson.M{"order_id": orderId}
		result, err := orderCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			msg := fmt.Sprintf("order status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}

		if entry := models.StatusLogEntry(orderId, req.Status, req.Staff_name, req.Note, time.Now()); entry != nil {
			if _, err := kitchenLogCollection.InsertOne(ctx, entry); err != nil {
				log.Println("kitchen log append failed:", err)
			}
		}
		notifyKitchen("statusUpdate", gin.H{"order_id": orderId, "status": req.Status})

		c.JSON(http.StatusOK, gin.H{"order_id": orderId, "status": req.Status, "updated_at": updated_at})
	}
}

type PaymentUpdateRequest struct {
	Payment_status string  `json:"payment_status" validate:"required,eq=pending|eq=paid|eq=failed"`
	Payment_method *string `json:"payment_method" validate:"omitempty,eq=cash|eq=card|eq=upi|eq=online"`
	Staff_name     string  `json:"staff_name"`
	Note           *string `json:"note"`
}

func UpdateOrderPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var req PaymentUpdateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var updateObj primitive.D
		updateObj = append(updateObj, bson.E{Key: "payment_status", Value: req.Payment_status})
		if req.Payment_method != nil {
			updateObj = append(updateObj, bson.E{Key: "payment_method", Value: req.Payment_method})
		}
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updated_at})

		filter := bson.M{"order_id": orderId}
		result, err := orderCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			msg := fmt.Sprintf("payment update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}

		if entry := models.PaymentLogEntry(orderId, req.Payment_status, req.Staff_name, req.Note, time.Now()); entry != nil {
			if _, err := kitchenLogCollection.InsertOne(ctx, entry); err != nil {
				log.Println("kitchen log append failed:", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"order_id": orderId, "payment_status": req.Payment_status, "updated_at": updated_at})
	}
}
