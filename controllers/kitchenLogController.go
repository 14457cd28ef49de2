package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/ungaaaabungaaa/yumyard-sub000/database"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var kitchenLogCollection *mongo.Collection = database.OpenCollection(database.Client, "kitchenLog")

// The kitchen log is append-only. The only writes happen inside the order
// controllers; this file is the read side.

func GetKitchenLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		result, err := kitchenLogCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing kitchen logs"})
			return
		}
		var allLogs []bson.M
		if err := result.All(ctx, &allLogs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allLogs)
	}
}

func GetKitchenLogsByOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
		result, err := kitchenLogCollection.Find(ctx, bson.M{"order_id": orderId}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing kitchen logs for the order"})
			return
		}
		var logs []bson.M
		if err := result.All(ctx, &logs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}
