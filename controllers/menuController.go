package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ungaaaabungaaa/yumyard-sub000/database"
	"github.com/ungaaaabungaaa/yumyard-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var menuCollection *mongo.Collection = database.OpenCollection(database.Client, "menu")

func GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := menuCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing menu items"})
			return
		}
		var allMenuItems []bson.M
		if err := result.All(ctx, &allMenuItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allMenuItems)
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		menuId := c.Param("menu_id")
		var menuItem models.MenuItem

		err := menuCollection.FindOne(ctx, bson.M{"menu_id": menuId}).Decode(&menuItem)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}
		c.JSON(http.StatusOK, menuItem)
	}
}

func GetMenuItemsByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		categoryId := c.Param("category_id")

		result, err := menuCollection.Find(ctx, bson.M{"category_id": categoryId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing menu items by category"})
			return
		}
		var menuItems []bson.M
		if err := result.All(ctx, &menuItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, menuItems)
	}
}

func CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var menuItem models.MenuItem
		if err := c.BindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&menuItem)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := categoryCollection.CountDocuments(ctx, bson.M{"category_id": menuItem.Category_id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the category"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category was not found"})
			return
		}

		menuItem.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		menuItem.Updated_at = menuItem.Created_at
		menuItem.ID = primitive.NewObjectID()
		menuItem.Menu_id = menuItem.ID.Hex()

		result, insertErr := menuCollection.InsertOne(ctx, menuItem)
		if insertErr != nil {
			msg := fmt.Sprintf("menu item was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		menuId := c.Param("menu_id")
		var menuItem models.MenuItem
		if err := c.BindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if menuItem.Name != "" {
			updateObj = append(updateObj, bson.E{Key: "name", Value: menuItem.Name})
		}
		if menuItem.Price != 0 {
			updateObj = append(updateObj, bson.E{Key: "price", Value: menuItem.Price})
		}
		if menuItem.Image != nil {
			updateObj = append(updateObj, bson.E{Key: "image", Value: menuItem.Image})
		}
		if menuItem.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: menuItem.Description})
		}
		if menuItem.Category_id != "" {
			count, err := categoryCollection.CountDocuments(ctx, bson.M{"category_id": menuItem.Category_id})
			if err != nil || count == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "category was not found"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "category_id", Value: menuItem.Category_id})
		}
		if menuItem.Is_veg != nil {
			updateObj = append(updateObj, bson.E{Key: "is_veg", Value: menuItem.Is_veg})
		}
		if menuItem.Is_available != nil {
			updateObj = append(updateObj, bson.E{Key: "is_available", Value: menuItem.Is_available})
		}
		menuItem.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: menuItem.Updated_at})

		filter := bson.M{"menu_id": menuId}
		result, err := menuCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			msg := fmt.Sprintf("menu item update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		menuId := c.Param("menu_id")

		result, err := menuCollection.DeleteOne(ctx, bson.M{"menu_id": menuId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": menuId})
	}
}
