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

var categoryCollection *mongo.Collection = database.OpenCollection(database.Client, "category")

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := categoryCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing categories"})
			return
		}
		var allCategories []bson.M
		if err := result.All(ctx, &allCategories); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allCategories)
	}
}

func CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var category models.Category
		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&category)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := categoryCollection.CountDocuments(ctx, bson.M{"name": category.Name})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the category name"})
			return
		}
		if count > 0 {
			msg := fmt.Sprintf("category %s already exists", category.Name)
			c.JSON(http.StatusConflict, gin.H{"error": msg})
			return
		}

		category.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		category.Updated_at = category.Created_at
		category.ID = primitive.NewObjectID()
		category.Category_id = category.ID.Hex()

		result, insertErr := categoryCollection.InsertOne(ctx, category)
		if insertErr != nil {
			msg := fmt.Sprintf("category was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		categoryId := c.Param("category_id")
		var category models.Category
		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if category.Name != "" {
			count, err := categoryCollection.CountDocuments(ctx, bson.M{
				"name":        category.Name,
				"category_id": bson.M{"$ne": categoryId},
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the category name"})
				return
			}
			if count > 0 {
				msg := fmt.Sprintf("category %s already exists", category.Name)
				c.JSON(http.StatusConflict, gin.H{"error": msg})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "name", Value: category.Name})
		}
		if category.Image != nil {
			updateObj = append(updateObj, bson.E{Key: "image", Value: category.Image})
		}
		category.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: category.Updated_at})

		filter := bson.M{"category_id": categoryId}
		result, err := categoryCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			msg := fmt.Sprintf("category update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		categoryId := c.Param("category_id")

		result, err := categoryCollection.DeleteOne(ctx, bson.M{"category_id": categoryId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "category delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": categoryId})
	}
}
