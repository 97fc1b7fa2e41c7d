package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/AMiROH/bakery-api/initializers"
	"github.com/AMiROH/bakery-api/models"
	"github.com/gin-gonic/gin"
)

type CreateReviewInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func validateReviewInput(input CreateReviewInput) *models.ValidationError {
	validationErr := &models.ValidationError{}

	if strings.TrimSpace(input.Name) == "" {
		validationErr.Add("name", "is required")
	}
	if input.Email != "" && !strings.Contains(input.Email, "@") {
		validationErr.Add("email", "must be a valid email address")
	}
	if input.Rating < 1 || input.Rating > 5 {
		validationErr.Add("rating", "must be between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		validationErr.Add("comment", "is required")
	}

	if validationErr.HasErrors() {
		return validationErr
	}
	return nil
}

func CreateReview(ctx *gin.Context) {
	var input CreateReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}

	if validationErr := validateReviewInput(input); validationErr != nil {
		respondWithOrderError(ctx, validationErr)
		return
	}

	review := models.Review{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := initializers.DB.Create(&review).Error; err != nil {
		respondWithOrderError(ctx, &models.PersistenceError{Op: "create review", Err: err})
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"ok":        true,
		"review_id": review.ID,
	})
}

func GetReviews(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var reviews []models.Review
	result := initializers.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch reviews", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.Review{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"metadata": gin.H{
			"total":  count,
			"limit":  limit,
			"offset": offset,
		},
	})
}
