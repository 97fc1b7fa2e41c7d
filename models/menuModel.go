package models

import "gorm.io/gorm"

const (
	CategoryCakes    = "cakes"
	CategoryPastries = "pastries"
	CategoryBread    = "bread"
	CategoryDrinks   = "drinks"
)

type MenuItem struct {
	gorm.Model
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,oneof=cakes pastries bread drinks"`
	Emoji       string  `json:"emoji"`
	ImageUrl    string  `json:"imageUrl"`
	Available   bool    `json:"available" gorm:"default:true"`
	Featured    bool    `json:"featured"`
}

func IsValidCategory(category string) bool {
	switch category {
	case CategoryCakes, CategoryPastries, CategoryBread, CategoryDrinks:
		return true
	}
	return false
}
