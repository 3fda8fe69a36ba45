package memory

import (
	"time"

	"nutrition/internal/domain"
)

// ReferenceCatalog returns the 20-item reference food catalog.
func ReferenceCatalog() []domain.FoodItem {
	return []domain.FoodItem{
		{ID: "1", Name: "Grilled Chicken Breast", Calories: 231, Protein: 43.5, Carbs: 0, Fat: 5, ServingSize: "100g"},
		{ID: "2", Name: "Brown Rice", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9, ServingSize: "100g"},
		{ID: "3", Name: "Salmon Fillet", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, ServingSize: "100g"},
		{ID: "4", Name: "Greek Yogurt", Brand: "Fage", Calories: 100, Protein: 10, Carbs: 6, Fat: 0, ServingSize: "100g"},
		{ID: "5", Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, ServingSize: "1 medium"},
		{ID: "6", Name: "Oatmeal", Calories: 68, Protein: 2.4, Carbs: 12, Fat: 1.4, ServingSize: "100g"},
		{ID: "7", Name: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, ServingSize: "2 large"},
		{ID: "8", Name: "Avocado", Calories: 160, Protein: 2, Carbs: 9, Fat: 15, ServingSize: "100g"},
		{ID: "9", Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, ServingSize: "100g"},
		{ID: "10", Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, ServingSize: "100g"},
		{ID: "11", Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fat: 50, ServingSize: "100g"},
		{ID: "12", Name: "Quinoa", Calories: 120, Protein: 4.4, Carbs: 22, Fat: 1.9, ServingSize: "100g"},
		{ID: "13", Name: "Tuna", Calories: 144, Protein: 30, Carbs: 0, Fat: 1, ServingSize: "100g"},
		{ID: "14", Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, ServingSize: "100g"},
		{ID: "15", Name: "Chicken Thigh", Calories: 209, Protein: 26, Carbs: 0, Fat: 10, ServingSize: "100g"},
		{ID: "16", Name: "Cottage Cheese", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, ServingSize: "100g"},
		{ID: "17", Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, ServingSize: "1 medium"},
		{ID: "18", Name: "Whole Wheat Bread", Calories: 247, Protein: 13, Carbs: 41, Fat: 4.2, ServingSize: "100g"},
		{ID: "19", Name: "Turkey Breast", Calories: 135, Protein: 30, Carbs: 0, Fat: 1, ServingSize: "100g"},
		{ID: "20", Name: "Black Beans", Calories: 132, Protein: 8.9, Carbs: 24, Fat: 0.5, ServingSize: "100g"},
	}
}

// ReferenceLog returns the five-entry reference food log dated on day's
// local calendar day.
func ReferenceLog(day time.Time) []domain.FoodLogEntry {
	entries := []domain.FoodLogEntry{
		{ID: "1", Name: "Oatmeal with Berries", Calories: 320, Protein: 12, Carbs: 54, Fat: 7, Time: "08:30"},
		{ID: "2", Name: "Chicken Salad", Calories: 450, Protein: 42, Carbs: 28, Fat: 18, Time: "12:45"},
		{ID: "3", Name: "Greek Yogurt", Calories: 150, Protein: 15, Carbs: 12, Fat: 4, Time: "15:20"},
		{ID: "4", Name: "Salmon with Rice", Calories: 580, Protein: 38, Carbs: 62, Fat: 15, Time: "19:00"},
		{ID: "5", Name: "Protein Shake", Calories: 200, Protein: 24, Carbs: 18, Fat: 3, Time: "21:00"},
	}

	local := day.In(time.Local)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	for i := range entries {
		offset, _ := domain.ParseTimeOfDay(entries[i].Time)
		entries[i].Day = midnight.Format("2006-01-02")
		entries[i].CreatedAt = midnight.Add(offset).UTC()
	}
	return entries
}
