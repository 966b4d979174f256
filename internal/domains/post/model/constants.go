package model

// Field names, shared by validation errors and storage columns
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"
)

// Length bounds, counted in characters
const (
	MinContentLength = 250
	MaxSummaryLength = 250
)

// Categories
const (
	CategoryFiction    = "Fiction"
	CategoryNonFiction = "Non-Fiction"
)

// ClickbaitPhrases - a title must contain at least one of these, case-sensitive
var ClickbaitPhrases = []string{"Won't Believe", "Secret", "Top", "Guess"}

// AllowedCategories - a category must be exactly one of these
var AllowedCategories = []string{CategoryFiction, CategoryNonFiction}
