package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty levels a recipe can carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// PlaceholderUserID is attributed to every review until real accounts exist.
const PlaceholderUserID = "current-user"

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Review is a star rating with a comment, embedded in its recipe's
// reviews column. Reviews are append-only; they are never edited or
// deleted once written.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewList stores the embedded review array as a JSONB document.
type ReviewList []Review

// Value implements the driver.Valuer interface
func (l ReviewList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *ReviewList) Scan(value interface{}) error {
	if value == nil {
		*l = ReviewList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// NutritionalInfo is stored flattened into four columns and nested on
// the wire.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Recipe is one document-style row. RecipeID is the externally visible
// identifier; the uuid primary key never leaves the store.
type Recipe struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"-"`
	CreatedAt           time.Time        `json:"-"`
	UpdatedAt           time.Time        `json:"-"`
	RecipeID            string           `gorm:"size:64;uniqueIndex;not null" json:"id"`
	Name                string           `gorm:"size:255;not null" json:"name"`
	Description         string           `gorm:"type:text" json:"description"`
	Ingredients         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CookingTime         int              `gorm:"not null" json:"cookingTime"`
	Servings            int              `gorm:"not null" json:"servings"`
	Difficulty          string           `gorm:"size:16;not null" json:"difficulty"`
	DietaryRestrictions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietaryRestrictions"`
	Cuisine             string           `gorm:"size:100" json:"cuisine"`
	Nutrition           NutritionalInfo  `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutritionalInfo"`
	ImageURL            string           `gorm:"size:512" json:"imageUrl"`
	Rating              float64          `gorm:"not null;default:0" json:"rating"`
	Reviews             ReviewList       `gorm:"type:jsonb;not null;default:'[]'" json:"reviews"`
}

// BeforeCreate assigns the primary key when the dialect has no uuid
// default (sqlite).
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecalculateRating sets Rating to the mean of all review ratings,
// unrounded. An empty review list yields 0.
func (r *Recipe) RecalculateRating() {
	if len(r.Reviews) == 0 {
		r.Rating = 0
		return
	}
	sum := 0
	for _, rv := range r.Reviews {
		sum += rv.Rating
	}
	r.Rating = float64(sum) / float64(len(r.Reviews))
}
