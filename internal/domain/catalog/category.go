package catalog

import "github.com/shelfstack/bookstore-api/internal/httperr"

// ===============================
// Book Category
// ===============================

type Category string

const (
	CategoryHorror    Category = "Horror"
	CategorySciFi     Category = "Sci-Fi"
	CategoryRomance   Category = "Romance"
	CategoryHistory   Category = "History"
	CategoryAdventure Category = "Adventure"
	CategoryFantasy   Category = "Fantasy"
)

var categories = []Category{
	CategoryHorror,
	CategorySciFi,
	CategoryRomance,
	CategoryHistory,
	CategoryAdventure,
	CategoryFantasy,
}

// ===============================
// Validations
// ===============================

// Parse accepts only the closed category set, exact match.
func Parse(s string) (Category, error) {
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_category")
}
