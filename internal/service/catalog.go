package service

import "strings"

type Category string

const (
	CategoryMenu      Category = "menu"
	CategoryBooking   Category = "booking"
	CategoryContact   Category = "contact"
	CategoryHours     Category = "hours"
	CategoryGreeting  Category = "greeting"
	CategoryThanks    Category = "thanks"
	CategoryFarewell  Category = "farewell"
	CategoryDefault   Category = "default"
	CategoryDuplicate Category = "duplicate"
)

// KeywordCategory answers with Reply when the normalized message contains any
// of Triggers as a substring.
type KeywordCategory struct {
	Category Category
	Triggers []string
	Reply    string
}

// Catalog is the ordered list of keyword categories. The first match wins, so
// "menu order" is answered with the menu.
type Catalog struct {
	categories []KeywordCategory
	fallback   string
}

func defaultCategories() []KeywordCategory {
	return []KeywordCategory{
		{Category: CategoryMenu, Triggers: []string{"menu", "1", "khana", "rate", "price", "charges"}, Reply: ReplyMenu},
		{Category: CategoryBooking, Triggers: []string{"booking", "appointment", "2", "order", "delivery"}, Reply: ReplyBooking},
		{Category: CategoryContact, Triggers: []string{"contact", "3", "number", "phone", "address"}, Reply: ReplyContact},
		{Category: CategoryHours, Triggers: []string{"time", "hour", "4", "baje", "open", "close"}, Reply: ReplyHours},
		{Category: CategoryGreeting, Triggers: []string{"hello", "hi", "hey", "salam", "assalam"}, Reply: ReplyWelcome},
		{Category: CategoryThanks, Triggers: []string{"thanks", "thank", "shukriya"}, Reply: ReplyThanks},
		{Category: CategoryFarewell, Triggers: []string{"bye", "goodbye", "allah hafiz"}, Reply: ReplyFarewell},
	}
}

// NewCatalog builds the default catalog, replacing reply texts with any
// non-empty override keyed by category name.
func NewCatalog(overrides map[string]string) *Catalog {
	categories := defaultCategories()
	for i := range categories {
		if text := overrides[string(categories[i].Category)]; text != "" {
			categories[i].Reply = text
		}
	}

	fallback := ReplyDefault
	if text := overrides[string(CategoryDefault)]; text != "" {
		fallback = text
	}

	return &Catalog{categories: categories, fallback: fallback}
}

// Match expects an already normalized message.
func (c *Catalog) Match(message string) (Category, string) {
	for _, category := range c.categories {
		for _, trigger := range category.Triggers {
			if strings.Contains(message, trigger) {
				return category.Category, category.Reply
			}
		}
	}
	return CategoryDefault, c.fallback
}

func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}
