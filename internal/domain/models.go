package domain

import "time"

// Money values are int64 amounts in whole VND.

type MenuCategory string

const (
	CategoryAppetizer  MenuCategory = "appetizer"
	CategoryMainCourse MenuCategory = "main-course"
	CategoryDessert    MenuCategory = "dessert"
	CategoryBeverage   MenuCategory = "beverage"
	CategoryVietnamese MenuCategory = "vietnamese"
	CategoryWestern    MenuCategory = "western"
	CategoryVegetarian MenuCategory = "vegetarian"
)

func ValidCategory(c MenuCategory) bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert,
		CategoryBeverage, CategoryVietnamese, CategoryWestern, CategoryVegetarian:
		return true
	}
	return false
}

type MenuItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	NameEn        string         `json:"name_en"`
	Description   string         `json:"description"`
	DescriptionEn string         `json:"description_en"`
	Price         int64          `json:"price"`
	ImageURL      string         `json:"image_url"`
	Categories    []MenuCategory `json:"categories"`
	Available     bool           `json:"available"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"review_count"`
	PrepTime      int            `json:"prep_time"` // minutes
	Ingredients   string         `json:"ingredients,omitempty"`
}

func (m MenuItem) HasCategory(c MenuCategory) bool {
	for _, cat := range m.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

type CartItem struct {
	MenuItem MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
	Note     string   `json:"note"`
}

// OrderItem is a frozen copy of a cart entry. UnitPrice and Subtotal are
// captured at order creation and never recomputed, even if the menu item's
// price changes later.
type OrderItem struct {
	MenuItem  MenuItem `json:"menu_item"`
	Quantity  int      `json:"quantity"`
	UnitPrice int64    `json:"unit_price"`
	Note      string   `json:"note"`
	Subtotal  int64    `json:"subtotal"`
}

type Order struct {
	ID            string      `json:"id"`
	TableNumber   int         `json:"table_number"`
	Items         []OrderItem `json:"items"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	Subtotal      int64       `json:"subtotal"`
	ServiceCharge int64       `json:"service_charge"`
	VAT           int64       `json:"vat"`
	Discount      int64       `json:"discount"`
	Total         int64       `json:"total"`
}

type Table struct {
	Number   int         `json:"number"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `json:"status"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}
