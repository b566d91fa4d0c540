package models

// Category groups tracks on the dashboard.
type Category string

const (
	// CategoryPreparation holds the bus preparation tracks.
	CategoryPreparation Category = "preparation"
	// CategoryOperational holds the operational and executive plan tracks.
	CategoryOperational Category = "operational"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryPreparation, CategoryOperational}
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CategoryPreparation, CategoryOperational:
		return true
	default:
		return false
	}
}
