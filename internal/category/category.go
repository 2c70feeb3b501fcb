package category

// Category is a fixed-vocabulary classification tag on a transaction. The
// vocabulary is configuration data, not a stored entity, so it lives in a
// constant table here.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var categories = []Category{
	{Name: "income", Description: "Salary, refunds and other incoming money"},
	{Name: "expense", Description: "General uncategorized spending"},
	{Name: "food", Description: "Groceries, restaurants and delivery"},
	{Name: "transportation", Description: "Fuel, public transit and ride sharing"},
	{Name: "entertainment", Description: "Movies, games and subscriptions"},
	{Name: "shopping", Description: "Clothing, electronics and household goods"},
	{Name: "bills", Description: "Rent, utilities and recurring charges"},
	{Name: "healthcare", Description: "Medical, dental and pharmacy"},
	{Name: "education", Description: "Courses, books and tuition"},
	{Name: "other", Description: "Anything that fits nowhere else"},
}

// All returns the full category vocabulary in a stable order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Names returns the allowed category names for validation.
func Names() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// IsValid reports whether name is part of the vocabulary.
func IsValid(name string) bool {
	for _, c := range categories {
		if c.Name == name {
			return true
		}
	}
	return false
}
