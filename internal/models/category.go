package models

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ServiceCategories is the fixed catalog of recognized service categories.
// Consumed read-only by registration validation and search filtering.
var ServiceCategories = []Category{
	{ID: "plumbing", Name: "Plumbing", Icon: "🔧"},
	{ID: "electrical", Name: "Electrical", Icon: "⚡"},
	{ID: "cleaning", Name: "Cleaning", Icon: "🧹"},
	{ID: "painting", Name: "Painting", Icon: "🎨"},
	{ID: "carpentry", Name: "Carpentry", Icon: "🪚"},
	{ID: "appliance-repair", Name: "Appliance Repair", Icon: "🔌"},
	{ID: "gardening", Name: "Gardening", Icon: "🌱"},
	{ID: "pest-control", Name: "Pest Control", Icon: "🐛"},
	{ID: "moving", Name: "Moving & Packing", Icon: "📦"},
	{ID: "handyman", Name: "Handyman", Icon: "🛠️"},
}

// IsKnownCategory reports whether id names a catalog category.
func IsKnownCategory(id string) bool {
	for _, c := range ServiceCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}
