// Package menu serves the combined menu, category and dish view.
package menu

// Menu is the menu header shown above the dish list.
type Menu struct {
	ID    int    `json:"id"    example:"1"`
	Name  string `json:"name"  example:"测试菜单"`
	Image string `json:"image" example:"https://example.com/Snipaste_2025-05-09_15-45-43.png"`
}

// Category groups dishes by name.
type Category struct {
	Name string `json:"name" example:"主食"`
}

// Dish belongs to exactly one category, referenced by name.
type Dish struct {
	Name         string `json:"name"         example:"红烧肉"`
	Image        string `json:"image"        example:"https://example.com/Snipaste_2025-05-09_15-45-43.png"`
	CategoryName string `json:"categoryName" example:"主食"`
}

// CombineInfo is everything the ordering page needs for one menu.
type CombineInfo struct {
	Menu       Menu       `json:"menu"`
	Categories []Category `json:"categories"`
	Dishes     []Dish     `json:"dishes"`
}
