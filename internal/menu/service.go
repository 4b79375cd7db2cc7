package menu

// PlaceholderImage stands in for every menu and dish image until real
// lookups are wired.
const PlaceholderImage = "https://example.com/Snipaste_2025-05-09_15-45-43.png"

// Service answers menu lookups. It currently returns fixed data.
type Service struct{}

// NewService creates a new menu Service.
func NewService() *Service {
	return &Service{}
}

// CombineInfo returns the combined view for menuID.
// TODO: look the menu up by menuID once menus are persisted; the id is ignored for now.
func (s *Service) CombineInfo(menuID int) CombineInfo {
	return CombineInfo{
		Menu: Menu{
			ID:    1,
			Name:  "测试菜单",
			Image: PlaceholderImage,
		},
		Categories: []Category{
			{Name: "主食"},
			{Name: "汤类"},
			{Name: "甜点"},
			{Name: "其他"},
		},
		Dishes: []Dish{
			{Name: "红烧肉", Image: PlaceholderImage, CategoryName: "主食"},
			{Name: "番茄蛋汤", Image: PlaceholderImage, CategoryName: "汤类"},
			{Name: "提拉米苏", Image: PlaceholderImage, CategoryName: "甜点"},
		},
	}
}
