package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tableside/internal/adapters/out/postgres/cancellationrepo"
	"tableside/internal/adapters/out/postgres/orderrepo"
	"tableside/internal/adapters/out/postgres/sessionrepo"
)

// WaiterDTO represents one waiter on the roster. Waiters are reference data:
// seeded at startup and read by queries, never written by the order engine.
type WaiterDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for waiters.
func (WaiterDTO) TableName() string {
	return "waiters"
}

// MenuItemDTO represents one dish in the menu catalog. Orders capture name
// and price at ordering time, so later menu edits never touch existing tabs.
type MenuItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Price     float64
	Category  string
	Available bool `gorm:"default:true"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// Migrate creates or updates all tables the engine uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&WaiterDTO{},
		&MenuItemDTO{},
		&sessionrepo.SessionDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&cancellationrepo.RecordDTO{},
	)
}

// Seed populates the waiter roster and the menu catalog when they are empty.
// Running it repeatedly is safe.
func Seed(db *gorm.DB) error {
	var waiterCount int64
	if err := db.Model(&WaiterDTO{}).Count(&waiterCount).Error; err != nil {
		return err
	}

	if waiterCount == 0 {
		waiters := make([]WaiterDTO, 0, len(seedWaiters))
		for _, name := range seedWaiters {
			waiters = append(waiters, WaiterDTO{ID: uuid.New(), Name: name})
		}
		if err := db.Create(&waiters).Error; err != nil {
			return err
		}
	}

	var menuCount int64
	if err := db.Model(&MenuItemDTO{}).Count(&menuCount).Error; err != nil {
		return err
	}

	if menuCount == 0 {
		menu := make([]MenuItemDTO, 0, len(seedMenu))
		for _, dish := range seedMenu {
			menu = append(menu, MenuItemDTO{
				ID:        uuid.New(),
				Name:      dish.name,
				Price:     dish.price,
				Category:  dish.category,
				Available: true,
			})
		}
		if err := db.Create(&menu).Error; err != nil {
			return err
		}
	}

	return nil
}

var seedWaiters = []string{"Raj", "Priya", "Amit", "Anjali", "Manager"}

var seedMenu = []struct {
	name     string
	price    float64
	category string
}{
	{"Chicken Biryani", 350, "Main"},
	{"Mutton Biryani", 450, "Main"},
	{"Butter Chicken", 380, "Main"},
	{"Paneer Butter Masala", 320, "Main"},
	{"Dal Makhani", 280, "Main"},
	{"Tandoori Chicken", 420, "Main"},
	{"Chicken Tikka Masala", 360, "Main"},
	{"Palak Paneer", 300, "Main"},
	{"Samosa", 80, "Starter"},
	{"Paneer Tikka", 280, "Starter"},
	{"Chicken 65", 320, "Starter"},
	{"Aloo Tikki", 120, "Starter"},
	{"Papdi Chaat", 150, "Starter"},
	{"Veg Pakora", 180, "Starter"},
	{"Tandoori Roti", 40, "Bread"},
	{"Butter Naan", 60, "Bread"},
	{"Garlic Naan", 70, "Bread"},
	{"Cheese Naan", 80, "Bread"},
	{"Laccha Paratha", 50, "Bread"},
	{"Plain Rice", 120, "Side"},
	{"Jeera Rice", 150, "Side"},
	{"Raita", 80, "Side"},
	{"Papad", 30, "Side"},
	{"Gulab Jamun", 120, "Dessert"},
	{"Rasmalai", 140, "Dessert"},
	{"Gajar Halwa", 130, "Dessert"},
	{"Kulfi", 100, "Dessert"},
	{"Jalebi", 90, "Dessert"},
	{"Masala Chai", 40, "Drink"},
	{"Lassi", 80, "Drink"},
	{"Mango Lassi", 100, "Drink"},
	{"Thums Up", 50, "Drink"},
	{"Fresh Lime Soda", 70, "Drink"},
}
