package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuQueryHandler loads the menu catalog from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query. Dishes come back grouped by category, then by
// name, for stable menu rendering.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]MenuItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			category,
			available
		FROM menu_items
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var dish MenuItemResponse

		err = rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.Price,
			&dish.Category,
			&dish.Available,
		)
		if err != nil {
			return nil, err
		}

		menu = append(menu, dish)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
