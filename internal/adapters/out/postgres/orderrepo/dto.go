// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The partial unique index on table_number enforces at the storage level that
// a table holds at most one order in "active" or "ready" status, backstopping
// the application-level occupancy check against concurrent creates.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TableNumber int        `gorm:"index:idx_orders_open_table,unique,where:status IN ('active','ready')"`
	WaiterID    uuid.UUID  `gorm:"type:uuid;index"`
	SessionID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"type:varchar(16);index"`
	TotalAmount float64
	CreatedAt   time.Time `gorm:"index"`
	PaidAt      *time.Time
	Items       []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one item line row belonging to an order.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Name     string    `gorm:"column:item_name"`
	Quantity int
	Price    float64
	Status   string `gorm:"type:varchar(16)"`
	AddedAt  time.Time
	AddedBy  uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for item line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var sessionID *uuid.UUID
	if id := aggregate.SessionID(); id != nil {
		raw := id.Bytes()
		sessionID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		TableNumber: aggregate.TableNumber().Value(),
		WaiterID:    aggregate.WaiterID().Bytes(),
		SessionID:   sessionID,
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		PaidAt:      aggregate.PaidAt(),
		Items:       items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	return ItemDTO{
		ID:       item.ID().Bytes(),
		OrderID:  orderID.Bytes(),
		Name:     item.Name(),
		Quantity: item.Quantity(),
		Price:    item.Price(),
		Status:   item.Status().String(),
		AddedAt:  item.AddedAt(),
		AddedBy:  item.AddedBy().Bytes(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its item lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableNumber, err := kernel.NewTableNumber(dto.TableNumber)
	if err != nil {
		return nil, err
	}

	waiterID, err := kernel.UUIDFromBytes(dto.WaiterID[:])
	if err != nil {
		return nil, err
	}

	var sessionID *kernel.UUID
	if dto.SessionID != nil {
		sID, sessionErr := kernel.UUIDFromBytes((*dto.SessionID)[:])
		if sessionErr != nil {
			return nil, sessionErr
		}
		sessionID = &sID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, tableNumber, waiterID, sessionID,
		status, dto.TotalAmount, dto.CreatedAt, dto.PaidAt, items,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addedBy, err := kernel.UUIDFromBytes(dto.AddedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, dto.Name, dto.Quantity, dto.Price, status, addedBy, dto.AddedAt)
}
