package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemResponse is one item line of an order as served to clients.
type ItemResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Status   string    `json:"status"`
	AddedAt  time.Time `json:"added_at"`
}

// OrderResponse is the read model of an order: the order row joined with the
// owning waiter's name and all of its item lines in the order they were
// added. The same shape is served over HTTP and carried inside broadcast
// events, so every connected client sees identical order snapshots.
type OrderResponse struct {
	ID          uuid.UUID      `json:"id"`
	TableNumber int            `json:"table_number"`
	WaiterID    uuid.UUID      `json:"waiter_id"`
	WaiterName  string         `json:"waiter_name"`
	SessionID   *uuid.UUID     `json:"session_id,omitempty"`
	Status      string         `json:"status"`
	TotalAmount float64        `json:"total_amount"`
	CreatedAt   time.Time      `json:"created_at"`
	PaidAt      *time.Time     `json:"paid_at,omitempty"`
	Items       []ItemResponse `json:"items"`
}

// queryOrders loads orders matching the given WHERE clause together with
// their item lines. Orders come back sorted by creation time, items by the
// time they were added.
func queryOrders(
	ctx context.Context,
	db *gorm.DB,
	whereSQL string,
	args ...any,
) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.table_number,
			o.waiter_id,
			COALESCE(w.name, ''),
			o.session_id,
			o.status,
			o.total_amount,
			o.created_at,
			o.paid_at
		FROM orders o
		LEFT JOIN waiters w ON w.id = o.waiter_id
		WHERE `+whereSQL+`
		ORDER BY o.created_at
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var resp OrderResponse
		var sessionID uuid.NullUUID
		var paidAt sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.TableNumber,
			&resp.WaiterID,
			&resp.WaiterName,
			&sessionID,
			&resp.Status,
			&resp.TotalAmount,
			&resp.CreatedAt,
			&paidAt,
		)
		if err != nil {
			return nil, err
		}

		if sessionID.Valid {
			resp.SessionID = &sessionID.UUID
		}
		if paidAt.Valid {
			resp.PaidAt = &paidAt.Time
		}
		resp.Items = make([]ItemResponse, 0)

		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			id,
			item_name,
			quantity,
			price,
			status,
			added_at
		FROM order_items
		WHERE order_id IN ?
		ORDER BY added_at
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID uuid.UUID
		var item ItemResponse

		err = itemRows.Scan(
			&orderID,
			&item.ID,
			&item.Name,
			&item.Quantity,
			&item.Price,
			&item.Status,
			&item.AddedAt,
		)
		if err != nil {
			return nil, err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
