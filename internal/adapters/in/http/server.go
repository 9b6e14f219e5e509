// Package http exposes the order engine over a JSON API. Handlers delegate
// to command and query handlers; after a successful mutation the updated
// order snapshot is re-read and broadcast to connected clients, so the HTTP
// response and the websocket event carry the same state.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tableside/internal/core/application/events"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addItemsHandler       commands.AddItemsCommandHandler
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler
	payOrderHandler       commands.PayOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	cancelItemHandler     commands.CancelItemCommandHandler
	purgeOrderHandler     commands.PurgeOrderCommandHandler
	startSessionHandler   commands.StartSessionCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getOrdersSinceHandler    queries.GetOrdersSinceQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getWaitersHandler        queries.GetWaitersQueryHandler
	getCurrentSessionHandler queries.GetCurrentSessionQueryHandler

	publisher events.Publisher
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the event publisher used for client notifications.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemsHandler commands.AddItemsCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	cancelItemHandler commands.CancelItemCommandHandler,
	purgeOrderHandler commands.PurgeOrderCommandHandler,
	startSessionHandler commands.StartSessionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrdersSinceHandler queries.GetOrdersSinceQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getWaitersHandler queries.GetWaitersQueryHandler,
	getCurrentSessionHandler queries.GetCurrentSessionQueryHandler,
	publisher events.Publisher,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addItemsHandler:          addItemsHandler,
		markOrderReadyHandler:    markOrderReadyHandler,
		payOrderHandler:          payOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		cancelItemHandler:        cancelItemHandler,
		purgeOrderHandler:        purgeOrderHandler,
		startSessionHandler:      startSessionHandler,
		getOrderHandler:          getOrderHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getOrdersSinceHandler:    getOrdersSinceHandler,
		getMenuHandler:           getMenuHandler,
		getWaitersHandler:        getWaitersHandler,
		getCurrentSessionHandler: getCurrentSessionHandler,
		publisher:                publisher,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/items", s.AddItems)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
	api.POST("/orders/:id/pay", s.PayOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/items/:id/cancel", s.CancelItem)
	api.GET("/kitchen/orders", s.GetKitchenOrders)
	api.DELETE("/manager/orders/:id", s.PurgeOrder)
	api.GET("/menu", s.GetMenu)
	api.GET("/waiters", s.GetWaiters)
	api.POST("/session/start", s.StartSession)
	api.GET("/session/current", s.GetCurrentSession)
}

type errorResponse struct {
	Error string `json:"error"`
}

type itemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type createOrderRequest struct {
	Table     int           `json:"table"`
	WaiterID  uuid.UUID     `json:"waiterId"`
	SessionID *uuid.UUID    `json:"sessionId"`
	Items     []itemRequest `json:"items"`
}

type addItemsRequest struct {
	WaiterID uuid.UUID     `json:"waiterId"`
	Items    []itemRequest `json:"items"`
}

type cancelRequest struct {
	Reason   string    `json:"reason"`
	WaiterID uuid.UUID `json:"waiterId"`
}

type startSessionRequest struct {
	WaiterID uuid.UUID `json:"waiterId"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - opens a tab for a table.
// Returns 400 when the table already has an open tab, because re-sending a
// create for an occupied table is a client mistake rather than a lost race.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	tableNumber, err := kernel.NewTableNumber(req.Table)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	waiterID, err := kernel.UUIDFromBytes(req.WaiterID[:])
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	var sessionID *kernel.UUID
	if req.SessionID != nil {
		sID, sessionErr := kernel.UUIDFromBytes((*req.SessionID)[:])
		if sessionErr != nil {
			return writeError(ctx, sessionErr, http.StatusBadRequest)
		}
		sessionID = &sID
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, tableNumber, waiterID, sessionID, toItemSpecs(req.Items),
	)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	snapshot, err := s.orderSnapshot(ctx, orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	s.publisher.Publish(events.OrderCreated{Order: snapshot})
	return ctx.JSON(http.StatusCreated, snapshot)
}

// AddItems handles POST /api/orders/:id/items - appends item lines to an
// open tab. Returns 409 when the tab is already paid or cancelled.
func (s *Server) AddItems(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	var req addItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	waiterID, err := kernel.UUIDFromBytes(req.WaiterID[:])
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewAddItemsCommand(orderID, waiterID, toItemSpecs(req.Items))
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	if err = s.addItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusConflict)
	}

	snapshot, err := s.orderSnapshot(ctx, orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	s.publisher.Publish(events.OrderUpdated{Order: snapshot})
	return ctx.JSON(http.StatusOK, snapshot)
}

// MarkOrderReady handles POST /api/orders/:id/ready - the kitchen marks the
// whole order ready to serve. Returns 409 when the order is not active.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	if err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusConflict)
	}

	snapshot, err := s.orderSnapshot(ctx, orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	s.publisher.Publish(events.OrderReady{Order: snapshot})
	return ctx.JSON(http.StatusOK, snapshot)
}

// PayOrder handles POST /api/orders/:id/pay - settles the tab and frees the
// table. Returns 409 when the order is already paid or cancelled.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusConflict)
	}

	snapshot, err := s.orderSnapshot(ctx, orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	s.publisher.Publish(events.OrderPaid{Order: snapshot})
	return ctx.JSON(http.StatusOK, snapshot)
}

// CancelOrder handles POST /api/orders/:id/cancel - voids the whole tab
// with an audited reason. Returns 400 when the order is already terminal.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	waiterID, err := kernel.UUIDFromBytes(req.WaiterID[:])
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, waiterID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	snapshot, err := s.orderSnapshot(ctx, orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	s.publisher.Publish(events.OrderCancelled{Order: snapshot})
	return ctx.JSON(http.StatusOK, snapshot)
}

// CancelItem handles POST /api/items/:id/cancel - strikes a single item
// line with an audited reason. Returns 409 when the line is already
// cancelled or its order is terminal.
func (s *Server) CancelItem(ctx echo.Context) error {
	itemID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	waiterID, err := kernel.UUIDFromBytes(req.WaiterID[:])
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewCancelItemCommand(itemID, req.Reason, waiterID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	orderID, err := s.cancelItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusConflict)
	}

	snapshot, err := s.orderSnapshot(ctx, orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	s.publisher.Publish(events.ItemCancelled{Order: snapshot})
	return ctx.JSON(http.StatusOK, snapshot)
}

// PurgeOrder handles DELETE /api/manager/orders/:id - permanently removes an
// order of any status together with its cancellation records.
func (s *Server) PurgeOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewPurgeOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	if err = s.purgeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusConflict)
	}

	s.publisher.Publish(events.OrderDeleted{OrderID: orderID.Bytes()})
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/orders/:id - returns one order snapshot.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// GetActiveOrders handles GET /api/orders/active - returns all open tabs.
// Clients call this on connect before applying broadcast events.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery(),
	)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetKitchenOrders handles GET /api/kitchen/orders - returns recent orders
// of every status. An optional "days" query parameter narrows the window.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	since := time.Now().UTC().Add(-queries.DefaultKitchenWindow)
	if raw := ctx.QueryParam("days"); raw != "" {
		days, convErr := strconv.Atoi(raw)
		if convErr != nil || days < 1 {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid days parameter"})
		}
		since = time.Now().UTC().AddDate(0, 0, -days)
	}

	query, err := queries.NewGetOrdersSinceQuery(since)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	orders, err := s.getOrdersSinceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetMenu handles GET /api/menu - returns the menu catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, menu)
}

// GetWaiters handles GET /api/waiters - returns the waiter roster.
func (s *Server) GetWaiters(ctx echo.Context) error {
	waiters, err := s.getWaitersHandler.Handle(ctx.Request().Context(), queries.NewGetWaitersQuery())
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, waiters)
}

// StartSession handles POST /api/session/start - starts or refreshes the
// waiter's shift for today and returns the resulting session.
func (s *Server) StartSession(ctx echo.Context) error {
	var req startSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	waiterID, err := kernel.UUIDFromBytes(req.WaiterID[:])
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewStartSessionCommand(kernel.NewUUID(), waiterID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	if err = s.startSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	return s.currentSession(ctx, waiterID)
}

// GetCurrentSession handles GET /api/session/current - returns the waiter's
// session for today, or 404 when the shift has not been started.
func (s *Server) GetCurrentSession(ctx echo.Context) error {
	waiterID, err := kernel.UUIDFromString(ctx.QueryParam("waiterId"))
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	return s.currentSession(ctx, waiterID)
}

func (s *Server) currentSession(ctx echo.Context, waiterID kernel.UUID) error {
	query, err := queries.NewGetCurrentSessionQuery(waiterID, time.Now().UTC())
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest)
	}

	session, err := s.getCurrentSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, session)
}

func (s *Server) orderSnapshot(ctx echo.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

func parseID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// writeError maps an application error to an HTTP response. Not-found and
// validation failures always map to the same statuses; the status used for
// a conflict depends on the operation, so the caller supplies it. Errors
// outside the taxonomy are storage or infrastructure failures and are logged
// before the 500 goes out.
func writeError(ctx echo.Context, err error, conflictStatus int) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = conflictStatus
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		slog.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

func toItemSpecs(items []itemRequest) []commands.ItemSpec {
	specs := make([]commands.ItemSpec, 0, len(items))
	for _, item := range items {
		specs = append(specs, commands.ItemSpec{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return specs
}
