// Package http provides the inbound HTTP adapter. Handlers translate
// requests into commands and queries, and encode command results without
// re-classifying errors.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/report"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	addOrderItemHandler     commands.AddOrderItemCommandHandler
	confirmPaymentHandler   commands.ConfirmPaymentCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	acceptAssignmentHandler commands.AcceptAssignmentCommandHandler
	rejectAssignmentHandler commands.RejectAssignmentCommandHandler
	markPickedUpHandler     commands.MarkPickedUpCommandHandler
	markDeliveredHandler    commands.MarkDeliveredCommandHandler
	markFailedHandler       commands.MarkFailedCommandHandler
	submitReportHandler     commands.SubmitReportCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	acceptAssignmentHandler commands.AcceptAssignmentCommandHandler,
	rejectAssignmentHandler commands.RejectAssignmentCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	markFailedHandler commands.MarkFailedCommandHandler,
	submitReportHandler commands.SubmitReportCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addOrderItemHandler:        addOrderItemHandler,
		confirmPaymentHandler:      confirmPaymentHandler,
		cancelOrderHandler:        cancelOrderHandler,
		assignDriverHandler:        assignDriverHandler,
		acceptAssignmentHandler:    acceptAssignmentHandler,
		rejectAssignmentHandler:    rejectAssignmentHandler,
		markPickedUpHandler:        markPickedUpHandler,
		markDeliveredHandler:       markDeliveredHandler,
		markFailedHandler:          markFailedHandler,
		submitReportHandler:        submitReportHandler,
		getOrderHandler:            getOrderHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 with JWT authentication.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.POST("/orders", s.CreateOrder, RequireRoles(RoleClient))
	api.POST("/orders/:id/items", s.AddOrderItem, RequireRoles(RoleClient))
	api.POST("/orders/:id/payment", s.ConfirmPayment, RequireRoles(RoleClient, RoleAdministrator))
	api.POST("/orders/:id/cancel", s.CancelOrder, RequireRoles(RoleClient, RoleAdministrator))
	api.GET("/orders/:id", s.GetOrder,
		RequireRoles(RoleClient, RoleDispatcher, RoleAdministrator))

	api.POST("/orders/:id/assignment", s.AssignDriver,
		RequireRoles(RoleDispatcher, RoleAdministrator))
	api.POST("/orders/:id/assignment/accept", s.AcceptAssignment, RequireRoles(RoleDriver))
	api.POST("/orders/:id/assignment/reject", s.RejectAssignment, RequireRoles(RoleDriver))

	api.POST("/orders/:id/pickup", s.MarkPickedUp, RequireRoles(RoleDriver))
	api.POST("/orders/:id/delivered", s.MarkDelivered, RequireRoles(RoleDriver))
	api.POST("/orders/:id/failed", s.MarkFailed, RequireRoles(RoleDriver))

	api.POST("/reports", s.SubmitReport,
		RequireRoles(RoleClient, RoleDriver, RoleDispatcher, RoleAdministrator))
	api.GET("/deliveries/active", s.GetActiveDeliveries,
		RequireRoles(RoleDispatcher, RoleAdministrator))
}

type createOrderRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Phone  string `json:"phone"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders. The customer identity comes from
// the token; the order identifier is generated server side and returned.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, commands.Result{Message: "invalid request body"})
	}

	address, err := order.NewAddress(req.Street, req.City, req.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, principal.ID, address)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

type addOrderItemRequest struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
}

// AddOrderItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req addOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, commands.Result{Message: "invalid request body"})
	}

	foodID, err := kernel.UUIDFromString(req.FoodID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, foodID, req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("item added"))
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("payment confirmed"))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("order cancelled"))
}

// AssignDriver handles POST /api/v1/orders/:id/assignment.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.CreatedResult("driver assigned"))
}

// AcceptAssignment handles POST /api/v1/orders/:id/assignment/accept.
// The driver identity comes from the token.
func (s *Server) AcceptAssignment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAcceptAssignmentCommand(orderID, principal.ID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.acceptAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("assignment accepted"))
}

// RejectAssignment handles POST /api/v1/orders/:id/assignment/reject.
func (s *Server) RejectAssignment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRejectAssignmentCommand(orderID, principal.ID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.rejectAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("assignment rejected"))
}

// MarkPickedUp handles POST /api/v1/orders/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID, principal.ID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("order picked up"))
}

type markDeliveredRequest struct {
	Signature string `json:"signature"`
}

// MarkDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req markDeliveredRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, commands.Result{Message: "invalid request body"})
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, principal.ID, req.Signature)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("order delivered"))
}

type markFailedRequest struct {
	Reason string `json:"reason"`
}

// MarkFailed handles POST /api/v1/orders/:id/failed.
func (s *Server) MarkFailed(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req markFailedRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, commands.Result{Message: "invalid request body"})
	}

	cmd, err := commands.NewMarkFailedCommand(orderID, principal.ID, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.markFailedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.OkResult("delivery marked as failed"))
}

type submitReportRequest struct {
	Kind     string `json:"kind"`
	TargetID string `json:"target_id"`
	Reason   string `json:"reason"`
}

// SubmitReport handles POST /api/v1/reports. The reporter identity comes
// from the token.
func (s *Server) SubmitReport(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
	}

	var req submitReportRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, commands.Result{Message: "invalid request body"})
	}

	targetID, err := kernel.UUIDFromString(req.TargetID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitReportCommand(
		report.Kind(req.Kind), targetID, principal.ID, req.Reason,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.submitReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.ok(ctx, commands.CreatedResult("report submitted"))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	resp, err := s.getActiveDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) ok(ctx echo.Context, result commands.Result) error {
	return ctx.JSON(result.StatusCode, result)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	result := commands.ResultFromError(err)
	return ctx.JSON(result.StatusCode, result)
}
