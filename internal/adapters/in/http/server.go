// Package http adapts the engine's commands and queries to an echo REST
// surface under /api/v1.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"galeteria/internal/core/application/usecases/commands"
	"galeteria/internal/core/application/usecases/queries"
	"galeteria/internal/core/domain/model/delivery"
	"galeteria/internal/core/domain/model/kernel"
	"galeteria/internal/core/domain/model/order"
	"galeteria/internal/core/domain/model/product"
	"galeteria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addProductHandler           commands.AddProductCommandHandler
	addClientHandler            commands.AddClientCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	markReadyForDeliveryHandler commands.MarkReadyForDeliveryCommandHandler
	startDeliveryHandler        commands.StartDeliveryCommandHandler

	// Query handlers
	getProductsHandler          queries.GetProductsQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getActiveDeliveriesHandler  queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	addProductHandler commands.AddProductCommandHandler,
	addClientHandler commands.AddClientCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	markReadyForDeliveryHandler commands.MarkReadyForDeliveryCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		addProductHandler:           addProductHandler,
		addClientHandler:            addClientHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		markReadyForDeliveryHandler: markReadyForDeliveryHandler,
		startDeliveryHandler:        startDeliveryHandler,
		getProductsHandler:          getProductsHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getActiveDeliveriesHandler:  getActiveDeliveriesHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	v1 := e.Group("/api/v1")
	v1.POST("/products", s.CreateProduct)
	v1.GET("/products", s.GetProducts)
	v1.POST("/clients", s.CreateClient)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/ready-for-delivery", s.MarkReadyForDelivery)
	v1.POST("/orders/:id/start-delivery", s.StartDelivery)
	v1.GET("/deliveries", s.GetDeliveries)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := product.CategoryFromString(body.Category)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	cmd, err := commands.NewAddProductCommand(body.Name, body.PriceCents, body.Stock, category)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Product{
		ID:         created.ID().String(),
		Name:       created.Name(),
		PriceCents: created.Price().Cents(),
		Stock:      created.Stock(),
		Category:   created.Category().String(),
	})
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:         p.ID.String(),
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Stock:      p.Stock,
			Category:   p.Category,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var body NewClient
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddClientCommand(body.Name, body.Phone, body.Address)
	if err != nil {
		return badRequest(ctx, "Invalid client data: "+err.Error())
	}

	created, err := s.addClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Client{
		ID:      created.ID().String(),
		Name:    created.Name(),
		Phone:   created.Phone(),
		Address: created.Address(),
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	orderType, err := order.TypeFromString(body.OrderType)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	lines := make([]order.Line, 0, len(body.Lines))
	for _, l := range body.Lines {
		productID, idErr := kernel.UUIDFromString(l.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+idErr.Error())
		}

		line, lineErr := order.NewLine(productID, l.Quantity)
		if lineErr != nil {
			return badRequest(ctx, "Invalid order line: "+lineErr.Error())
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(clientID, orderType, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(created))
}

// GetOrders handles GET /api/v1/orders - retrieves all uncompleted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		lines := make([]OrderLine, len(o.Lines))
		for j, l := range o.Lines {
			lines[j] = OrderLine{ProductID: l.ProductID.String(), Quantity: l.Quantity}
		}

		response[i] = Order{
			ID:         o.ID,
			ClientID:   o.ClientID.String(),
			ClientName: o.ClientName,
			OrderType:  o.OrderType,
			Status:     o.Status,
			Paid:       o.Paid,
			TotalCents: o.TotalCents,
			CreatedAt:  o.CreatedAt,
			Lines:      lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body UpdateOrderStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, target, body.Paid)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(cancelled))
}

// MarkReadyForDelivery handles POST /api/v1/orders/:id/ready-for-delivery.
func (s *Server) MarkReadyForDelivery(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkReadyForDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	updated, err := s.markReadyForDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// StartDelivery handles POST /api/v1/orders/:id/start-delivery.
func (s *Server) StartDelivery(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewStartDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	started, err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Delivery{
		ID:        started.ID(),
		OrderID:   started.OrderID(),
		StartedAt: started.StartedAt(),
	})
}

// GetDeliveries handles GET /api/v1/deliveries - retrieves en-route
// deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = Delivery{
			ID:            d.ID,
			OrderID:       d.OrderID,
			OrderStatus:   d.OrderStatus,
			ClientName:    d.ClientName,
			ClientAddress: d.ClientAddress,
			StartedAt:     d.StartedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func orderResponse(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLine{
			ProductID: l.ProductID().String(),
			Quantity:  l.Quantity(),
		})
	}

	return Order{
		ID:         o.ID(),
		ClientID:   o.ClientID().String(),
		OrderType:  o.Type().String(),
		Status:     o.Status().String(),
		Paid:       o.Paid(),
		TotalCents: o.Total().Cents(),
		CreatedAt:  o.CreatedAt(),
		Lines:      lines,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use-case errors onto HTTP statuses: missing objects
// to 404, business-rule conflicts to 409, everything else to 500.
func errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrDeliveryNotFound):
		code = http.StatusNotFound
	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderAlreadyTerminal),
		errors.Is(err, delivery.ErrDeliveryAlreadyCompleted),
		errors.Is(err, commands.ErrWrongOrderType):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
