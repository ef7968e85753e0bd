// Package http exposes the admin backend over HTTP: the order views, the
// lifecycle operations, and a server-sent-events stream for live order
// observation.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/RodrigoFK06/rapiditos/internal/core/application/usecases/commands"
	"github.com/RodrigoFK06/rapiditos/internal/core/application/usecases/queries"
)

// Server wires the HTTP routes to the application use cases.
type Server struct {
	// Command handlers
	assignRiderHandler  commands.AssignRiderCommandHandler
	completeHandler     commands.CompleteOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getByStatusHandler      queries.GetOrdersByStatusQueryHandler
	riderAssignmentsHandler queries.GetRiderAssignmentsQueryHandler
	watchOrderHandler       queries.WatchOrderQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	assignRiderHandler commands.AssignRiderCommandHandler,
	completeHandler commands.CompleteOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getByStatusHandler queries.GetOrdersByStatusQueryHandler,
	riderAssignmentsHandler queries.GetRiderAssignmentsQueryHandler,
	watchOrderHandler queries.WatchOrderQueryHandler,
) *Server {
	return &Server{
		assignRiderHandler:      assignRiderHandler,
		completeHandler:         completeHandler,
		updateStatusHandler:     updateStatusHandler,
		getOrderHandler:         getOrderHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getByStatusHandler:      getByStatusHandler,
		riderAssignmentsHandler: riderAssignmentsHandler,
		watchOrderHandler:       watchOrderHandler,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.GET("/orders/:orderID/watch", s.WatchOrder)
	api.POST("/orders/:orderID/assign", s.AssignRider)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)
	api.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	api.GET("/riders/:riderID/assignments", s.GetRiderAssignments)
}
