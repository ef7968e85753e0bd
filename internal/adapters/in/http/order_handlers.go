package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RodrigoFK06/rapiditos/internal/core/application/usecases/commands"
	"github.com/RodrigoFK06/rapiditos/internal/core/application/usecases/queries"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
)

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders.
//
// Without parameters it returns every confirmed order. "?active=true"
// narrows to in-flight orders; "?status=<estado>" narrows to one lifecycle
// status, using the wire literals the dashboard already speaks.
func (s *Server) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	if wireStatus := c.QueryParam("status"); wireStatus != "" {
		status, err := order.StatusFromWire(wireStatus)
		if err != nil {
			return writeError(c, err)
		}
		query, err := queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return writeError(c, err)
		}
		responses, err := s.getByStatusHandler.Handle(ctx, query)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, responses)
	}

	if c.QueryParam("active") == "true" {
		responses, err := s.getActiveOrdersHandler.Handle(ctx, queries.NewGetActiveOrdersQuery())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, responses)
	}

	responses, err := s.getAllOrdersHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, responses)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(c echo.Context) error {
	orderRef, err := kernel.OrderRef(c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderRef)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// AssignRiderRequest is the body of POST /api/v1/orders/:orderID/assign.
type AssignRiderRequest struct {
	RiderID string `json:"riderId"`
}

// AssignRider handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignRider(c echo.Context) error {
	orderRef, err := kernel.OrderRef(c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	var request AssignRiderRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	riderRef, err := kernel.RiderRef(request.RiderID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderRef, riderRef)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.assignRiderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	orderRef, err := kernel.OrderRef(c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderRef)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.completeHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateStatusRequest is the body of PATCH /api/v1/orders/:orderID/status.
// The status is a wire literal, e.g. "Preparando".
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderRef, err := kernel.OrderRef(c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	var request UpdateStatusRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromWire(request.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderRef, status)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRiderAssignments handles GET /api/v1/riders/:riderID/assignments.
func (s *Server) GetRiderAssignments(c echo.Context) error {
	riderRef, err := kernel.RiderRef(c.Param("riderID"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetRiderAssignmentsQuery(riderRef)
	if err != nil {
		return writeError(c, err)
	}

	responses, err := s.riderAssignmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, responses)
}
