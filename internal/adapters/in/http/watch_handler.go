package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RodrigoFK06/rapiditos/internal/core/application/usecases/queries"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
)

// WatchOrder handles GET /api/v1/orders/:orderID/watch as a server-sent
// events stream. Each event's data is the order read model, or "null" when
// the order is missing or hidden. The stream ends when the client
// disconnects.
func (s *Server) WatchOrder(c echo.Context) error {
	orderRef, err := kernel.OrderRef(c.Param("orderID"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewWatchOrderQuery(orderRef)
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	changes := make(chan *queries.OrderResponse, 16)

	unsubscribe, err := s.watchOrderHandler.Handle(ctx, query, func(response *queries.OrderResponse) {
		select {
		case changes <- response:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return writeError(c, err)
	}
	defer unsubscribe()

	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-changes:
			data, err := json.Marshal(change)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(response, "data: %s\n\n", data); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}
