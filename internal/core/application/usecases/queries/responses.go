package queries

import (
	"time"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/assignment"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
)

// OrderResponse is the read model of a single order. Reference fields are
// rendered as "{collection}/{id}" paths, empty when the document lacks them.
type OrderResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	AdminVisible bool   `json:"adminVisible"`
	Active       bool   `json:"active"`
	Assigned     bool   `json:"assigned"`
	ReadyToPay   bool   `json:"readyToPay"`

	ClientRef        string `json:"clientRef,omitempty"`
	ClientAddressRef string `json:"clientAddressRef,omitempty"`
	RiderRef         string `json:"riderRef,omitempty"`
	AssignmentRef    string `json:"assignmentRef,omitempty"`
	RestaurantRef    string `json:"restaurantRef,omitempty"`

	Total       float64 `json:"total"`
	DeliveryFee float64 `json:"deliveryFee"`
	PickupPIN   string  `json:"pickupPin,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// NewOrderResponse builds the read model from an order aggregate.
func NewOrderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:           aggregate.Ref().ID(),
		Status:       aggregate.Status().String(),
		AdminVisible: aggregate.AdminVisible(),
		Active:       aggregate.Active(),
		Assigned:     aggregate.Assigned(),
		ReadyToPay:   aggregate.ReadyToPay(),

		ClientRef:        refPath(aggregate.ClientRef()),
		ClientAddressRef: refPath(aggregate.ClientAddressRef()),
		RiderRef:         refPath(aggregate.RiderRef()),
		AssignmentRef:    refPath(aggregate.AssignmentRef()),
		RestaurantRef:    refPath(aggregate.RestaurantRef()),

		Total:       aggregate.Total(),
		DeliveryFee: aggregate.DeliveryFee(),
		PickupPIN:   aggregate.PickupPIN(),

		CreatedAt:   aggregate.CreatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

// AssignmentResponse is the read model of one assignment record.
type AssignmentResponse struct {
	ID               string    `json:"id"`
	OrderRef         string    `json:"orderRef,omitempty"`
	RiderRef         string    `json:"riderRef,omitempty"`
	ClientRef        string    `json:"clientRef,omitempty"`
	ClientAddressRef string    `json:"clientAddressRef,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewAssignmentResponse builds the read model from an assignment record.
func NewAssignmentResponse(record *assignment.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:               record.Ref().ID(),
		OrderRef:         refPath(record.OrderRef()),
		RiderRef:         refPath(record.RiderRef()),
		ClientRef:        refPath(record.ClientRef()),
		ClientAddressRef: refPath(record.ClientAddressRef()),
		Status:           record.Status(),
		CreatedAt:        record.CreatedAt(),
	}
}

func refPath(ref kernel.Ref) string {
	if ref.IsZero() {
		return ""
	}
	return ref.Path()
}
