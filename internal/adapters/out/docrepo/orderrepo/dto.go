// Package orderrepo implements the order repository over the document store.
// It owns the wire schema of the orders collection: the Spanish field names
// and status literals the client-facing app has written since before this
// backend existed, including the legacy aliases older app versions used for
// the client references.
package orderrepo

import (
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// Field names of the orders collection. The spellings are the wire format;
// "asigned" and friends must not be corrected here.
const (
	fieldStatus        = "estado"
	fieldActive        = "activo"
	fieldAssigned      = "asigned"
	fieldAdminView     = "admin_view"
	fieldReadyToPay    = "ready_to_pay"
	fieldCreatedAt     = "fecha_creacion"
	fieldDeliveredAt   = "fecha_entrega"
	fieldClientRef     = "clienteref"
	fieldClientAddress = "client_address_ref"
	fieldRiderRef      = "rider_ref"
	fieldAssignmentRef = "asigned_rider_ref"
	fieldRestaurantRef = "restaurant_ref"
	fieldDeliveryPrice = "delivery_price"
	fieldTotal         = "total"
	fieldPickupPIN     = "pickup_pin"
)

// Older app versions wrote the client references under different names; reads
// try all of them, newest spelling first.
var (
	clientRefAliases     = []string{fieldClientRef, "cliente_ref", "client_ref"}
	clientAddressAliases = []string{fieldClientAddress, "clientaddress_ref"}
	restaurantRefAliases = []string{fieldRestaurantRef, "restaurantref"}
)

// toDomain reconstructs an order aggregate from a stored document.
// Fails only on an unknown status literal; every other field is tolerated
// absent, because legacy documents frequently are incomplete.
func toDomain(ref kernel.Ref, doc ports.Document) (*order.Order, error) {
	status, err := order.StatusFromWire(docrepo.StringField(doc, fieldStatus))
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(ref, order.Restored{
		Status:       status,
		AdminVisible: docrepo.BoolField(doc, fieldAdminView),
		Active:       docrepo.BoolField(doc, fieldActive),
		Assigned:     docrepo.BoolField(doc, fieldAssigned),
		ReadyToPay:   docrepo.BoolField(doc, fieldReadyToPay),

		ClientRef:        docrepo.RefField(doc, clientRefAliases...),
		ClientAddressRef: docrepo.RefField(doc, clientAddressAliases...),
		RiderRef:         docrepo.RefField(doc, fieldRiderRef),
		AssignmentRef:    docrepo.RefField(doc, fieldAssignmentRef),
		RestaurantRef:    docrepo.RefField(doc, restaurantRefAliases...),

		Total:       docrepo.FloatField(doc, fieldTotal),
		DeliveryFee: docrepo.FloatField(doc, fieldDeliveryPrice),
		PickupPIN:   docrepo.StringField(doc, fieldPickupPIN),

		CreatedAt:   docrepo.TimeField(doc, fieldCreatedAt),
		DeliveredAt: docrepo.TimePtrField(doc, fieldDeliveredAt),
	})
}
