package dto

import "time"

// OrderItemDTO línea de pedido.
type OrderItemDTO struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest alta de pedido. El personal de tienda solo pide para su tienda;
// StoreID vacío toma la tienda de la sesión.
type CreateOrderRequest struct {
	StoreID      string         `json:"storeId"`
	DeliveryDate time.Time      `json:"deliveryDate" validate:"required"`
	Items        []OrderItemDTO `json:"items" validate:"required,min=1,dive"`
}

// OrderResponse salida de pedido con las acciones ofrecidas en su estado.
type OrderResponse struct {
	ID            string         `json:"id"`
	Code          string         `json:"code"`
	StoreID       string         `json:"storeId"`
	Store         string         `json:"store"`
	OrderDate     time.Time      `json:"orderDate"`
	DeliveryDate  time.Time      `json:"deliveryDate"`
	TotalQuantity int            `json:"totalQuantity"`
	Items         int            `json:"items"`
	Lines         []OrderItemDTO `json:"lines,omitempty"`
	Status        string         `json:"status"`
	Actions       []string       `json:"actions"`
}

// ShipmentResponse salida de envío.
type ShipmentResponse struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	OrderID        string     `json:"orderId"`
	OrderCode      string     `json:"orderCode"`
	StoreID        string     `json:"storeId"`
	Store          string     `json:"store"`
	DeliveryStatus string     `json:"deliveryStatus"`
	CreatedAt      time.Time  `json:"createdAt"`
	ReceivedDate   *time.Time `json:"receivedDate"`
	Actions        []string   `json:"actions"`
}

// ShipResponse resultado de despachar: pedido en shipping y su envío creado.
type ShipResponse struct {
	Order    OrderResponse    `json:"order"`
	Shipment ShipmentResponse `json:"shipment"`
}

// DeliveryResponse resultado de confirmar entrega: ambos cambios juntos. Shipment es nil
// si el pedido no tenía envío registrado.
type DeliveryResponse struct {
	Order    OrderResponse     `json:"order"`
	Shipment *ShipmentResponse `json:"shipment,omitempty"`
}
