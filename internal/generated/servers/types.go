package servers

// Defines values for OrderStatus.
const (
	OrderStatusAccepted   OrderStatus = "Accepted"
	OrderStatusAssembly   OrderStatus = "Assembly"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusInProgress OrderStatus = "InProgress"
	OrderStatusProcessing OrderStatus = "Processing"
)

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Address     string      `json:"address"`
	CustomerId  int64       `json:"customer_id"`
	Items       []OrderItem `json:"items,omitempty"`
	OrderStatus OrderStatus `json:"order_status"`
	Price       int64       `json:"price"`
}

// Order defines model for Order.
type Order struct {
	Address     string      `json:"address"`
	CustomerId  int64       `json:"customer_id"`
	Items       []OrderItem `json:"items"`
	OrderId     int64       `json:"order_id"`
	OrderStatus OrderStatus `json:"order_status"`
	Price       int64       `json:"price"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	OrderId int64 `json:"order_id"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId  int64 `json:"product_id"`
	Quantity   int   `json:"quantity"`
	TotalPrice int64 `json:"total_price"`
	UnitPrice  int64 `json:"unit_price"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	// CustomerId Only return orders of this customer
	CustomerId *int64 `form:"customer_id,omitempty" json:"customer_id,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = NewOrder
