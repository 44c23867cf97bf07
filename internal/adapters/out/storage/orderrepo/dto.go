// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order aggregate is stored in two tables: one header row in "orders" and any number
// of item rows in "order_items" sharing the header's order_id.
package orderrepo

import (
	"skate/internal/core/domain/model/order"
)

// OrderDTO is the header row of an order.
type OrderDTO struct {
	ID         int64  `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID int64  `gorm:"column:customer_id;not null"`
	Status     int    `gorm:"column:order_status;not null"`
	Address    string `gorm:"column:address;type:text;not null"`
	Price      int64  `gorm:"column:price;not null"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item row. The table has no primary key: the items of
// an order are all rows sharing its order_id. The reference is not a database
// constraint; the repository keeps it consistent. LineNo is the zero-based
// position of the item in the submitted list and fixes the read order.
type OrderItemDTO struct {
	OrderID    int64 `gorm:"column:order_id;not null;index"`
	LineNo     int   `gorm:"column:line_no;not null"`
	ProductID  int64 `gorm:"column:product_id;not null"`
	Quantity   int   `gorm:"column:quantity;not null"`
	UnitPrice  int64 `gorm:"column:unit_price;not null"`
	TotalPrice int64 `gorm:"column:total_price;not null"`
}

// TableName overrides GORM's default naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// headerFromDomain maps the mutable header fields. The identifier is left to
// the database on insert and to the WHERE clause on update.
func headerFromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().Code(),
		Address:    aggregate.Address(),
		Price:      aggregate.Price(),
	}
}

// itemsFromDomain stamps every item of the aggregate with orderID and its line number.
func itemsFromDomain(orderID int64, items []order.Item) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:    orderID,
			LineNo:     i,
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}
	return dtos
}

// toDomain rebuilds an aggregate from its header and item rows.
// Unknown status codes decode to order.Cancelled.
func toDomain(header OrderDTO, itemDTOs []OrderItemDTO) *order.Order {
	items := make([]order.Item, 0, len(itemDTOs))
	for _, dto := range itemDTOs {
		items = append(items, order.RestoreItem(dto.ProductID, dto.Quantity, dto.UnitPrice, dto.TotalPrice))
	}

	return order.RestoreOrder(
		header.ID,
		header.CustomerID,
		order.StatusFromCode(header.Status),
		header.Address,
		header.Price,
		items,
	)
}

// groupItemsByOrder indexes item rows by order_id, preserving the order of the rows
// as selected.
func groupItemsByOrder(items []OrderItemDTO) map[int64][]OrderItemDTO {
	grouped := make(map[int64][]OrderItemDTO)
	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}
	return grouped
}
