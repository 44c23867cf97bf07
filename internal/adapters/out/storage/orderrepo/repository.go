package orderrepo

import (
	"context"
	"errors"

	"skate/internal/core/domain/model/order"
	"skate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// Every write touches both tables. The repository itself does not open a
// transaction: it must be obtained from a unit of work that did, otherwise a
// failure between the header and the item statements leaves a partial aggregate.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the header, then the items stamped with the generated id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)

	header := headerFromDomain(aggregate)
	if err := db.Create(&header).Error; err != nil {
		return 0, errs.NewStorageFailureError("insert order header", err)
	}

	if err := insertItems(db, header.ID, aggregate.Items()); err != nil {
		return 0, err
	}

	return header.ID, nil
}

// Update overwrites the header fields of order id and replaces all of its items.
func (r *GormOrderRepository) Update(ctx context.Context, id int64, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	header := headerFromDomain(aggregate)
	result := db.Model(&OrderDTO{}).Where("order_id = ?", id).Updates(map[string]any{
		"customer_id":  header.CustomerID,
		"order_status": header.Status,
		"address":      header.Address,
		"price":        header.Price,
	})
	if result.Error != nil {
		return errs.NewStorageFailureError("update order header", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order_id", id)
	}

	if err := deleteItems(db, id); err != nil {
		return err
	}

	return insertItems(db, id, aggregate.Items())
}

// Delete removes the header of order id and all of its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)

	result := db.Where("order_id = ?", id).Delete(&OrderDTO{})
	if result.Error != nil {
		return errs.NewStorageFailureError("delete order header", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order_id", id)
	}

	return deleteItems(db, id)
}

// Get retrieves an order by id together with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	db := r.db.WithContext(ctx)

	var header OrderDTO
	if err := db.Where("order_id = ?", id).Take(&header).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id", id)
		}
		return nil, errs.NewStorageFailureError("select order header", err)
	}

	var items []OrderItemDTO
	if err := db.Where("order_id = ?", id).Order("line_no").Find(&items).Error; err != nil {
		return nil, errs.NewStorageFailureError("select order items", err)
	}

	return toDomain(header, items), nil
}

// FindAllByCustomerID retrieves all orders of a customer.
func (r *GormOrderRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*order.Order, error) {
	byCustomer := func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID)
	}
	return r.list(ctx, "select orders by customer", byCustomer)
}

// ListAll retrieves every order.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	all := func(db *gorm.DB) *gorm.DB {
		return db
	}
	return r.list(ctx, "select orders", all)
}

// DeleteOrphanItems removes item rows whose order_id has no header row.
func (r *GormOrderRepository) DeleteOrphanItems(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)

	headerIDs := db.Session(&gorm.Session{NewDB: true}).Model(&OrderDTO{}).Select("order_id")
	result := db.Where("order_id NOT IN (?)", headerIDs).Delete(&OrderItemDTO{})
	if result.Error != nil {
		return 0, errs.NewStorageFailureError("delete orphan order items", result.Error)
	}

	return result.RowsAffected, nil
}

// list loads the headers matched by filter in order_id order, then their items.
// Items are selected through a subquery over the same filter, so the statement
// size does not grow with the number of headers.
func (r *GormOrderRepository) list(
	ctx context.Context,
	operation string,
	filter func(*gorm.DB) *gorm.DB,
) ([]*order.Order, error) {
	db := r.db.WithContext(ctx)

	var headers []OrderDTO
	if err := db.Model(&OrderDTO{}).Scopes(filter).Order("order_id").Find(&headers).Error; err != nil {
		return nil, errs.NewStorageFailureError(operation, err)
	}

	orders := make([]*order.Order, 0, len(headers))
	if len(headers) == 0 {
		return orders, nil
	}

	headerIDs := db.Session(&gorm.Session{NewDB: true}).Model(&OrderDTO{}).Scopes(filter).Select("order_id")

	var items []OrderItemDTO
	if err := db.Where("order_id IN (?)", headerIDs).Order("order_id, line_no").Find(&items).Error; err != nil {
		return nil, errs.NewStorageFailureError("select order items", err)
	}

	grouped := groupItemsByOrder(items)
	for _, header := range headers {
		orders = append(orders, toDomain(header, grouped[header.ID]))
	}

	return orders, nil
}

func insertItems(db *gorm.DB, orderID int64, items []order.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := itemsFromDomain(orderID, items)
	if err := db.Create(&dtos).Error; err != nil {
		return errs.NewStorageFailureError("insert order items", err)
	}

	return nil
}

func deleteItems(db *gorm.DB, orderID int64) error {
	if err := db.Where("order_id = ?", orderID).Delete(&OrderItemDTO{}).Error; err != nil {
		return errs.NewStorageFailureError("delete order items", err)
	}

	return nil
}
