package orderrepo

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// Tabler is a persisted model with a fixed table name.
type Tabler interface {
	TableName() string
}

// Models lists the persisted models in creation order.
func Models() []Tabler {
	return []Tabler{&OrderDTO{}, &OrderItemDTO{}}
}

// InitSchema creates the order tables that do not exist yet. It is idempotent.
//
// Errors are logged and swallowed: several service instances starting at once
// may race to create the same table, and the loser's failure is harmless. A
// genuinely broken database surfaces on the first query instead.
func InitSchema(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	migrator := db.WithContext(ctx).Migrator()
	for _, model := range Models() {
		if migrator.HasTable(model) {
			continue
		}

		if err := migrator.CreateTable(model); err != nil {
			logger.WarnContext(ctx, "Failed to create table", "table", model.TableName(), "error", err)
			continue
		}

		logger.InfoContext(ctx, "Table created", "table", model.TableName())
	}
}
