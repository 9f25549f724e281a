package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stockAdjustmentRepository implements the repository.StockAdjustmentRepository interface.
type stockAdjustmentRepository struct {
	db *gorm.DB
}

// NewStockAdjustmentRepository is the constructor for stockAdjustmentRepository.
func NewStockAdjustmentRepository(db *gorm.DB) repository.StockAdjustmentRepository {
	return &stockAdjustmentRepository{
		db: db,
	}
}

// RecordAdjustment persists the marker row for one order line. The composite
// primary key on (order_id, product_id) rejects a second insert for the same
// pair, which is what makes reconciliation retries idempotent.
func (repo *stockAdjustmentRepository) RecordAdjustment(ctx context.Context, adjustment *entity.StockAdjustment) error {
	adjustmentM := fromStockAdjustmentDomain(adjustment)

	if err := repo.db.WithContext(ctx).Create(adjustmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAdjustmentAlreadyApplied
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record stock adjustment")
	}

	return nil
}

// FindAdjustmentsByOrder retrieves the adjustments recorded for an order.
func (repo *stockAdjustmentRepository) FindAdjustmentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.StockAdjustment, error) {
	var adjustmentModels []*model.StockAdjustmentModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&adjustmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock adjustments by order")
	}

	adjustments := make([]*entity.StockAdjustment, 0, len(adjustmentModels))
	for _, adjustmentM := range adjustmentModels {
		adjustments = append(adjustments, toStockAdjustmentDomain(adjustmentM))
	}

	return adjustments, nil
}

// --- Mapper Functions ---

// toStockAdjustmentDomain converts a GORM StockAdjustmentModel to a domain StockAdjustment entity.
func toStockAdjustmentDomain(data *model.StockAdjustmentModel) *entity.StockAdjustment {
	if data == nil {
		return nil
	}

	return &entity.StockAdjustment{
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		AppliedAt: data.AppliedAt,
	}
}

// fromStockAdjustmentDomain converts a domain StockAdjustment entity to a GORM StockAdjustmentModel.
func fromStockAdjustmentDomain(data *entity.StockAdjustment) *model.StockAdjustmentModel {
	if data == nil {
		return nil
	}

	return &model.StockAdjustmentModel{
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		AppliedAt: data.AppliedAt,
	}
}
