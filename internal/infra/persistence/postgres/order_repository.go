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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order record with its item snapshots. GORM
// inserts the order row and its order_items rows together.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID, items included.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUser retrieves all orders placed by the given user, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindAllOrders retrieves every order, newest first. Admin use only.
func (repo *orderRepository) FindAllOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// SaveOrder persists status mutations of an existing order. Item snapshots
// are immutable once written, so only the status columns are touched.
func (repo *orderRepository) SaveOrder(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":       string(order.Status),
			"delivered_at": order.DeliveredAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		Kind:       entity.Kind(data.Kind),
		Price:      data.Price,
		TotalPrice: data.TotalPrice,
		ShippingAddress: entity.ShippingAddress{
			Address:    data.ShippingAddress,
			City:       data.ShippingCity,
			PostalCode: data.ShippingPostalCode,
			Country:    data.ShippingCountry,
		},
		PaymentInfo: entity.PaymentInfo{
			ID:     data.PaymentID,
			Status: data.PaymentStatus,
		},
		PaidAt:       data.PaidAt,
		Status:       entity.Status(data.Status),
		DeliveredAt:  data.DeliveredAt,
		DeliveryDate: data.DeliveryDate,
		CreatedAt:    data.CreatedAt,
	}
	if data.ProductID != nil {
		order.ProductID = *data.ProductID
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Image:     itemM.Image,
			Price:     itemM.Price,
			Quantity:  itemM.Quantity,
		})
	}
	if len(items) != 0 {
		order.Items = items
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Kind:               string(data.Kind),
		Price:              data.Price,
		TotalPrice:         data.TotalPrice,
		ShippingAddress:    data.ShippingAddress.Address,
		ShippingCity:       data.ShippingAddress.City,
		ShippingPostalCode: data.ShippingAddress.PostalCode,
		ShippingCountry:    data.ShippingAddress.Country,
		PaymentID:          data.PaymentInfo.ID,
		PaymentStatus:      data.PaymentInfo.Status,
		PaidAt:             data.PaidAt,
		Status:             string(data.Status),
		DeliveredAt:        data.DeliveredAt,
		DeliveryDate:       data.DeliveryDate,
		CreatedAt:          data.CreatedAt,
	}
	if data.Kind == entity.KindLegacy {
		productID := data.ProductID
		orderM.ProductID = &productID
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, &model.OrderItemModel{
			OrderID:   data.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return orderM
}
