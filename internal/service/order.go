package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"
	"ledgerapi/internal/storage"
)

var (
	ErrCustomerRequired = errors.New("customer name is required")
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNameRequired = errors.New("item name is required")
	ErrNegativePrice    = errors.New("unit price cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// OrderDetail is an order together with its line items.
type OrderDetail struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

// OrderListResult is the service-level DTO for paginated orders.
type OrderListResult struct {
	Items []model.Order `json:"data"`
	Total int           `json:"total"`
}

// ItemInput carries the fields needed to add a line item.
type ItemInput struct {
	Name      string
	UnitPrice int64
	Quantity  int
}

// OrderItemResult is the stored line item plus the order's new running total.
type OrderItemResult struct {
	Item  model.OrderItem `json:"item"`
	Total int64           `json:"total"`
}

// OrderArchiveResult describes an archived order summary in object storage.
type OrderArchiveResult struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// OrderService defines the use cases for order aggregation.
type OrderService interface {
	// Create opens an empty order for a customer.
	Create(ctx context.Context, customerName string) (*model.Order, error)

	// Get returns an order with its line items.
	Get(ctx context.Context, id string) (*OrderDetail, error)

	// List returns orders using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*OrderListResult, error)

	// AddItem appends a line item and returns it with the new running total.
	AddItem(ctx context.Context, orderID string, in ItemInput) (*OrderItemResult, error)

	// Summary renders the order's text summary.
	Summary(ctx context.Context, orderID string) (string, error)

	// Archive uploads the rendered summary to object storage and dispatches a
	// confirmation notification.
	Archive(ctx context.Context, orderID string) (*OrderArchiveResult, error)
}

// orderService is a concrete implementation of OrderService.
type orderService struct {
	repo          repository.OrderRepository
	store         storage.Storage
	notifications NotificationService
	confirmChan   string
}

// NewOrderService constructs a new OrderService.
// notifications may be nil to disable archive confirmations.
func NewOrderService(repo repository.OrderRepository, store storage.Storage, notifications NotificationService, confirmChannel string) OrderService {
	if confirmChannel == "" {
		confirmChannel = model.ChannelPush
	}
	return &orderService{
		repo:          repo,
		store:         store,
		notifications: notifications,
		confirmChan:   confirmChannel,
	}
}

func (s *orderService) Create(ctx context.Context, customerName string) (*model.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrCustomerRequired
	}
	o := &model.Order{
		ID:           uuid.New().String(),
		CustomerName: customerName,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, o)
}

func (s *orderService) Get(ctx context.Context, id string) (*OrderDetail, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// List returns paginated orders without exposing repository types.
func (s *orderService) List(ctx context.Context, limit, offset int) (*OrderListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &OrderListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *orderService) AddItem(ctx context.Context, orderID string, in ItemInput) (*OrderItemResult, error) {
	if orderID == "" {
		return nil, ErrIDRequired
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}
	if in.UnitPrice < 0 {
		return nil, ErrNegativePrice
	}
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	item := &model.OrderItem{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Name:      name,
		UnitPrice: in.UnitPrice,
		Quantity:  qty,
		CreatedAt: time.Now().UTC(),
	}
	stored, total, err := s.repo.AddItem(ctx, item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &OrderItemResult{Item: *stored, Total: total}, nil
}

func (s *orderService) Summary(ctx context.Context, orderID string) (string, error) {
	detail, err := s.Get(ctx, orderID)
	if err != nil {
		return "", err
	}
	return RenderSummary(&detail.Order, detail.Items), nil
}

func (s *orderService) Archive(ctx context.Context, orderID string) (*OrderArchiveResult, error) {
	detail, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	text := RenderSummary(&detail.Order, detail.Items)
	key := fmt.Sprintf("orders/%s/summary-%s.txt", detail.Order.ID, uuid.New().String())

	objInfo, err := s.store.Put(ctx, key, strings.NewReader(text), storage.PutObjectOptions{
		Size:        int64(len(text)),
		ContentType: "text/plain; charset=utf-8",
		Metadata: map[string]string{
			"order-id": detail.Order.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	s.sendConfirmation(ctx, &detail.Order)
	return &OrderArchiveResult{Key: objInfo.Key, Size: objInfo.Size}, nil
}

// sendConfirmation dispatches an archive confirmation. Confirmation failure
// never fails the archive.
func (s *orderService) sendConfirmation(ctx context.Context, o *model.Order) {
	if s.notifications == nil {
		return
	}
	body := fmt.Sprintf("Order %s archived, total %d", o.ID, o.Total)
	if _, err := s.notifications.Send(ctx, s.confirmChan, o.CustomerName, "Order confirmation", body); err != nil {
		log.Printf("confirmation dispatch failed for order %s: %v", o.ID, err)
	}
}

// RenderSummary produces the plain-text summary of an order: one numbered line
// per item and the running total last.
func RenderSummary(o *model.Order, items []model.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s x%d @ %d = %d\n", i+1, it.Name, it.Quantity, it.UnitPrice, it.LineTotal())
	}
	fmt.Fprintf(&b, "Total: %d\n", o.Total)
	return b.String()
}
