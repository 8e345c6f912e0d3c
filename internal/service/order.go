package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/repo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo repo.OrderRepository
	offerRepo repo.DishOfferRepository
	cookRepo  repo.CookRepository
	broker    queue.Broker
	tx        repo.Transactor
	calc      *prepready.Calculator
	logger    *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	offerRepo repo.DishOfferRepository,
	cookRepo repo.CookRepository,
	broker queue.Broker,
	tx repo.Transactor,
	calc *prepready.Calculator,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		offerRepo: offerRepo,
		cookRepo:  cookRepo,
		broker:    broker,
		tx:        tx,
		calc:      calc,
		logger:    logger,
	}
}

type CartItem struct {
	OfferID  primitive.ObjectID
	Quantity int
}

// PlaceOrderInput carries no ready times. They are always computed here.
type PlaceOrderInput struct {
	Items []CartItem
	// TimingPreferences maps a cook ID to separate or combined. Missing cooks get separate.
	TimingPreferences map[primitive.ObjectID]string
}

// subOrderBuilder collects one cook's items while the order is assembled.
type subOrderBuilder struct {
	cook     *domain.Cook
	sub      domain.SubOrder
	latest   time.Time
	latestEn string
	latestAr string
}

func (b *subOrderBuilder) add(item domain.OrderItem, res prepready.Result) {
	b.sub.Items = append(b.sub.Items, item)
	b.sub.Subtotal += item.UnitPrice * float64(item.Quantity)
	if res.ReadyAt.After(b.latest) {
		b.latest = res.ReadyAt
		b.latestEn = item.Ready.DisplayText
		b.latestAr = item.Ready.DisplayTextAr
	}
}

// PlaceOrder stamps every item with the ready time computed at receipt time.
// An offer with a broken prep config rejects the whole order and nothing is stored.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID string, in PlaceOrderInput) (*domain.Order, error) {
	items, err := mergeCart(in.Items)
	if err != nil {
		return nil, err
	}

	receivedAt := s.calc.Now()

	builders := map[primitive.ObjectID]*subOrderBuilder{}
	var cookOrder []primitive.ObjectID

	for _, ci := range items {
		offer, err := s.offerRepo.GetByID(ctx, ci.OfferID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrOfferUnavailable, ci.OfferID.Hex())
			}
			return nil, fmt.Errorf("failed to get offer: %w", err)
		}
		if !offer.Orderable(ci.Quantity) {
			return nil, fmt.Errorf("%w: %s", ErrOfferUnavailable, ci.OfferID.Hex())
		}

		b, ok := builders[offer.CookID]
		if !ok {
			cook, err := s.cookRepo.GetByID(ctx, offer.CookID)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return nil, fmt.Errorf("%w: %s", ErrOfferUnavailable, ci.OfferID.Hex())
				}
				return nil, fmt.Errorf("failed to get cook: %w", err)
			}
			b = &subOrderBuilder{
				cook: cook,
				sub: domain.SubOrder{
					CookID:           cook.ID,
					TimingPreference: timingFor(in.TimingPreferences, cook.ID),
				},
			}
			builders[offer.CookID] = b
			cookOrder = append(cookOrder, offer.CookID)
		}

		res, err := prepready.Compute(offer.PrepReadyConfig, b.cook.Timezone(), receivedAt)
		if err != nil {
			s.logger.Warnw("rejecting order with invalid prep config", "offer_id", offer.ID.Hex(), "error", err)
			return nil, fmt.Errorf("offer %s: %w", offer.ID.Hex(), err)
		}

		b.add(domain.OrderItem{
			OfferID:   offer.ID,
			Name:      offer.Name,
			Quantity:  ci.Quantity,
			UnitPrice: offer.Price,
			Ready:     domain.NewReadyTime(res),
		}, res)
	}

	order := &domain.Order{
		OrderNumber: uuid.NewString(),
		CustomerID:  customerID,
		Status:      domain.OrderStatusPending,
		CreatedAt:   receivedAt.UTC(),
	}

	briefs := make([]domain.CookOrderBrief, 0, len(cookOrder))
	for _, cookID := range cookOrder {
		b := builders[cookID]
		if b.sub.TimingPreference == domain.TimingCombined {
			b.sub.CombinedReadyAt = domain.FormatInstant(b.latest)
		}
		order.SubOrders = append(order.SubOrders, b.sub)
		order.TotalAmount += b.sub.Subtotal

		itemCount := 0
		for _, item := range b.sub.Items {
			itemCount += item.Quantity
		}
		briefs = append(briefs, domain.CookOrderBrief{
			CookID:        cookID.Hex(),
			ItemCount:     itemCount,
			ReadyText:     b.latestEn,
			ReadyTextAr:   b.latestAr,
			LatestReadyAt: domain.FormatInstant(b.latest),
		})
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for _, ci := range items {
			if err := s.offerRepo.DecrementStock(ctx, ci.OfferID, ci.Quantity); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrOfferUnavailable, ci.OfferID.Hex())
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("order placed", "order_id", order.ID.Hex(), "order_number", order.OrderNumber, "cooks", len(order.SubOrders))

	event := domain.OrderPlacedEvent{
		EventID:     uuid.NewString(),
		EventType:   domain.EventOrderPlaced,
		OrderID:     order.ID.Hex(),
		OrderNumber: order.OrderNumber,
		CustomerID:  customerID,
		Cooks:       briefs,
		Timestamp:   receivedAt.UTC(),
	}
	if err := queue.PublishJSON(ctx, s.broker, queue.QueueOrderPlaced, event); err != nil {
		s.logger.Errorw("failed to publish order placed event", "order_id", order.ID.Hex(), "error", err)
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID primitive.ObjectID, customerID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.CustomerID != customerID {
		return nil, fmt.Errorf("%w: order %s", ErrForbidden, orderID.Hex())
	}

	return order, nil
}

// mergeCart sums quantities of repeated offers and keeps first-seen order.
func mergeCart(items []CartItem) ([]CartItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	merged := make([]CartItem, 0, len(items))
	index := map[primitive.ObjectID]int{}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: offer %s", ErrInvalidQuantity, item.OfferID.Hex())
		}
		if i, ok := index[item.OfferID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.OfferID] = len(merged)
		merged = append(merged, item)
	}

	return merged, nil
}

func timingFor(prefs map[primitive.ObjectID]string, cookID primitive.ObjectID) string {
	if prefs[cookID] == domain.TimingCombined {
		return domain.TimingCombined
	}
	return domain.TimingSeparate
}
