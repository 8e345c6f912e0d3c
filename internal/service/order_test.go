package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// 12:00 in Riyadh, 11:00 in Cairo
var receivedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type orderFixture struct {
	service  *OrderService
	offers   *memOffers
	orders   *memOrders
	broker   *fakeBroker
	riyadh   *domain.Cook
	cairo    *domain.Cook
	fixed    *domain.DishOffer
	cutoff   *domain.DishOffer
	rangeOff *domain.DishOffer
}

func newOrderFixture() *orderFixture {
	riyadh := &domain.Cook{ID: primitive.NewObjectID(), UserID: "cook-sa", CountryCode: "SA"}
	cairo := &domain.Cook{ID: primitive.NewObjectID(), UserID: "cook-eg", CountryCode: "EG"}

	fixed := &domain.DishOffer{
		ID: primitive.NewObjectID(), CookID: riyadh.ID, Name: "Kabsa", Price: 40, Stock: 5,
		Status:          domain.OfferStatusAvailable,
		PrepReadyConfig: prepready.Config{OptionType: prepready.OptionFixed, PrepTimeMinutes: 30},
	}
	cutoff := &domain.DishOffer{
		ID: primitive.NewObjectID(), CookID: riyadh.ID, Name: "Mandi", Price: 60, Stock: 2,
		Status: domain.OfferStatusAvailable,
		PrepReadyConfig: prepready.Config{
			OptionType:            prepready.OptionCutoff,
			CutoffTime:            "11:00",
			BeforeCutoffReadyTime: "13:00",
		},
	}
	rangeOff := &domain.DishOffer{
		ID: primitive.NewObjectID(), CookID: cairo.ID, Name: "Koshari", Price: 25, Stock: 10,
		Status:          domain.OfferStatusAvailable,
		PrepReadyConfig: prepready.Config{OptionType: prepready.OptionRange, PrepTimeMinMinutes: 20, PrepTimeMaxMinutes: 40},
	}

	offers := newMemOffers(fixed, cutoff, rangeOff)
	orders := newMemOrders()
	broker := &fakeBroker{}

	svc := NewOrderService(
		orders,
		offers,
		newMemCooks(riyadh, cairo),
		broker,
		snapshotTx{offers: offers, orders: orders},
		prepready.NewCalculator(func() time.Time { return receivedAt }),
		zap.NewNop().Sugar(),
	)

	return &orderFixture{
		service: svc, offers: offers, orders: orders, broker: broker,
		riyadh: riyadh, cairo: cairo, fixed: fixed, cutoff: cutoff, rangeOff: rangeOff,
	}
}

func TestPlaceOrderStampsReadyTimes(t *testing.T) {
	f := newOrderFixture()

	order, err := f.service.PlaceOrder(context.Background(), "customer-1", PlaceOrderInput{
		Items: []CartItem{
			{OfferID: f.fixed.ID, Quantity: 2},
			{OfferID: f.rangeOff.ID, Quantity: 1},
			{OfferID: f.cutoff.ID, Quantity: 1},
		},
		TimingPreferences: map[primitive.ObjectID]string{f.riyadh.ID: domain.TimingCombined},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	if !order.CreatedAt.Equal(receivedAt) {
		t.Errorf("created_at = %v, want receipt time %v", order.CreatedAt, receivedAt)
	}
	if order.OrderNumber == "" || order.Status != domain.OrderStatusPending {
		t.Errorf("unexpected order header: %+v", order)
	}
	if len(order.SubOrders) != 2 {
		t.Fatalf("expected 2 sub-orders, got %d", len(order.SubOrders))
	}

	riyadhSub := order.SubOrders[0]
	if riyadhSub.CookID != f.riyadh.ID || len(riyadhSub.Items) != 2 {
		t.Fatalf("unexpected first sub-order: %+v", riyadhSub)
	}

	kabsa := riyadhSub.Items[0].Ready
	if kabsa.ReadyAt != "2025-03-10T09:30:00Z" || kabsa.PrepTimeMinutes != 30 || kabsa.DisplayText != "30 mins" {
		t.Errorf("unexpected fixed ready time: %+v", kabsa)
	}
	if kabsa.Timezone != "Asia/Riyadh" || kabsa.DisplayTextAr != "30 دقيقة" {
		t.Errorf("unexpected fixed ready time locale: %+v", kabsa)
	}

	mandi := riyadhSub.Items[1].Ready
	if mandi.ReadyAt != "2025-03-11T10:00:00Z" || mandi.DisplayText != "Ready tomorrow at 13:00" {
		t.Errorf("unexpected cutoff ready time: %+v", mandi)
	}
	if mandi.PrepTimeMinutes != 25*60 {
		t.Errorf("cutoff prep minutes = %d, want %d", mandi.PrepTimeMinutes, 25*60)
	}

	if riyadhSub.TimingPreference != domain.TimingCombined || riyadhSub.CombinedReadyAt != "2025-03-11T10:00:00Z" {
		t.Errorf("unexpected combined timing: %q %q", riyadhSub.TimingPreference, riyadhSub.CombinedReadyAt)
	}
	if riyadhSub.Subtotal != 140 {
		t.Errorf("subtotal = %v, want 140", riyadhSub.Subtotal)
	}

	cairoSub := order.SubOrders[1]
	koshari := cairoSub.Items[0].Ready
	if koshari.ReadyAt != "2025-03-10T09:40:00Z" || koshari.ReadyAtMin != "2025-03-10T09:20:00Z" {
		t.Errorf("unexpected range ready time: %+v", koshari)
	}
	if koshari.DisplayText != "20-40 mins" || koshari.Timezone != "Africa/Cairo" {
		t.Errorf("unexpected range display: %+v", koshari)
	}
	if cairoSub.TimingPreference != domain.TimingSeparate || cairoSub.CombinedReadyAt != "" {
		t.Errorf("expected separate timing, got %+v", cairoSub)
	}

	if order.TotalAmount != 165 {
		t.Errorf("total = %v, want 165", order.TotalAmount)
	}

	if f.offers.offers[f.fixed.ID].Stock != 3 || f.offers.offers[f.cutoff.ID].Stock != 1 {
		t.Errorf("stock not decremented")
	}

	var event domain.OrderPlacedEvent
	if q := f.broker.decode(t, 0, &event); q != queue.QueueOrderPlaced {
		t.Errorf("published to %s, want %s", q, queue.QueueOrderPlaced)
	}
	if event.OrderNumber != order.OrderNumber || len(event.Cooks) != 2 {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.Cooks[0].ItemCount != 3 || event.Cooks[0].ReadyText != "Ready tomorrow at 13:00" {
		t.Errorf("unexpected cook brief: %+v", event.Cooks[0])
	}
}

func TestPlaceOrderRejectsInvalidConfig(t *testing.T) {
	f := newOrderFixture()
	f.offers.offers[f.cutoff.ID].PrepReadyConfig.CutoffTime = "25:00"

	_, err := f.service.PlaceOrder(context.Background(), "customer-1", PlaceOrderInput{
		Items: []CartItem{
			{OfferID: f.fixed.ID, Quantity: 1},
			{OfferID: f.cutoff.ID, Quantity: 1},
		},
	})
	if !errors.Is(err, prepready.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	if len(f.orders.orders) != 0 {
		t.Errorf("order persisted despite invalid config")
	}
	if f.offers.offers[f.fixed.ID].Stock != 5 {
		t.Errorf("stock changed despite invalid config")
	}
	if f.broker.count() != 0 {
		t.Errorf("event published despite invalid config")
	}
}

func TestPlaceOrderRejectsBadCarts(t *testing.T) {
	f := newOrderFixture()
	deleted := &domain.DishOffer{ID: primitive.NewObjectID(), CookID: f.riyadh.ID, Stock: 5, Status: domain.OfferStatusDeleted}
	orphan := &domain.DishOffer{ID: primitive.NewObjectID(), CookID: primitive.NewObjectID(), Stock: 5, Status: domain.OfferStatusAvailable}
	f.offers.offers[deleted.ID] = deleted
	f.offers.offers[orphan.ID] = orphan

	tests := []struct {
		name  string
		items []CartItem
		want  error
	}{
		{name: "empty cart", items: nil, want: ErrEmptyCart},
		{name: "zero quantity", items: []CartItem{{OfferID: f.fixed.ID, Quantity: 0}}, want: ErrInvalidQuantity},
		{name: "unknown offer", items: []CartItem{{OfferID: primitive.NewObjectID(), Quantity: 1}}, want: ErrOfferUnavailable},
		{name: "deleted offer", items: []CartItem{{OfferID: deleted.ID, Quantity: 1}}, want: ErrOfferUnavailable},
		{name: "missing cook", items: []CartItem{{OfferID: orphan.ID, Quantity: 1}}, want: ErrOfferUnavailable},
		{name: "not enough stock", items: []CartItem{{OfferID: f.cutoff.ID, Quantity: 3}}, want: ErrOfferUnavailable},
		{
			name:  "repeated offer exceeds stock",
			items: []CartItem{{OfferID: f.cutoff.ID, Quantity: 2}, {OfferID: f.cutoff.ID, Quantity: 1}},
			want:  ErrOfferUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.PlaceOrder(context.Background(), "customer-1", PlaceOrderInput{Items: tt.items})
			if !errors.Is(err, tt.want) {
				t.Errorf("PlaceOrder() error = %v, want %v", err, tt.want)
			}
		})
	}

	if len(f.orders.orders) != 0 {
		t.Errorf("expected no orders, got %d", len(f.orders.orders))
	}
}

func TestPlaceOrderSurvivesPublishFailure(t *testing.T) {
	f := newOrderFixture()
	f.broker.publishFn = func(string) error { return errors.New("broker down") }

	order, err := f.service.PlaceOrder(context.Background(), "customer-1", PlaceOrderInput{
		Items: []CartItem{{OfferID: f.fixed.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if _, ok := f.orders.orders[order.ID]; !ok {
		t.Errorf("order not persisted")
	}
}

func TestGetOrderChecksCustomer(t *testing.T) {
	f := newOrderFixture()

	order, err := f.service.PlaceOrder(context.Background(), "customer-1", PlaceOrderInput{
		Items: []CartItem{{OfferID: f.fixed.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	if _, err := f.service.GetOrder(context.Background(), order.ID, "customer-1"); err != nil {
		t.Errorf("owner GetOrder() error = %v", err)
	}
	if _, err := f.service.GetOrder(context.Background(), order.ID, "customer-2"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.service.GetOrder(context.Background(), primitive.NewObjectID(), "customer-1"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
