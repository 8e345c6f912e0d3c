package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newOfferFixture() (*OfferService, *memOffers, *memAudits, *fakeBroker, *domain.Cook) {
	cook := &domain.Cook{ID: primitive.NewObjectID(), UserID: "cook-1", CountryCode: "SA"}
	offers := newMemOffers()
	audits := &memAudits{}
	broker := &fakeBroker{}

	svc := NewOfferService(
		offers,
		newMemCooks(cook),
		audits,
		broker,
		snapshotTx{offers: offers},
		prepready.NewCalculator(func() time.Time { return receivedAt }),
		zap.NewNop().Sugar(),
	)
	return svc, offers, audits, broker, cook
}

func TestCreateOffer(t *testing.T) {
	svc, _, _, _, cook := newOfferFixture()

	base := CreateOfferInput{
		AdminDishID: "D1",
		Name:        "Kabsa",
		Price:       40,
		Stock:       3,
		PortionSize: "medium",
		Fulfillment: domain.Fulfillment{Pickup: true},
	}

	offer, err := svc.CreateOffer(context.Background(), "cook-1", base)
	if err != nil {
		t.Fatalf("CreateOffer() error = %v", err)
	}
	if offer.CookID != cook.ID || offer.Status != domain.OfferStatusAvailable {
		t.Errorf("unexpected offer: %+v", offer)
	}
	if offer.PrepReadyConfig != prepready.DefaultConfig() {
		t.Errorf("expected default config, got %+v", offer.PrepReadyConfig)
	}

	tests := []struct {
		name   string
		userID string
		mutate func(in *CreateOfferInput)
		want   error
	}{
		{
			name:   "invalid range",
			userID: "cook-1",
			mutate: func(in *CreateOfferInput) {
				in.PrepReadyConfig = &prepready.Config{OptionType: prepready.OptionRange, PrepTimeMinMinutes: 30, PrepTimeMaxMinutes: 30}
			},
			want: prepready.ErrInvalidRange,
		},
		{
			name:   "unknown option type",
			userID: "cook-1",
			mutate: func(in *CreateOfferInput) {
				in.PrepReadyConfig = &prepready.Config{OptionType: "asap"}
			},
			want: prepready.ErrInvalidConfig,
		},
		{
			name:   "no fulfillment",
			userID: "cook-1",
			mutate: func(in *CreateOfferInput) { in.Fulfillment = domain.Fulfillment{} },
			want:   ErrNoFulfillment,
		},
		{
			name:   "bad portion size",
			userID: "cook-1",
			mutate: func(in *CreateOfferInput) { in.PortionSize = "huge" },
			want:   ErrInvalidPortionSize,
		},
		{
			name:   "not a cook",
			userID: "customer-1",
			mutate: func(in *CreateOfferInput) {},
			want:   ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			if _, err := svc.CreateOffer(context.Background(), tt.userID, in); !errors.Is(err, tt.want) {
				t.Errorf("CreateOffer() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateOfferStatusQueuesEvent(t *testing.T) {
	svc, offers, audits, broker, cook := newOfferFixture()
	offer := &domain.DishOffer{ID: primitive.NewObjectID(), CookID: cook.ID, Status: domain.OfferStatusAvailable}
	offers.offers[offer.ID] = offer

	if err := svc.UpdateOfferStatus(context.Background(), offer.ID, "sold", "", "cook-1"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.UpdateOfferStatus(context.Background(), offer.ID, domain.OfferStatusNotAvailable, "", "someone-else"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	if err := svc.UpdateOfferStatus(context.Background(), offer.ID, domain.OfferStatusNotAvailable, "sold out", "cook-1"); err != nil {
		t.Fatalf("UpdateOfferStatus() error = %v", err)
	}
	if offer.Status != domain.OfferStatusAvailable {
		t.Errorf("status changed before the worker ran")
	}

	var event domain.OfferStatusEvent
	if q := broker.decode(t, 0, &event); q != queue.QueueOfferStatus {
		t.Errorf("published to %s", q)
	}
	if event.OldStatus != domain.OfferStatusAvailable || event.NewStatus != domain.OfferStatusNotAvailable {
		t.Errorf("unexpected event: %+v", event)
	}

	if err := svc.ProcessOfferStatusEvent(context.Background(), event); err != nil {
		t.Fatalf("ProcessOfferStatusEvent() error = %v", err)
	}
	if offers.offers[offer.ID].Status != domain.OfferStatusNotAvailable {
		t.Errorf("status not applied")
	}

	history, err := svc.GetOfferAudit(context.Background(), offer.ID, "cook-1", 10)
	if err != nil {
		t.Fatalf("GetOfferAudit() error = %v", err)
	}
	if len(history) != 1 || history[0].Reason != "sold out" || len(audits.audits) != 1 {
		t.Errorf("unexpected audit history: %+v", history)
	}
}

func TestProcessOfferStatusEventRollsBack(t *testing.T) {
	svc, offers, audits, _, cook := newOfferFixture()
	offer := &domain.DishOffer{ID: primitive.NewObjectID(), CookID: cook.ID, Status: domain.OfferStatusAvailable}
	offers.offers[offer.ID] = offer
	audits.err = errors.New("write failed")

	err := svc.ProcessOfferStatusEvent(context.Background(), domain.OfferStatusEvent{
		OfferID:   offer.ID.Hex(),
		NewStatus: domain.OfferStatusNotAvailable,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if offers.offers[offer.ID].Status != domain.OfferStatusAvailable {
		t.Errorf("status change was not rolled back")
	}
}

func TestPreviewReadyTime(t *testing.T) {
	svc, offers, _, _, cook := newOfferFixture()

	good := &domain.DishOffer{
		ID: primitive.NewObjectID(), CookID: cook.ID, Name: "a", Status: domain.OfferStatusAvailable,
		PrepReadyConfig: prepready.Config{OptionType: prepready.OptionCutoff, CutoffTime: "14:00", BeforeCutoffReadyTime: "15:30"},
	}
	broken := &domain.DishOffer{
		ID: primitive.NewObjectID(), CookID: cook.ID, Name: "b", Status: domain.OfferStatusAvailable,
		PrepReadyConfig: prepready.Config{OptionType: prepready.OptionCutoff, CutoffTime: "14:00"},
	}
	offers.offers[good.ID] = good
	offers.offers[broken.ID] = broken

	preview, err := svc.PreviewReadyTime(context.Background(), good.ID, prepready.English)
	if err != nil {
		t.Fatalf("PreviewReadyTime() error = %v", err)
	}
	if !preview.Available || preview.Text != "Ready today at 15:30" {
		t.Errorf("unexpected preview: %+v", preview)
	}

	preview, err = svc.PreviewReadyTime(context.Background(), broken.ID, prepready.Arabic)
	if err != nil {
		t.Fatalf("PreviewReadyTime() error = %v", err)
	}
	if preview.Available || preview.Text != prepready.UnavailableTextAr {
		t.Errorf("expected placeholder, got %+v", preview)
	}

	listings, err := svc.ListCookOffers(context.Background(), cook.ID, prepready.English)
	if err != nil {
		t.Fatalf("ListCookOffers() error = %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].PrepSummary != "Ready by 15:30 (orders before 14:00)" {
		t.Errorf("unexpected summary: %q", listings[0].PrepSummary)
	}
	if listings[1].PrepSummary != prepready.UnavailableText {
		t.Errorf("expected placeholder summary, got %q", listings[1].PrepSummary)
	}

	stateless := svc.PreviewConfig(prepready.Config{OptionType: prepready.OptionFixed, PrepTimeMinutes: 90}, "eg", prepready.English)
	if stateless.Timezone != "Africa/Cairo" || stateless.Text != "90 mins" {
		t.Errorf("unexpected stateless preview: %+v", stateless)
	}
}
