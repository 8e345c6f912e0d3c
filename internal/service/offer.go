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
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/timezone"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OfferService struct {
	offerRepo repo.DishOfferRepository
	cookRepo  repo.CookRepository
	auditRepo repo.OfferStatusAuditRepository
	broker    queue.Broker
	tx        repo.Transactor
	calc      *prepready.Calculator
	logger    *zap.SugaredLogger
}

func NewOfferService(
	offerRepo repo.DishOfferRepository,
	cookRepo repo.CookRepository,
	auditRepo repo.OfferStatusAuditRepository,
	broker queue.Broker,
	tx repo.Transactor,
	calc *prepready.Calculator,
	logger *zap.SugaredLogger,
) *OfferService {
	return &OfferService{
		offerRepo: offerRepo,
		cookRepo:  cookRepo,
		auditRepo: auditRepo,
		broker:    broker,
		tx:        tx,
		calc:      calc,
		logger:    logger,
	}
}

type CreateOfferInput struct {
	AdminDishID     string
	Name            string
	Price           float64
	Stock           int
	PortionSize     string
	PrepReadyConfig *prepready.Config
	Fulfillment     domain.Fulfillment
	DeliveryFee     float64
}

// OfferListing is an offer together with its prep summary and the ready time a
// customer would get if they ordered now.
type OfferListing struct {
	domain.DishOffer
	PrepSummary   string            `json:"prep_summary"`
	PrepSummaryAr string            `json:"prep_summary_ar"`
	ReadyPreview  prepready.Preview `json:"ready_preview"`
}

func (s *OfferService) CreateOffer(ctx context.Context, userID string, in CreateOfferInput) (*domain.DishOffer, error) {
	cook, err := cookForUser(ctx, s.cookRepo, userID)
	if err != nil {
		return nil, err
	}

	cfg := prepready.DefaultConfig()
	if in.PrepReadyConfig != nil && !in.PrepReadyConfig.IsZero() {
		cfg = *in.PrepReadyConfig
	}
	if err := prepready.Validate(cfg); err != nil {
		return nil, err
	}
	if !in.Fulfillment.Any() {
		return nil, ErrNoFulfillment
	}
	if !domain.ValidPortionSize(in.PortionSize) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPortionSize, in.PortionSize)
	}

	offer := &domain.DishOffer{
		CookID:          cook.ID,
		AdminDishID:     in.AdminDishID,
		Name:            in.Name,
		Price:           in.Price,
		Stock:           in.Stock,
		PortionSize:     in.PortionSize,
		PrepReadyConfig: cfg,
		Fulfillment:     in.Fulfillment,
		DeliveryFee:     in.DeliveryFee,
		Status:          domain.OfferStatusAvailable,
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	s.logger.Infow("offer created", "offer_id", offer.ID.Hex(), "cook_id", cook.ID.Hex(), "option_type", cfg.OptionType)

	return offer, nil
}

func (s *OfferService) GetOffer(ctx context.Context, offerID primitive.ObjectID) (*domain.DishOffer, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	if offer.Status == domain.OfferStatusDeleted {
		return nil, fmt.Errorf("offer %s: %w", offerID.Hex(), repo.ErrNotFound)
	}

	return offer, nil
}

func (s *OfferService) ListCookOffers(ctx context.Context, cookID primitive.ObjectID, lang prepready.Language) ([]OfferListing, error) {
	cook, err := s.cookRepo.GetByID(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cook: %w", err)
	}

	offers, err := s.offerRepo.ListByCook(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	zone := cook.Timezone()
	now := s.calc.Now()

	listings := make([]OfferListing, 0, len(offers))
	for _, offer := range offers {
		listings = append(listings, OfferListing{
			DishOffer:     offer,
			PrepSummary:   prepready.Describe(offer.PrepReadyConfig, prepready.English),
			PrepSummaryAr: prepready.Describe(offer.PrepReadyConfig, prepready.Arabic),
			ReadyPreview:  prepready.NewPreview(offer.PrepReadyConfig, zone, now, lang),
		})
	}

	return listings, nil
}

// PreviewReadyTime is advisory only. The order endpoint recomputes at receipt time.
func (s *OfferService) PreviewReadyTime(ctx context.Context, offerID primitive.ObjectID, lang prepready.Language) (prepready.Preview, error) {
	offer, err := s.GetOffer(ctx, offerID)
	if err != nil {
		return prepready.Preview{}, err
	}

	cook, err := s.cookRepo.GetByID(ctx, offer.CookID)
	if err != nil {
		return prepready.Preview{}, fmt.Errorf("failed to get cook: %w", err)
	}

	return prepready.NewPreview(offer.PrepReadyConfig, cook.Timezone(), s.calc.Now(), lang), nil
}

// PreviewConfig evaluates a config that is not stored yet, e.g. while a cook edits an offer.
func (s *OfferService) PreviewConfig(cfg prepready.Config, countryCode string, lang prepready.Language) prepready.Preview {
	return prepready.NewPreview(cfg, timezone.Resolve(countryCode), s.calc.Now(), lang)
}

func validOfferStatus(status string) bool {
	switch status {
	case domain.OfferStatusAvailable, domain.OfferStatusNotAvailable, domain.OfferStatusDeleted:
		return true
	}
	return false
}

// UpdateOfferStatus only queues the change. OfferStatusWorker applies it.
func (s *OfferService) UpdateOfferStatus(ctx context.Context, offerID primitive.ObjectID, newStatus, reason, userID string) error {
	if !validOfferStatus(newStatus) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	offer, err := s.ownedOffer(ctx, offerID, userID)
	if err != nil {
		return err
	}

	event := domain.OfferStatusEvent{
		EventType: domain.EventOfferStatusChanged,
		OfferID:   offerID.Hex(),
		OldStatus: offer.Status,
		NewStatus: newStatus,
		Reason:    reason,
		Timestamp: time.Now(),
		UserID:    userID,
	}

	if err := queue.PublishJSON(ctx, s.broker, queue.QueueOfferStatus, event); err != nil {
		s.logger.Errorw("failed to publish status change event", "offer_id", offerID.Hex(), "error", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	s.logger.Infow("offer status change queued", "offer_id", offerID.Hex(), "old_status", offer.Status, "new_status", newStatus)

	return nil
}

// ProcessOfferStatusEvent writes the new status and its audit record in one transaction.
func (s *OfferService) ProcessOfferStatusEvent(ctx context.Context, event domain.OfferStatusEvent) error {
	offerID, err := primitive.ObjectIDFromHex(event.OfferID)
	if err != nil {
		return fmt.Errorf("invalid offer ID %q: %w", event.OfferID, err)
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.offerRepo.UpdateStatus(ctx, offerID, event.NewStatus); err != nil {
			return fmt.Errorf("failed to update offer status: %w", err)
		}

		audit := &domain.OfferStatusAudit{
			OfferID:   offerID,
			EventType: event.EventType,
			OldStatus: event.OldStatus,
			NewStatus: event.NewStatus,
			Reason:    event.Reason,
			UserID:    event.UserID,
			Timestamp: event.Timestamp,
		}
		if err := s.auditRepo.Create(ctx, audit); err != nil {
			return fmt.Errorf("failed to create audit record: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to apply offer status event", "offer_id", event.OfferID, "error", err)
		return err
	}

	s.logger.Infow("offer status updated", "offer_id", event.OfferID, "new_status", event.NewStatus)

	return nil
}

func (s *OfferService) GetOfferAudit(ctx context.Context, offerID primitive.ObjectID, userID string, limit int) ([]domain.OfferStatusAudit, error) {
	if _, err := s.ownedOffer(ctx, offerID, userID); err != nil {
		return nil, err
	}

	audits, err := s.auditRepo.GetByOfferID(ctx, offerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer audit: %w", err)
	}

	return audits, nil
}

func (s *OfferService) ownedOffer(ctx context.Context, offerID primitive.ObjectID, userID string) (*domain.DishOffer, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	if _, err := ownedCook(ctx, s.cookRepo, offer.CookID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: offer %s has no cook", ErrForbidden, offerID.Hex())
		}
		return nil, err
	}

	return offer, nil
}
