package service

import (
	"context"
	"fmt"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type NotificationService struct {
	notificationRepo repo.NotificationRepository
	cookRepo         repo.CookRepository
	logger           *zap.SugaredLogger
}

func NewNotificationService(
	notificationRepo repo.NotificationRepository,
	cookRepo repo.CookRepository,
	logger *zap.SugaredLogger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		cookRepo:         cookRepo,
		logger:           logger,
	}
}

// ProcessOrderPlaced stores one notification per cook in the order.
// Redelivered events are skipped by the store.
func (s *NotificationService) ProcessOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error {
	notifications := make([]*domain.Notification, 0, len(event.Cooks))

	for _, brief := range event.Cooks {
		cookID, err := primitive.ObjectIDFromHex(brief.CookID)
		if err != nil {
			s.logger.Warnw("skipping notification for invalid cook ID", "cook_id", brief.CookID, "order_id", event.OrderID)
			continue
		}

		notifications = append(notifications, newOrderNotification(cookID, event, brief))
	}

	if err := s.notificationRepo.CreateMany(ctx, notifications); err != nil {
		return fmt.Errorf("failed to store notifications: %w", err)
	}

	s.logger.Infow("order notifications stored", "order_id", event.OrderID, "count", len(notifications))

	return nil
}

func newOrderNotification(cookID primitive.ObjectID, event domain.OrderPlacedEvent, brief domain.CookOrderBrief) *domain.Notification {
	return &domain.Notification{
		CookID:  cookID,
		OrderID: event.OrderID,
		EventID: event.EventID,
		Title:   fmt.Sprintf("New order %s", event.OrderNumber),
		TitleAr: fmt.Sprintf("طلب جديد %s", event.OrderNumber),
		Body:    fmt.Sprintf("%d item(s) to prepare. %s", brief.ItemCount, brief.ReadyText),
		BodyAr:  fmt.Sprintf("عدد الأصناف: %d. %s", brief.ItemCount, brief.ReadyTextAr),
	}
}

func (s *NotificationService) ListCookNotifications(ctx context.Context, cookID primitive.ObjectID, userID string, limit int) ([]domain.Notification, error) {
	if _, err := ownedCook(ctx, s.cookRepo, cookID, userID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListByCook(ctx, cookID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}
