package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memCooks struct {
	cooks map[primitive.ObjectID]*domain.Cook
}

func newMemCooks(cooks ...*domain.Cook) *memCooks {
	m := &memCooks{cooks: map[primitive.ObjectID]*domain.Cook{}}
	for _, c := range cooks {
		m.cooks[c.ID] = c
	}
	return m
}

func (m *memCooks) Create(ctx context.Context, cook *domain.Cook) error {
	for _, c := range m.cooks {
		if c.UserID == cook.UserID {
			return repo.ErrDuplicate
		}
	}
	if cook.ID.IsZero() {
		cook.ID = primitive.NewObjectID()
	}
	cook.CountryCode = domain.NormalizeCountryCode(cook.CountryCode)
	m.cooks[cook.ID] = cook
	return nil
}

func (m *memCooks) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Cook, error) {
	if c, ok := m.cooks[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("cook: %w", repo.ErrNotFound)
}

func (m *memCooks) GetByUserID(ctx context.Context, userID string) (*domain.Cook, error) {
	for _, c := range m.cooks {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, fmt.Errorf("cook: %w", repo.ErrNotFound)
}

type memOffers struct {
	offers map[primitive.ObjectID]*domain.DishOffer
	// createManyErr makes CreateMany fail
	createManyErr error
}

func newMemOffers(offers ...*domain.DishOffer) *memOffers {
	m := &memOffers{offers: map[primitive.ObjectID]*domain.DishOffer{}}
	for _, o := range offers {
		m.offers[o.ID] = o
	}
	return m
}

func (m *memOffers) Create(ctx context.Context, offer *domain.DishOffer) error {
	if offer.ID.IsZero() {
		offer.ID = primitive.NewObjectID()
	}
	m.offers[offer.ID] = offer
	return nil
}

func (m *memOffers) CreateMany(ctx context.Context, offers []*domain.DishOffer) error {
	if m.createManyErr != nil {
		return m.createManyErr
	}
	for _, o := range offers {
		if err := m.Create(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func (m *memOffers) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DishOffer, error) {
	if o, ok := m.offers[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, fmt.Errorf("dish offer: %w", repo.ErrNotFound)
}

func (m *memOffers) ListByCook(ctx context.Context, cookID primitive.ObjectID) ([]domain.DishOffer, error) {
	offers := []domain.DishOffer{}
	for _, o := range m.offers {
		if o.CookID == cookID && o.Status != domain.OfferStatusDeleted {
			offers = append(offers, *o)
		}
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].Name < offers[j].Name })
	return offers, nil
}

func (m *memOffers) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	o, ok := m.offers[id]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	return nil
}

func (m *memOffers) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	o, ok := m.offers[id]
	if !ok || o.Stock < quantity {
		return repo.ErrNotFound
	}
	o.Stock -= quantity
	return nil
}

type memOrders struct {
	orders map[primitive.ObjectID]*domain.Order
}

func newMemOrders() *memOrders {
	return &memOrders{orders: map[primitive.ObjectID]*domain.Order{}}
}

func (m *memOrders) Create(ctx context.Context, order *domain.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	m.orders[order.ID] = order
	return nil
}

func (m *memOrders) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, repo.ErrNotFound
}

type memAudits struct {
	audits []domain.OfferStatusAudit
	err    error
}

func (m *memAudits) Create(ctx context.Context, audit *domain.OfferStatusAudit) error {
	if m.err != nil {
		return m.err
	}
	m.audits = append(m.audits, *audit)
	return nil
}

func (m *memAudits) GetByOfferID(ctx context.Context, offerID primitive.ObjectID, limit int) ([]domain.OfferStatusAudit, error) {
	out := []domain.OfferStatusAudit{}
	for _, a := range m.audits {
		if a.OfferID == offerID && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

type memTasks struct {
	tasks map[primitive.ObjectID]*domain.OfferImportTask
}

func newMemTasks() *memTasks {
	return &memTasks{tasks: map[primitive.ObjectID]*domain.OfferImportTask{}}
}

func (m *memTasks) Create(ctx context.Context, task *domain.OfferImportTask) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *memTasks) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.OfferImportTask, error) {
	if t, ok := m.tasks[id]; ok {
		return t, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memTasks) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	t, ok := m.tasks[id]
	if !ok {
		return repo.ErrNotFound
	}
	t.Status = status
	if errorMsg != "" {
		t.ErrorMessage = errorMsg
	}
	return nil
}

func (m *memTasks) Complete(ctx context.Context, id primitive.ObjectID, imported int, rowErrors []domain.ImportRowError) error {
	t, ok := m.tasks[id]
	if !ok {
		return repo.ErrNotFound
	}
	t.Status = domain.StatusCompleted
	t.ImportedCount = imported
	t.RowErrors = rowErrors
	return nil
}

func (m *memTasks) IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error {
	t, ok := m.tasks[id]
	if !ok {
		return repo.ErrNotFound
	}
	t.RetryCount++
	return nil
}

type memNotifications struct {
	notifications []*domain.Notification
}

func (m *memNotifications) CreateMany(ctx context.Context, notifications []*domain.Notification) error {
	for _, n := range notifications {
		duplicate := false
		for _, existing := range m.notifications {
			if existing.EventID == n.EventID && existing.CookID == n.CookID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			m.notifications = append(m.notifications, n)
		}
	}
	return nil
}

func (m *memNotifications) ListByCook(ctx context.Context, cookID primitive.ObjectID, limit int) ([]domain.Notification, error) {
	out := []domain.Notification{}
	for _, n := range m.notifications {
		if n.CookID == cookID && len(out) < limit {
			out = append(out, *n)
		}
	}
	return out, nil
}

// snapshotTx emulates a rollback by restoring offers and orders when fn fails.
type snapshotTx struct {
	offers *memOffers
	orders *memOrders
}

func (tx snapshotTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	var savedOffers map[primitive.ObjectID]domain.DishOffer
	if tx.offers != nil {
		savedOffers = map[primitive.ObjectID]domain.DishOffer{}
		for id, o := range tx.offers.offers {
			savedOffers[id] = *o
		}
	}
	var savedOrders map[primitive.ObjectID]*domain.Order
	if tx.orders != nil {
		savedOrders = map[primitive.ObjectID]*domain.Order{}
		for id, o := range tx.orders.orders {
			savedOrders[id] = o
		}
	}

	err := fn(ctx)
	if err == nil {
		return nil
	}

	if tx.offers != nil {
		tx.offers.offers = map[primitive.ObjectID]*domain.DishOffer{}
		for id, o := range savedOffers {
			restored := o
			tx.offers.offers[id] = &restored
		}
	}
	if tx.orders != nil {
		tx.orders.orders = savedOrders
	}
	return err
}

type publishedMessage struct {
	queue string
	body  []byte
}

type fakeBroker struct {
	mu        sync.Mutex
	published []publishedMessage
	publishFn func(queueName string) error
}

func (b *fakeBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	if b.publishFn != nil {
		if err := b.publishFn(queueName); err != nil {
			return err
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, publishedMessage{queue: queueName, body: message})
	return nil
}

func (b *fakeBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return errors.New("not supported")
}

func (b *fakeBroker) Close() error { return nil }

func (b *fakeBroker) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.published)
}

func (b *fakeBroker) decode(t *testing.T, i int, v any) string {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	if i >= len(b.published) {
		t.Fatalf("expected at least %d published messages, got %d", i+1, len(b.published))
	}
	if err := json.Unmarshal(b.published[i].body, v); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	return b.published[i].queue
}

type fakeSheetParser struct {
	parseFn func(ctx context.Context, spreadsheetID string, cookID primitive.ObjectID) ([]*domain.DishOffer, []domain.ImportRowError, error)
}

func (p fakeSheetParser) ParseOffers(ctx context.Context, spreadsheetID string, cookID primitive.ObjectID) ([]*domain.DishOffer, []domain.ImportRowError, error) {
	if p.parseFn == nil {
		return nil, nil, nil
	}
	return p.parseFn(ctx, spreadsheetID, cookID)
}
