package domain

import "time"

type OfferImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
	CookID        string `json:"cook_id"`
}

type OfferStatusEvent struct {
	EventType string    `json:"event_type"`
	OfferID   string    `json:"offer_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
}

type OrderPlacedEvent struct {
	EventID     string           `json:"event_id"`
	EventType   string           `json:"event_type"`
	OrderID     string           `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	CustomerID  string           `json:"customer_id"`
	Cooks       []CookOrderBrief `json:"cooks"`
	Timestamp   time.Time        `json:"timestamp"`
}

// CookOrderBrief is the part of a placed order one cook has to prepare.
type CookOrderBrief struct {
	CookID        string `json:"cook_id"`
	ItemCount     int    `json:"item_count"`
	ReadyText     string `json:"ready_text"`
	ReadyTextAr   string `json:"ready_text_ar"`
	LatestReadyAt string `json:"latest_ready_at"`
}

const (
	EventOfferStatusChanged = "offer.status_changed"
	EventOrderPlaced        = "order.placed"
)
