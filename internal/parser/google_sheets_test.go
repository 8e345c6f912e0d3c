package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var header = []interface{}{
	"admin_dish_id", "name", "price", "stock", "portion_size", "option_type",
	"prep_time_minutes", "prep_time_min_minutes", "prep_time_max_minutes",
	"cutoff_time", "before_cutoff_ready_time", "after_cutoff_ready_time", "pickup", "delivery",
}

func TestParseOfferRows(t *testing.T) {
	cookID := primitive.NewObjectID()
	values := [][]interface{}{
		header,
		{"D1", "Koshari", "45.5", "10", "large", "fixed", "30", "", "", "", "", "", "TRUE", "FALSE"},
		{"D2", "Molokhia", "60", "5", "", "range", "", "20", "40", "", "", "", "yes", "yes"},
		{},
		{"D3", "Mahshi", "80", "3", "family", "cutoff", "", "", "", "11:00", "12:00", "", "", "true"},
		{"D4", "Fatta", "70", "2", "medium"},
	}

	offers, rowErrors, err := ParseOfferRows(values, cookID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %+v", rowErrors)
	}
	if len(offers) != 4 {
		t.Fatalf("expected 4 offers, got %d", len(offers))
	}

	koshari := offers[0]
	if koshari.CookID != cookID || koshari.Price != 45.5 || koshari.Stock != 10 {
		t.Errorf("unexpected offer: %+v", koshari)
	}
	if koshari.PrepReadyConfig.OptionType != prepready.OptionFixed || koshari.PrepReadyConfig.PrepTimeMinutes != 30 {
		t.Errorf("unexpected config: %+v", koshari.PrepReadyConfig)
	}
	if !koshari.Fulfillment.Pickup || koshari.Fulfillment.Delivery {
		t.Errorf("unexpected fulfillment: %+v", koshari.Fulfillment)
	}

	if offers[1].PortionSize != "medium" {
		t.Errorf("expected default portion size, got %q", offers[1].PortionSize)
	}
	if offers[1].PrepReadyConfig.PrepTimeMaxMinutes != 40 {
		t.Errorf("unexpected range config: %+v", offers[1].PrepReadyConfig)
	}

	if offers[2].PrepReadyConfig.CutoffTime != "11:00" || !offers[2].Fulfillment.Pickup {
		t.Errorf("unexpected cutoff offer: %+v", offers[2])
	}

	if offers[3].PrepReadyConfig != prepready.DefaultConfig() {
		t.Errorf("expected default config, got %+v", offers[3].PrepReadyConfig)
	}
}

func TestParseOfferRowsRecordsRowErrors(t *testing.T) {
	values := [][]interface{}{
		header,
		{"", "No id", "10", "1"},
		{"D2", "Bad price", "abc", "1"},
		{"D3", "Bad range", "10", "1", "", "range", "", "40", "20"},
		{"D4", "Bad cutoff", "10", "1", "", "cutoff", "", "", "", "25:00", "12:00"},
		{"D5", "No fulfillment", "10", "1", "", "", "", "", "", "", "", "", "no", "no"},
		{"D6", "Weird size", "10", "1", "huge"},
		{"D7", "Good", "10", "1"},
		{"D7", "Duplicate", "12", "1"},
	}

	offers, rowErrors, err := ParseOfferRows(values, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 || offers[0].AdminDishID != "D7" {
		t.Fatalf("expected only D7 to parse, got %d offers", len(offers))
	}

	wantRows := []int{2, 3, 4, 5, 6, 7, 9}
	if len(rowErrors) != len(wantRows) {
		t.Fatalf("expected %d row errors, got %+v", len(wantRows), rowErrors)
	}
	for i, row := range wantRows {
		if rowErrors[i].Row != row {
			t.Errorf("row error %d: got row %d, want %d", i, rowErrors[i].Row, row)
		}
	}
	if !strings.Contains(rowErrors[2].Message, "prep_time_max_minutes") {
		t.Errorf("expected range message, got %q", rowErrors[2].Message)
	}
}

func TestParseOfferRowsEmptySheet(t *testing.T) {
	_, _, err := ParseOfferRows([][]interface{}{header}, primitive.NewObjectID())
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("expected ErrEmptySheet, got %v", err)
	}
}
