package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrEmptySheet = errors.New("no data found in spreadsheet")

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseOffers reads columns A:N of the first sheet. Rows that cannot become an
// offer are reported as row errors instead of failing the whole import.
func (p *GoogleSheetsParser) ParseOffers(ctx context.Context, spreadsheetID string, cookID primitive.ObjectID) ([]*domain.DishOffer, []domain.ImportRowError, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, "A:N").Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return ParseOfferRows(resp.Values, cookID)
}

// sheet columns
const (
	colAdminDishID = iota
	colName
	colPrice
	colStock
	colPortionSize
	colOptionType
	colPrepMinutes
	colPrepMinMinutes
	colPrepMaxMinutes
	colCutoffTime
	colBeforeCutoffReady
	colAfterCutoffReady
	colPickup
	colDelivery
)

// ParseOfferRows turns raw sheet values into offers. The first row is the header.
func ParseOfferRows(values [][]interface{}, cookID primitive.ObjectID) ([]*domain.DishOffer, []domain.ImportRowError, error) {
	if len(values) <= 1 {
		return nil, nil, ErrEmptySheet
	}

	offers := []*domain.DishOffer{}
	rowErrors := []domain.ImportRowError{}
	seen := map[string]int{}

	// skip header
	for i := 1; i < len(values); i++ {
		row := values[i]
		if isBlank(row) {
			continue
		}

		offer, err := parseOfferRow(row)
		if err != nil {
			rowErrors = append(rowErrors, domain.ImportRowError{Row: i + 1, Message: err.Error()})
			continue
		}
		if first, ok := seen[offer.AdminDishID]; ok {
			rowErrors = append(rowErrors, domain.ImportRowError{
				Row:     i + 1,
				Message: fmt.Sprintf("admin_dish_id %s already used in row %d", offer.AdminDishID, first),
			})
			continue
		}
		seen[offer.AdminDishID] = i + 1

		offer.CookID = cookID
		offers = append(offers, offer)
	}

	return offers, rowErrors, nil
}

func parseOfferRow(row []interface{}) (*domain.DishOffer, error) {
	offer := &domain.DishOffer{
		AdminDishID: cell(row, colAdminDishID),
		Name:        cell(row, colName),
		PortionSize: strings.ToLower(cell(row, colPortionSize)),
		Status:      domain.OfferStatusAvailable,
	}

	if offer.AdminDishID == "" {
		return nil, errors.New("admin_dish_id is required")
	}
	if offer.Name == "" {
		return nil, errors.New("name is required")
	}
	if offer.PortionSize == "" {
		offer.PortionSize = "medium"
	}
	if !domain.ValidPortionSize(offer.PortionSize) {
		return nil, fmt.Errorf("unknown portion_size %q", offer.PortionSize)
	}

	price, err := strconv.ParseFloat(cell(row, colPrice), 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid price %q", cell(row, colPrice))
	}
	offer.Price = price

	stock, err := intCell(row, colStock)
	if err != nil || stock < 0 {
		return nil, fmt.Errorf("invalid stock %q", cell(row, colStock))
	}
	offer.Stock = stock

	cfg, err := parseConfig(row)
	if err != nil {
		return nil, err
	}
	offer.PrepReadyConfig = cfg

	offer.Fulfillment = domain.Fulfillment{
		Pickup:   boolCell(row, colPickup, true),
		Delivery: boolCell(row, colDelivery, false),
	}
	if !offer.Fulfillment.Any() {
		return nil, errors.New("at least one of pickup or delivery must be enabled")
	}

	return offer, nil
}

func parseConfig(row []interface{}) (prepready.Config, error) {
	optionType := strings.ToLower(cell(row, colOptionType))
	if optionType == "" {
		return prepready.DefaultConfig(), nil
	}

	cfg := prepready.Config{
		OptionType:            prepready.OptionType(optionType),
		CutoffTime:            cell(row, colCutoffTime),
		BeforeCutoffReadyTime: cell(row, colBeforeCutoffReady),
		AfterCutoffReadyTime:  cell(row, colAfterCutoffReady),
	}

	var err error
	if cfg.PrepTimeMinutes, err = intCell(row, colPrepMinutes); err != nil {
		return cfg, fmt.Errorf("invalid prep_time_minutes: %w", err)
	}
	if cfg.PrepTimeMinMinutes, err = intCell(row, colPrepMinMinutes); err != nil {
		return cfg, fmt.Errorf("invalid prep_time_min_minutes: %w", err)
	}
	if cfg.PrepTimeMaxMinutes, err = intCell(row, colPrepMaxMinutes); err != nil {
		return cfg, fmt.Errorf("invalid prep_time_max_minutes: %w", err)
	}

	if err := prepready.Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func cell(row []interface{}, col int) string {
	if col >= len(row) || row[col] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[col]))
}

// intCell treats an empty cell as zero.
func intCell(row []interface{}, col int) (int, error) {
	s := cell(row, col)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func boolCell(row []interface{}, col int, fallback bool) bool {
	switch strings.ToUpper(cell(row, col)) {
	case "TRUE", "YES", "1":
		return true
	case "FALSE", "NO", "0":
		return false
	}
	return fallback
}

func isBlank(row []interface{}) bool {
	for i := range row {
		if cell(row, i) != "" {
			return false
		}
	}
	return true
}
