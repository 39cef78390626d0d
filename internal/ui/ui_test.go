package ui

import (
	"testing"
	"time"

	"premiumbot/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"Telegram Premium - 1 Month":  decimal.RequireFromString("4.99"),
		"Telegram Premium - 3 Months": decimal.RequireFromString("12.99"),
		"Telegram Premium - 1 Year":   decimal.RequireFromString("45.99"),
		"Telegram Stars":              decimal.RequireFromString("9.99"),
	}
}

func TestServicesMenuGroupsPremium(t *testing.T) {
	markup := ServicesMenu(sampleCatalog())
	require.NotNil(t, markup)

	var labels []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}

	// One premium submenu entry, one direct stars entry, one back button.
	assert.Len(t, labels, 3)
	assert.Contains(t, labels[0], "Telegram Premium")
	assert.Contains(t, labels[1], "Telegram Stars")
	assert.Contains(t, labels[1], "$9.99")
	assert.Contains(t, labels[2], "Back")
}

func TestPremiumMenuSortedByPrice(t *testing.T) {
	markup := PremiumMenu(sampleCatalog())
	require.NotNil(t, markup)

	rows := markup.InlineKeyboard
	// Three durations plus a back button.
	require.Len(t, rows, 4)
	assert.Contains(t, rows[0][0].Text, "1 Month")
	assert.Contains(t, rows[1][0].Text, "3 Months")
	assert.Contains(t, rows[2][0].Text, "1 Year")
}

func TestPaymentMethodsMenuPayloads(t *testing.T) {
	markup := PaymentMethodsMenu([]string{"TeleBirr", "CBE"}, "ORD_1")
	require.Len(t, markup.InlineKeyboard, 3)

	assert.Contains(t, markup.InlineKeyboard[0][0].Data, "TeleBirr:ORD_1")
	assert.Contains(t, markup.InlineKeyboard[1][0].Data, "CBE:ORD_1")
}

func TestModerationMenuCarriesKindAndID(t *testing.T) {
	markup := ModerationMenu(KindPayment, "ORD_9")
	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Contains(t, row[0].Data, "payment:ORD_9")
	assert.Contains(t, row[1].Data, "payment:ORD_9")
}

func TestWelcomeTextEscapesName(t *testing.T) {
	text := WelcomeText("Eve_[admin]")
	assert.Contains(t, text, `Eve\_\[admin]`)

	assert.Contains(t, WelcomeText(""), "there")
}

func TestFeedbackReviewTextEscapesBody(t *testing.T) {
	e := store.FeedbackEntry{ID: 3, UserID: 42, Text: "nice *bot*"}
	text := FeedbackReviewText(e)
	assert.Contains(t, text, `nice \*bot\*`)
	assert.Contains(t, text, "#3")
}

func TestMyOrdersText(t *testing.T) {
	assert.Contains(t, MyOrdersText(nil), "no orders")

	orders := map[string]store.Order{
		"ORD_A": {
			ID: "ORD_A", Service: "Telegram Stars",
			Status: store.OrderCompleted, PaymentStatus: store.PaymentConfirmed,
			CreatedAt: time.Now(),
		},
	}
	text := MyOrdersText(orders)
	assert.Contains(t, text, "ORD_A")
	assert.Contains(t, text, "completed")
	assert.Contains(t, text, "payment confirmed")
}

func TestServiceListText(t *testing.T) {
	assert.Contains(t, ServiceListText(nil), "empty")

	text := ServiceListText(sampleCatalog())
	assert.Contains(t, text, "Telegram Stars — $9.99")
}
