package ui

import (
	"fmt"
	"sort"
	"strings"

	"premiumbot/core/telegram/keyboard"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v4"
)

// Callback uniques routed by the dispatch layer. Payload formats are noted
// where a unique carries one.
const (
	CBPlaceOrder      = "place_order"
	CBMyOrders        = "my_orders"
	CBFeedback        = "submit_feedback"
	CBTelegramPremium = "telegram_premium"
	// CBService payload: full service name.
	CBService = "service"
	// CBPayment payload: "<method>:<order_id>".
	CBPayment = "payment"
	// CBPayConfirm payload: "<method>:<order_id>".
	CBPayConfirm = "payconfirm"
	// CBApprove / CBReject payload: "<kind>:<id>", kind in order|payment|feedback.
	CBApprove = "approve"
	CBReject  = "reject"

	CBBackMenu     = "back_menu"
	CBBackServices = "back_services"
)

// Moderation payload kinds.
const (
	KindOrder    = "order"
	KindPayment  = "payment"
	KindFeedback = "feedback"
)

const premiumPrefix = "Telegram Premium - "

// MainMenu is the top-level customer menu.
func MainMenu() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🛒 Place Order", Unique: CBPlaceOrder},
		{Text: "📦 My Orders", Unique: CBMyOrders},
		{Text: "💬 Submit Feedback", Unique: CBFeedback},
	})
}

// ServicesMenu lists the catalog. Premium duration entries are grouped
// behind a single submenu button; everything else gets a direct button
// with its price.
func ServicesMenu(services map[string]decimal.Decimal) *tele.ReplyMarkup {
	var buttons []keyboard.InlineBtn

	hasPremium := false
	var rest []string
	for name := range services {
		if strings.HasPrefix(name, premiumPrefix) {
			hasPremium = true
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)

	if hasPremium {
		buttons = append(buttons, keyboard.InlineBtn{Text: "💎 Telegram Premium", Unique: CBTelegramPremium})
	}
	for _, name := range rest {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("⭐ %s - $%s", name, services[name].StringFixed(2)),
			Unique: CBService,
			Data:   name,
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: "🔙 Back to Menu", Unique: CBBackMenu})
	return keyboard.InlineButtons(buttons)
}

// PremiumMenu lists premium duration options with prices.
func PremiumMenu(services map[string]decimal.Decimal) *tele.ReplyMarkup {
	var names []string
	for name := range services {
		if strings.HasPrefix(name, premiumPrefix) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return services[names[i]].LessThan(services[names[j]])
	})

	buttons := make([]keyboard.InlineBtn, 0, len(names)+1)
	for _, name := range names {
		label := strings.TrimPrefix(name, premiumPrefix)
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("%s - $%s", label, services[name].StringFixed(2)),
			Unique: CBService,
			Data:   name,
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: "🔙 Back to Services", Unique: CBBackServices})
	return keyboard.InlineButtons(buttons)
}

// PaymentMethodsMenu offers the configured payment methods for an order.
func PaymentMethodsMenu(methods []string, orderID string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(methods)+1)
	for _, m := range methods {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   paymentLabel(m),
			Unique: CBPayment,
			Data:   m + ":" + orderID,
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: "🔙 Back to Menu", Unique: CBBackMenu})
	return keyboard.InlineButtons(buttons)
}

func paymentLabel(method string) string {
	switch method {
	case "TeleBirr":
		return "📱 TeleBirr"
	case "CBE":
		return "🏦 CBE"
	}
	return method
}

// PaymentConfirmMenu shows the "I have paid" confirmation button.
func PaymentConfirmMenu(method, orderID string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "✅ I Have Paid", Unique: CBPayConfirm, Data: method + ":" + orderID},
		{Text: "🔙 Back to Menu", Unique: CBBackMenu},
	})
}

// ModerationMenu builds the approve/reject row for an admin review message.
func ModerationMenu(kind, id string) *tele.ReplyMarkup {
	return keyboard.ApproveRejectRow(CBApprove, CBReject, kind+":"+id)
}

// BackToMenu is a single back button used on terminal screens.
func BackToMenu() *tele.ReplyMarkup {
	return keyboard.SingleBackMarkup(CBBackMenu, "back", "🔙 Back to Menu")
}
