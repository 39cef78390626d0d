package handlers

import (
	tgcallbacks "premiumbot/core/telegram/callbacks"
	tghelpers "premiumbot/core/telegram/helpers"
	"premiumbot/internal/store"
	"premiumbot/internal/ui"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// PaymentMethodChosen records the method on the order and shows the
// payout destination. Payload: "<method>:<order_id>".
func (h *Handlers) PaymentMethodChosen(c tele.Context) error {
	method, orderID, err := tgcallbacks.PayloadKindID(c)
	if err != nil {
		// Older keyboards carried only the method; fall back to the
		// order staged at approval time.
		method = tgcallbacks.CallbackPayload(c)
		orderID = h.Sessions.GetString(c.Sender().ID, keyCurrentOrder)
		if method == "" || orderID == "" {
			return tghelpers.EditOrSendMD(c, ui.UnknownActionText, ui.BackToMenu())
		}
	}

	order, ok := h.Orders.Get(orderID)
	if !ok || order.UserID != c.Sender().ID {
		return tghelpers.EditOrSendMD(c, "❓ Order not found.", ui.BackToMenu())
	}

	details, ok := h.Payments[method]
	if !ok {
		return tghelpers.EditOrSendMD(c, "❓ That payment method is not available.", ui.BackToMenu())
	}

	h.Orders.UpdatePaymentMethod(orderID, method)
	h.logAction(c, "payment.method",
		slog.String("order_id", orderID),
		slog.String("payment_method", method),
	)

	price, havePrice := h.Catalog.Price(order.Service)
	text := ui.PaymentInstructionsText(method, details.Destination, details.AccountName, orderID, price, havePrice)
	return tghelpers.EditOrSendMD(c, text, ui.PaymentConfirmMenu(method, orderID))
}

// PaymentConfirmed handles the customer's "I have paid" claim and asks
// the admins to verify. Payload: "<method>:<order_id>".
func (h *Handlers) PaymentConfirmed(c tele.Context) error {
	_, orderID, err := tgcallbacks.PayloadKindID(c)
	if err != nil {
		return tghelpers.EditOrSendMD(c, ui.UnknownActionText, ui.BackToMenu())
	}

	order, ok := h.Orders.Get(orderID)
	if !ok || order.UserID != c.Sender().ID {
		return tghelpers.EditOrSendMD(c, "❓ Order not found.", ui.BackToMenu())
	}
	if order.PaymentStatus == store.PaymentConfirmed {
		return tghelpers.EditOrSendMD(c, ui.OrderCompletedText(orderID), ui.BackToMenu())
	}
	h.Sessions.Clear(c.Sender().ID)

	h.logAction(c, "payment.claimed", slog.String("order_id", orderID))
	h.notifyAdmins(c, "notify.payment_review",
		ui.PaymentReviewText(order),
		ui.ModerationMenu(ui.KindPayment, orderID),
	)

	return tghelpers.EditOrSendMD(c, ui.PaymentSubmittedText(orderID), ui.BackToMenu())
}
