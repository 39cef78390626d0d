package handlers

import (
	tgcallbacks "premiumbot/core/telegram/callbacks"
	tghelpers "premiumbot/core/telegram/helpers"
	"premiumbot/internal/store"
	"premiumbot/internal/ui"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Approve handles admin approval callbacks. Payload: "<kind>:<id>".
func (h *Handlers) Approve(c tele.Context) error {
	return h.moderate(c, true)
}

// Reject handles admin rejection callbacks. Payload: "<kind>:<id>".
func (h *Handlers) Reject(c tele.Context) error {
	return h.moderate(c, false)
}

func (h *Handlers) moderate(c tele.Context, approved bool) error {
	if !h.IsAdmin(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: "Not allowed"})
	}

	kind, id, err := tgcallbacks.PayloadKindID(c)
	if err != nil {
		return tghelpers.EditOrSendMD(c, ui.UnknownActionText)
	}

	var handled bool
	switch kind {
	case ui.KindOrder:
		handled = h.moderateOrder(c, id, approved)
	case ui.KindPayment:
		handled = h.moderatePayment(c, id, approved)
	case ui.KindFeedback:
		handled = h.moderateFeedback(c, id)
	}
	if !handled {
		return tghelpers.EditOrSendMD(c, "❓ Record not found. It may predate a restart.")
	}

	attrs := []slog.Attr{
		slog.String("outcome", verdictWord(approved)),
		slog.Int64("admin_id", c.Sender().ID),
	}
	if kind == ui.KindFeedback {
		attrs = append(attrs, slog.String("feedback_id", id))
	} else {
		attrs = append(attrs, slog.String("order_id", id))
	}
	h.logAction(c, "moderation."+kind, attrs...)

	return tghelpers.EditMD(c, reviewedText(c, approved))
}

func (h *Handlers) moderateOrder(c tele.Context, orderID string, approved bool) bool {
	order, ok := h.Orders.Get(orderID)
	if !ok {
		return false
	}

	if approved {
		h.Orders.UpdateStatus(orderID, store.OrderApproved)
		// Stage the approved order so the payment flow can find it even
		// if the callback payload is lost.
		h.Sessions.Set(order.UserID, keyCurrentOrder, orderID)
		h.notifyUser(c, order.UserID, "notify.order_approved",
			ui.OrderApprovedText(orderID),
			ui.PaymentMethodsMenu(h.Methods, orderID),
		)
		return true
	}

	h.Orders.UpdateStatus(orderID, store.OrderRejected)
	h.notifyUser(c, order.UserID, "notify.order_rejected",
		ui.OrderRejectedText(orderID), ui.BackToMenu())
	return true
}

func (h *Handlers) moderatePayment(c tele.Context, orderID string, approved bool) bool {
	order, ok := h.Orders.Get(orderID)
	if !ok {
		return false
	}

	if approved {
		h.Orders.UpdatePaymentStatus(orderID, store.PaymentConfirmed)
		h.Orders.UpdateStatus(orderID, store.OrderCompleted)
		h.notifyUser(c, order.UserID, "notify.order_completed",
			ui.OrderCompletedText(orderID), ui.BackToMenu())
		return true
	}

	// Rejected payments are re-presented to the customer for retry.
	h.Orders.UpdatePaymentStatus(orderID, store.PaymentRejected)
	h.notifyUser(c, order.UserID, "notify.payment_rejected",
		ui.PaymentRejectedText(orderID),
		ui.PaymentMethodsMenu(h.Methods, orderID),
	)
	return true
}

func (h *Handlers) moderateFeedback(c tele.Context, raw string) bool {
	id, ok := feedbackID(raw)
	if !ok {
		return false
	}
	return h.Feedback.UpdateStatus(id, store.FeedbackReviewed)
}

func verdictWord(approved bool) string {
	if approved {
		return "approved"
	}
	return "rejected"
}

// reviewedText appends the verdict to the review message being edited.
func reviewedText(c tele.Context, approved bool) string {
	base := ""
	if m := c.Message(); m != nil {
		base = m.Text
		if base == "" {
			base = m.Caption
		}
	}
	mark := "\n\n✅ Approved"
	if !approved {
		mark = "\n\n❌ Rejected"
	}
	return base + mark
}
