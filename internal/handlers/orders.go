package handlers

import (
	tgcallbacks "premiumbot/core/telegram/callbacks"
	tghelpers "premiumbot/core/telegram/helpers"
	"premiumbot/internal/ui"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// PlaceOrder shows the services menu. Also serves "back to services".
func (h *Handlers) PlaceOrder(c tele.Context) error {
	services := h.Catalog.All()
	if len(services) == 0 {
		return tghelpers.EditOrSendMD(c, "😔 No services are available right now.", ui.BackToMenu())
	}
	return tghelpers.EditOrSendMD(c, "🛍 *Choose a service:*", ui.ServicesMenu(services))
}

// TelegramPremium shows the premium duration submenu.
func (h *Handlers) TelegramPremium(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, "💎 *Choose a duration:*", ui.PremiumMenu(h.Catalog.All()))
}

// ServiceSelected creates a pending order for the chosen service and
// notifies the admins for review.
func (h *Handlers) ServiceSelected(c tele.Context) error {
	name := tgcallbacks.CallbackPayload(c)
	if _, ok := h.Catalog.Price(name); !ok {
		return tghelpers.EditOrSendMD(c, "❓ That service is no longer available.", ui.BackToMenu())
	}

	userID := c.Sender().ID
	orderID := h.Orders.Create(userID, name)
	h.logAction(c, "order.create",
		slog.String("order_id", orderID),
		slog.String("service", name),
	)

	order, _ := h.Orders.Get(orderID)
	h.notifyAdmins(c, "notify.order_review",
		ui.NewOrderReviewText(order),
		ui.ModerationMenu(ui.KindOrder, orderID),
	)

	return tghelpers.EditOrSendMD(c, ui.OrderPlacedText(orderID, name), ui.BackToMenu())
}

// MyOrders lists the caller's order history.
func (h *Handlers) MyOrders(c tele.Context) error {
	orders := h.Orders.ByUser(c.Sender().ID)
	return tghelpers.EditOrSendMD(c, ui.MyOrdersText(orders), ui.BackToMenu())
}

// BackToMenu returns to the main menu and drops any staged flow state.
func (h *Handlers) BackToMenu(c tele.Context) error {
	h.Sessions.Clear(c.Sender().ID)
	return tghelpers.EditOrSendMD(c, "📋 *Main menu*", ui.MainMenu())
}
