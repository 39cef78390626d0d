package handlers

import (
	"strconv"

	"premiumbot/core/logger"
	tg "premiumbot/core/telegram"
	"premiumbot/core/telegram/commands"
	tghelpers "premiumbot/core/telegram/helpers"
	coreui "premiumbot/core/telegram/ui"
	"premiumbot/internal/store"
	"premiumbot/internal/ui"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Session keys used to thread multi-step flows.
const (
	keyAwaitingFeedback = "awaiting_feedback"
	keyAwaitingWelcome  = "awaiting_welcome_image"
	keyCurrentOrder     = "current_order"
)

// PaymentDetails is one manual payout destination shown to customers.
type PaymentDetails struct {
	Destination string
	AccountName string
}

// Deps carries everything the handlers need, injected at bootstrap.
type Deps struct {
	Catalog  *store.Catalog
	Orders   *store.Orders
	Sessions *store.Sessions
	Feedback *store.Feedback
	Welcome  *store.Welcome

	AdminIDs []int64
	IsAdmin  func(userID int64) bool

	// Payments maps method name to its destination details; Methods
	// preserves display order.
	Payments map[string]PaymentDetails
	Methods  []string
}

// Handlers implements the storefront dispatch layer.
type Handlers struct {
	Deps
	log *slog.Logger
}

// New constructs handlers over the injected stores.
func New(deps Deps) *Handlers {
	return &Handlers{
		Deps: deps,
		log:  logger.Component("handlers"),
	}
}

// Register wires all commands and callbacks into the registry.
func (h *Handlers) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Show the welcome screen",
	})
	reg.RegisterCommand("/menu", commands.Command{
		Handler:     h.Menu,
		Description: "Open the main menu",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     h.Help,
		Description: "How ordering works",
	})
	reg.RegisterCommand("/admin_help", commands.Command{
		Handler:     h.AdminHelp,
		Description: "List admin commands",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/add_service", commands.Command{
		Handler:     h.AddService,
		Description: "Add or update a service",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/remove_service", commands.Command{
		Handler:     h.RemoveService,
		Description: "Remove a service",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/list_services", commands.Command{
		Handler:     h.ListServices,
		Description: "List the catalog",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/set_welcome_image", commands.Command{
		Handler:     h.SetWelcomeImage,
		Description: "Upload a new welcome image",
		AdminOnly:   true,
		Hidden:      true,
	})

	for key, handler := range map[string]tele.HandlerFunc{
		ui.CBPlaceOrder:      h.PlaceOrder,
		ui.CBTelegramPremium: h.TelegramPremium,
		ui.CBService:         h.ServiceSelected,
		ui.CBMyOrders:        h.MyOrders,
		ui.CBFeedback:        h.FeedbackPrompt,
		ui.CBPayment:         h.PaymentMethodChosen,
		ui.CBPayConfirm:      h.PaymentConfirmed,
		ui.CBApprove:         h.Approve,
		ui.CBReject:          h.Reject,
		ui.CBBackMenu:        h.BackToMenu,
		ui.CBBackServices:    h.PlaceOrder,
	} {
		if err := reg.RegisterCallback(key, handler); err != nil {
			h.log.Warn("callback registration failed",
				slog.String("event", "wire.callback"),
				slog.String("cb_key", key),
				slog.String("err", err.Error()),
			)
		}
	}

	reg.SetTextFallback(h.UnknownText())
	reg.SetCallbackNotFound(h.UnknownCallback())
}

// Handlers provides the fallback surface consumed by the routers.
var _ coreui.FallbackProvider = (*Handlers)(nil)

// UnknownText answers text that matches no command or prompted flow.
func (h *Handlers) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, ui.UnknownActionText)
	}
}

// UnknownPhoto answers photos sent outside the welcome image flow.
func (h *Handlers) UnknownPhoto() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, ui.UnknownActionText)
	}
}

// UnknownCallback answers button presses with no registered handler.
func (h *Handlers) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}
}

// notifyAdmins fans a message out to every configured admin. Failures
// are logged per admin and do not affect the triggering mutation.
func (h *Handlers) notifyAdmins(c tele.Context, action, text string, markup *tele.ReplyMarkup) {
	bot := c.Bot()
	ctx := tghelpers.BuildContext(c)
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup}

	for _, adminID := range h.AdminIDs {
		adminID := adminID
		err := tghelpers.NotifyAsync(ctx, action, func() error {
			_, sendErr := bot.Send(tele.ChatID(adminID), text, opts)
			return sendErr
		})
		if err != nil {
			h.log.Warn("admin notification failed",
				slog.String("event", "notify.admin"),
				slog.Int64("admin_id", adminID),
				slog.String("err", err.Error()),
			)
		}
	}
}

// notifyUser sends a message to an arbitrary user id via the dispatcher.
func (h *Handlers) notifyUser(c tele.Context, userID int64, action, text string, markup *tele.ReplyMarkup) {
	bot := c.Bot()
	ctx := tghelpers.BuildContext(c)
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup}

	err := tghelpers.NotifyAsync(ctx, action, func() error {
		_, sendErr := bot.Send(tele.ChatID(userID), text, opts)
		return sendErr
	})
	if err != nil {
		h.log.Warn("user notification failed",
			slog.String("event", "notify.user"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}
}

func (h *Handlers) logAction(c tele.Context, event string, attrs ...slog.Attr) {
	ctx := tghelpers.BuildContext(c)
	logger.Info(ctx, "handlers", event, attrs...)
}

func feedbackID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
