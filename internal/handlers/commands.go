package handlers

import (
	"strings"

	tghelpers "premiumbot/core/telegram/helpers"
	"premiumbot/internal/ui"

	"log/slog"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v4"
)

// Start greets the user with the welcome image (when set) and main menu.
func (h *Handlers) Start(c tele.Context) error {
	text := ui.WelcomeText(senderFirstName(c))
	menu := ui.MainMenu()

	if ref, ok := h.Welcome.Get(); ok {
		photo := &tele.Photo{
			File:    tele.File{FileID: ref},
			Caption: text,
		}
		return tghelpers.SendPhoto(c, photo, menu)
	}
	return tghelpers.SendMD(c, text, menu)
}

// Menu shows the main menu.
func (h *Handlers) Menu(c tele.Context) error {
	return tghelpers.SendMD(c, "📋 *Main menu*", ui.MainMenu())
}

// Help shows usage instructions.
func (h *Handlers) Help(c tele.Context) error {
	return tghelpers.SendMD(c, ui.HelpText)
}

// AdminHelp lists admin commands.
func (h *Handlers) AdminHelp(c tele.Context) error {
	return tghelpers.SendMD(c, ui.AdminHelpText)
}

// AddService handles "/add_service <name> | <price>".
func (h *Handlers) AddService(c tele.Context) error {
	const usage = "Usage: `/add_service <name> | <price>`\nExample: `/add_service Telegram Premium - 3 Months | 12.99`"

	payload := commandPayload(c)
	parts := strings.SplitN(payload, "|", 2)
	if len(parts) != 2 {
		return tghelpers.SendMD(c, usage)
	}
	name := strings.TrimSpace(parts[0])
	priceStr := strings.TrimSpace(parts[1])

	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.IsNegative() || name == "" {
		return tghelpers.SendMD(c, usage)
	}

	if err := h.Catalog.AddOrUpdate(name, price); err != nil {
		return tghelpers.SendText(c, "⚠️ Could not save the service. Please try again.")
	}

	h.logAction(c, "catalog.add",
		slog.String("service", name),
		slog.String("price", price.String()),
	)
	return tghelpers.SendMD(c, "✅ Service saved: *"+name+"* — $"+price.StringFixed(2))
}

// RemoveService handles "/remove_service <name>".
func (h *Handlers) RemoveService(c tele.Context) error {
	name := strings.TrimSpace(commandPayload(c))
	if name == "" {
		return tghelpers.SendMD(c, "Usage: `/remove_service <name>`")
	}

	removed, err := h.Catalog.Remove(name)
	if err != nil {
		return tghelpers.SendText(c, "⚠️ Could not update the catalog. Please try again.")
	}
	if !removed {
		return tghelpers.SendMD(c, "❓ No service named *"+name+"* found.")
	}

	h.logAction(c, "catalog.remove", slog.String("service", name))
	return tghelpers.SendMD(c, "🗑 Removed *"+name+"*.")
}

// ListServices renders the catalog for admins.
func (h *Handlers) ListServices(c tele.Context) error {
	return tghelpers.SendMD(c, ui.ServiceListText(h.Catalog.All()))
}

// SetWelcomeImage arms the welcome image upload flow; the next photo
// from this admin replaces the stored image.
func (h *Handlers) SetWelcomeImage(c tele.Context) error {
	h.Sessions.Set(c.Sender().ID, keyAwaitingWelcome, true)
	return tghelpers.SendText(c, "📷 Send the new welcome image as a photo.")
}

func senderFirstName(c tele.Context) string {
	if u := c.Sender(); u != nil {
		return u.FirstName
	}
	return ""
}

// commandPayload returns the text after the command itself.
func commandPayload(c tele.Context) string {
	if m := c.Message(); m != nil {
		return m.Payload
	}
	return ""
}
