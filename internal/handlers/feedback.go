package handlers

import (
	"strconv"
	"strings"

	tghelpers "premiumbot/core/telegram/helpers"
	"premiumbot/internal/ui"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// FeedbackPrompt arms the feedback flow; the user's next text message
// is captured as their submission.
func (h *Handlers) FeedbackPrompt(c tele.Context) error {
	h.Sessions.Set(c.Sender().ID, keyAwaitingFeedback, true)
	return tghelpers.EditOrSendMD(c, ui.FeedbackPromptText, ui.BackToMenu())
}

// WantsText reports whether the user's next text message belongs to a
// prompted flow.
func (h *Handlers) WantsText(userID int64) bool {
	return h.Sessions.Has(userID, keyAwaitingFeedback)
}

// HandleText consumes a prompted text message, currently only feedback.
func (h *Handlers) HandleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	h.Sessions.Clear(userID)

	if text == "" {
		return tghelpers.SendText(c, "💬 Feedback cannot be empty. Use the menu to try again.")
	}

	id := h.Feedback.Add(userID, text)
	h.logAction(c, "feedback.add", slog.Int("feedback_id", id))

	entry, _ := h.Feedback.Get(id)
	h.notifyAdmins(c, "notify.feedback_review",
		ui.FeedbackReviewText(entry),
		ui.ModerationMenu(ui.KindFeedback, strconv.Itoa(id)),
	)

	return tghelpers.SendMD(c, ui.FeedbackThanksText, ui.BackToMenu())
}

// WantsPhoto reports whether the user's next photo belongs to a
// prompted flow (admin uploading a welcome image).
func (h *Handlers) WantsPhoto(userID int64) bool {
	return h.IsAdmin(userID) && h.Sessions.Has(userID, keyAwaitingWelcome)
}

// HandlePhoto consumes the prompted welcome image upload.
func (h *Handlers) HandlePhoto(c tele.Context) error {
	userID := c.Sender().ID
	h.Sessions.Clear(userID)

	msg := c.Message()
	if msg == nil || msg.Photo == nil {
		return tghelpers.SendText(c, "📷 That doesn't look like a photo. Use /set_welcome_image to retry.")
	}

	if err := h.Welcome.Set(msg.Photo.FileID); err != nil {
		return tghelpers.SendText(c, "⚠️ Could not save the welcome image. Please try again.")
	}

	h.logAction(c, "welcome.set", slog.String("file", msg.Photo.FileID))

	// Echo a preview of what customers will see on /start.
	preview := &tele.Photo{
		File:    tele.File{FileID: msg.Photo.FileID},
		Caption: "✅ Welcome image updated. Preview above.",
	}
	return tghelpers.SendPhoto(c, preview)
}
