package router

import (
	"time"

	tg "premiumbot/core/telegram"
	"premiumbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// Interceptor claims plain messages from users who are in the middle of a
// prompted flow, e.g. typing feedback or uploading a welcome image.
type Interceptor interface {
	WantsText(userID int64) bool
	HandleText(c tele.Context) error
	WantsPhoto(userID int64) bool
	HandlePhoto(c tele.Context) error
}

// MessageOptions controls fallback behaviour for text/photo updates.
type MessageOptions struct {
	UnknownText  tele.HandlerFunc
	UnknownPhoto tele.HandlerFunc
}

// MessageRoutes builds handlers for text and photo routing. Prompted flows
// take precedence over commands looked up in the registry.
func MessageRoutes(in Interceptor, reg *tg.Registry, opts MessageOptions) []tg.Route {
	textHandler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if in != nil && in.WantsText(c.Sender().ID) {
			return handleWithSummary(c, "prompted_text", start, "", "", func() error {
				return in.HandleText(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	photoHandler := func(c tele.Context) error {
		start := time.Now()
		if in != nil && in.WantsPhoto(c.Sender().ID) {
			return handleWithSummary(c, "prompted_photo", start, "", "", func() error {
				return in.HandlePhoto(c)
			})
		}
		if opts.UnknownPhoto != nil {
			return handleWithSummary(c, "unexpected_photo", start, "", "", func() error {
				return opts.UnknownPhoto(c)
			})
		}
		logHandlerSummary(c, "unexpected_photo", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(textHandler)),
		},
		{
			Endpoint: tele.OnPhoto,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(photoHandler)),
		},
	}
}
