package app

import (
	"context"
	"fmt"
	"strings"

	corecmd "premiumbot/core/cmd"
	"premiumbot/core/logger"
	coretelegram "premiumbot/core/telegram"
	"premiumbot/core/telegram/router"
	"premiumbot/internal/handlers"
	"premiumbot/internal/store"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// App owns the stores and dispatch layer for the storefront bot.
type App struct {
	cfg *Config

	catalog  *store.Catalog
	orders   *store.Orders
	sessions *store.Sessions
	feedback *store.Feedback
	welcome  *store.Welcome

	handlers *handlers.Handlers
}

// LoadCarrier adapts LoadConfig to the runner's ConfigCarrier contract.
func LoadCarrier(path string) (corecmd.ConfigCarrier, error) {
	return LoadConfig(path)
}

// Bootstrap initializes logging and constructs the stores and handlers.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
		return nil, fmt.Errorf("app: logger init failed: %w", err)
	}

	a := &App{
		cfg:      cfg,
		catalog:  store.NewCatalog(cfg.ServicesPath()),
		orders:   store.NewOrders(),
		sessions: store.NewSessions(),
		feedback: store.NewFeedback(),
		welcome:  store.NewWelcome(cfg.WelcomeImagePath()),
	}

	a.handlers = handlers.New(handlers.Deps{
		Catalog:  a.catalog,
		Orders:   a.orders,
		Sessions: a.sessions,
		Feedback: a.feedback,
		Welcome:  a.welcome,
		AdminIDs: cfg.Core.Telegram.AdminIDs,
		IsAdmin:  cfg.Core.Telegram.IsAdmin,
		Payments: paymentDetails(cfg),
		Methods:  cfg.PaymentMethods(),
	})

	return a, nil
}

func paymentDetails(cfg *Config) map[string]handlers.PaymentDetails {
	details := make(map[string]handlers.PaymentDetails)
	if strings.TrimSpace(cfg.Payments.TeleBirr.Phone) != "" {
		details["TeleBirr"] = handlers.PaymentDetails{
			Destination: cfg.Payments.TeleBirr.Phone,
			AccountName: cfg.Payments.TeleBirr.Name,
		}
	}
	if strings.TrimSpace(cfg.Payments.CBE.Account) != "" {
		details["CBE"] = handlers.PaymentDetails{
			Destination: cfg.Payments.CBE.Account,
			AccountName: cfg.Payments.CBE.Name,
		}
	}
	return details
}

// TelegramRunOptions assembles the registry, routes and middleware chain.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.handlers.Register(reg)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminIDs: a.cfg.Core.Telegram.AdminIDs,
		OnAdminReject: func(c tele.Context) error {
			return c.Send("This command is for administrators only.")
		},
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.MessageRoutes(a.handlers, reg, router.MessageOptions{
		UnknownText:  a.handlers.UnknownText(),
		UnknownPhoto: a.handlers.UnknownPhoto(),
	})...)

	mws := coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: mws,
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			// Touching the catalog here seeds the default services file
			// on first run.
			names := a.catalog.Names()
			preview, truncated := logger.SummarizeStrings(names, 6)
			logger.Info(ctx, "app", "catalog.ready",
				slog.Int("services", len(names)),
				slog.String("preview", preview),
				slog.Bool("truncated", truncated),
				slog.String("file", a.cfg.ServicesPath()),
			)
			if _, ok := a.welcome.Get(); ok {
				logger.Info(ctx, "app", "welcome.ready",
					slog.String("file", a.cfg.WelcomeImagePath()),
				)
			}
			return nil
		},
	}, nil
}
