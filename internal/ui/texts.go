package ui

import (
	"fmt"
	"sort"
	"strings"

	"premiumbot/core/telegram/format"
	"premiumbot/internal/store"

	"github.com/shopspring/decimal"
)

// escape sanitizes user-supplied text before it is embedded in a
// Markdown message.
func escape(text string) string {
	escaped, err := format.EscapeMarkdown(text, format.MarkdownV1)
	if err != nil {
		return text
	}
	return escaped
}

// WelcomeText greets a customer on /start.
func WelcomeText(firstName string) string {
	name := escape(strings.TrimSpace(firstName))
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"👋 Welcome, %s!\n\n"+
			"I can get you *Telegram Premium* and *Telegram Stars* quickly and safely.\n\n"+
			"Use the menu below to place an order, check your orders, or leave feedback.",
		name,
	)
}

// HelpText lists the customer-facing commands.
const HelpText = "ℹ️ *How this works*\n\n" +
	"1. Tap *Place Order* and pick a service.\n" +
	"2. Wait for your order to be approved.\n" +
	"3. Pay with one of the offered methods and tap *I Have Paid*.\n" +
	"4. Once payment is verified your order is completed.\n\n" +
	"*Commands*\n" +
	"/start - show the welcome screen\n" +
	"/menu - open the main menu\n" +
	"/help - show this message"

// AdminHelpText lists the admin-only commands.
const AdminHelpText = "🛠 *Admin commands*\n\n" +
	"/add\\_service <name> | <price> - add or update a service\n" +
	"/remove\\_service <name> - remove a service\n" +
	"/list\\_services - list the catalog with prices\n" +
	"/set\\_welcome\\_image - upload a new welcome image\n" +
	"/admin\\_help - show this message\n\n" +
	"Order, payment and feedback reviews arrive as messages with " +
	"approve/reject buttons."

// ServiceListText renders the catalog for admins.
func ServiceListText(services map[string]decimal.Decimal) string {
	if len(services) == 0 {
		return "📋 The catalog is empty."
	}
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("📋 *Services*\n\n")
	for _, name := range names {
		fmt.Fprintf(&b, "• %s — $%s\n", name, services[name].StringFixed(2))
	}
	return b.String()
}

// OrderPlacedText confirms order creation to the customer.
func OrderPlacedText(orderID, service string) string {
	return fmt.Sprintf(
		"✅ Order placed!\n\n"+
			"🆔 Order ID: `%s`\n"+
			"🛍 Service: %s\n\n"+
			"Your order is pending approval. You will be notified shortly.",
		orderID, service,
	)
}

// OrderApprovedText tells the customer to pick a payment method.
func OrderApprovedText(orderID string) string {
	return fmt.Sprintf(
		"🎉 Your order `%s` was approved!\n\n"+
			"Please choose a payment method:",
		orderID,
	)
}

// OrderRejectedText tells the customer the order was declined.
func OrderRejectedText(orderID string) string {
	return fmt.Sprintf(
		"❌ Your order `%s` was rejected.\n\n"+
			"You can place a new order from the menu, or contact support.",
		orderID,
	)
}

// PaymentInstructionsText renders the payout destination for a method.
func PaymentInstructionsText(method, destination, accountName, orderID string, price decimal.Decimal, havePrice bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💳 *%s payment*\n\n", method)
	switch method {
	case "TeleBirr":
		fmt.Fprintf(&b, "📱 Phone: `%s`\n", destination)
	case "CBE":
		fmt.Fprintf(&b, "🏦 Account: `%s`\n", destination)
	default:
		fmt.Fprintf(&b, "Destination: `%s`\n", destination)
	}
	fmt.Fprintf(&b, "👤 Name: %s\n", accountName)
	if havePrice {
		fmt.Fprintf(&b, "💰 Amount: $%s\n", price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\n🆔 Order: `%s`\n\n", orderID)
	b.WriteString("After sending the payment, tap *I Have Paid* below.")
	return b.String()
}

// PaymentSubmittedText acknowledges a payment confirmation claim.
func PaymentSubmittedText(orderID string) string {
	return fmt.Sprintf(
		"🕓 Payment for order `%s` submitted for verification.\n\n"+
			"You will be notified once it is confirmed.",
		orderID,
	)
}

// OrderCompletedText tells the customer the purchase is done.
func OrderCompletedText(orderID string) string {
	return fmt.Sprintf(
		"✅ Payment confirmed — order `%s` completed!\n\n"+
			"Thank you for your purchase. 🎉",
		orderID,
	)
}

// PaymentRejectedText asks the customer to retry payment.
func PaymentRejectedText(orderID string) string {
	return fmt.Sprintf(
		"⚠️ We could not verify the payment for order `%s`.\n\n"+
			"Please try again with one of the methods below:",
		orderID,
	)
}

// MyOrdersText renders the customer's order history.
func MyOrdersText(orders map[string]store.Order) string {
	if len(orders) == 0 {
		return "📦 You have no orders yet."
	}

	ids := make([]string, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("📦 *Your orders*\n\n")
	for _, id := range ids {
		o := orders[id]
		fmt.Fprintf(&b, "🆔 `%s`\n🛍 %s\n📊 %s", o.ID, o.Service, statusEmoji(o.Status))
		if o.PaymentStatus != "" {
			fmt.Fprintf(&b, " · payment %s", o.PaymentStatus)
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func statusEmoji(status string) string {
	switch status {
	case store.OrderPending:
		return "⏳ pending"
	case store.OrderApproved:
		return "✅ approved"
	case store.OrderRejected:
		return "❌ rejected"
	case store.OrderCompleted:
		return "🏁 completed"
	}
	return status
}

// FeedbackPromptText asks for free-text feedback.
const FeedbackPromptText = "💬 Please type your feedback as a message.\n\n" +
	"It will be forwarded to the team for review."

// FeedbackThanksText acknowledges a submission.
const FeedbackThanksText = "🙏 Thanks! Your feedback was submitted for review."

// Admin review notifications.

// NewOrderReviewText renders the admin notification for a fresh order.
func NewOrderReviewText(o store.Order) string {
	return fmt.Sprintf(
		"🆕 *New order*\n\n"+
			"🆔 `%s`\n"+
			"👤 User: `%d`\n"+
			"🛍 Service: %s",
		o.ID, o.UserID, o.Service,
	)
}

// PaymentReviewText renders the admin notification for a claimed payment.
func PaymentReviewText(o store.Order) string {
	return fmt.Sprintf(
		"💳 *Payment verification*\n\n"+
			"🆔 `%s`\n"+
			"👤 User: `%d`\n"+
			"🛍 Service: %s\n"+
			"💰 Method: %s",
		o.ID, o.UserID, o.Service, o.PaymentMethod,
	)
}

// FeedbackReviewText renders the admin notification for new feedback.
func FeedbackReviewText(e store.FeedbackEntry) string {
	return fmt.Sprintf(
		"💬 *New feedback* #%d\n\n"+
			"👤 User: `%d`\n\n"+
			"%s",
		e.ID, e.UserID, escape(e.Text),
	)
}

// UnknownActionText is shown for unroutable input.
const UnknownActionText = "🤔 I didn't understand that. Use /menu to see what I can do."
