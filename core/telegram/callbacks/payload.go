package callbacks

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// PayloadInt64 parses callback payload as int64.
func PayloadInt64(c tele.Context) (int64, error) {
	p := CallbackPayload(c)
	return strconv.ParseInt(p, 10, 64)
}

// PayloadParts splits the callback payload into parts using the given separator.
func PayloadParts(c tele.Context, sep string) ([]string, error) {
	p := CallbackPayload(c)
	if p == "" {
		return nil, strconv.ErrSyntax
	}
	return strings.Split(p, sep), nil
}

// PayloadKindID parses payloads like "order:ORD_20240101120000_42" into
// a kind and an identifier. Used by moderation callbacks where one unique
// serves several record types.
func PayloadKindID(c tele.Context) (string, string, error) {
	parts, err := PayloadParts(c, ":")
	if err != nil {
		return "", "", err
	}
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", strconv.ErrSyntax
	}
	return parts[0], parts[1], nil
}
