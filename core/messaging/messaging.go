package messaging

import (
	"net/url"
	"strings"
)

const countryCode = "92"

// NormalizePhone keeps the digits of `phone` and rewrites local mobile numbers to the
// international form: "03001234567" and "3001234567" both become "923001234567".
func NormalizePhone(phone string) string {
	digits := Digits(phone)
	switch {
	case strings.HasPrefix(digits, "03"):
		return countryCode + digits[1:]
	case strings.HasPrefix(digits, "3"):
		return countryCode + digits
	}
	return digits
}

// Digits drops every non-digit character of `phone`.
func Digits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppURL opens a chat with `phone`; it is empty when the phone has no digits.
func WhatsAppURL(phone string) string {
	n := NormalizePhone(phone)
	if n == "" {
		return ""
	}
	return "https://wa.me/" + n
}

// WhatsAppMessageURL opens a chat with `phone` with `text` pre-filled.
func WhatsAppMessageURL(phone, text string) string {
	u := WhatsAppURL(phone)
	if u == "" {
		return ""
	}
	return u + "?text=" + EncodeURIComponent(text)
}

// WhatsAppShareURL is the api.whatsapp.com form used to share reports.
func WhatsAppShareURL(phone, text string) string {
	return "https://api.whatsapp.com/send?phone=" + NormalizePhone(phone) + "&text=" + EncodeURIComponent(text)
}

// SMSURI addresses one SMS to every phone. Phones keep only their digits and are not
// rewritten to the international form.
func SMSURI(phones []string, body string) string {
	nums := make([]string, 0, len(phones))
	for _, p := range phones {
		nums = append(nums, Digits(p))
	}
	return "sms:" + strings.Join(nums, ",") + "?body=" + EncodeURIComponent(body)
}

// ClipboardText is the block copied for pasting into a WhatsApp broadcast.
func ClipboardText(appName, message string, phones []string) string {
	return "Message from " + appName + ":\n" + message + "\n\nRecipients:\n" + strings.Join(phones, "\n")
}

var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func EncodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}
