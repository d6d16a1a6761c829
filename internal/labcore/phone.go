package labcore

import (
	"net/url"
	"strings"
	"unicode"
)

// CountryCode is the dialing prefix expected by the messaging deep link.
const CountryCode = "213"

// NormalizePhone converts a locally formatted phone number into the
// international form used by wa.me links: whitespace removed, one leading
// zero dropped, country code prepended unless already present.
func NormalizePhone(raw string) string {
	phone := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	phone = strings.TrimPrefix(phone, "0")
	if !strings.HasPrefix(phone, CountryCode) {
		phone = CountryCode + phone
	}
	return phone
}

// WhatsAppLink builds a prefilled-message deep link to the given number.
func WhatsAppLink(phone, message string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + url.QueryEscape(message)
}
