// Package locale resolves user-facing strings for the three supported locales
// (Dari, Pashto, Farsi) from TOML message tables embedded in the binary.
package locale

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Locale is the short code a client selects.
type Locale string

const (
	Dari   Locale = "dr"
	Pashto Locale = "ps"
	Farsi  Locale = "fa"
)

// Supported lists the locales in the order clients present them.
var Supported = []Locale{Dari, Pashto, Farsi}

// Message IDs shared by the services and the HTTP layer.
const (
	NotificationApprovedTitle   = "NotificationApprovedTitle"
	NotificationApprovedMessage = "NotificationApprovedMessage"
	NotificationRejectedTitle   = "NotificationRejectedTitle"
	NotificationRejectedMessage = "NotificationRejectedMessage"
	NotificationProposalTitle   = "NotificationProposalTitle"
	NotificationProposalMessage = "NotificationProposalMessage"
	HistoryRegistered           = "HistoryRegistered"
	HistoryApproved             = "HistoryApproved"
	HistoryRejected             = "HistoryRejected"
	ErrorNotFound               = "ErrorNotFound"
	ErrorValidation             = "ErrorValidation"
	ErrorEmptyQuery             = "ErrorEmptyQuery"
	ErrorForbidden              = "ErrorForbidden"
	ErrorUnauthenticated        = "ErrorUnauthenticated"
	ErrorUnavailable            = "ErrorUnavailable"
	ErrorInternal               = "ErrorInternal"
	ErrorBadRequest             = "ErrorBadRequest"
	ErrorResourceNotFound       = "ErrorResourceNotFound"
	ErrorMethodNotAllowed       = "ErrorMethodNotAllowed"
	ErrorFileRequired           = "ErrorFileRequired"
	ReportSheetDocuments        = "ReportSheetDocuments"
	ReportSheetSummary          = "ReportSheetSummary"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Parse maps a client supplied code to a Locale. Matching is case-insensitive.
func Parse(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Supported {
		if v == l {
			return v, true
		}
	}
	return "", false
}

// Tag returns the BCP 47 tag used to look up messages.
// Dari is written as Afghan Persian, matching the fa-AF calendar and digits.
func (l Locale) Tag() language.Tag {
	switch l {
	case Pashto:
		return language.MustParse("ps")
	case Farsi:
		return language.Persian
	default:
		return language.MustParse("fa-AF")
	}
}

var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

// Clock formats t as HH:MM:SS with Eastern Arabic-Indic digits, as all three locales display time.
func (l Locale) Clock(t time.Time) string {
	return persianDigits.Replace(t.Format("15:04:05"))
}

// Translator looks up messages for a locale, falling back to a default.
type Translator struct {
	localizers map[Locale]*i18n.Localizer
	fallback   Locale
}

// NewTranslator loads the embedded message tables.
func NewTranslator(fallback Locale) (*Translator, error) {
	if _, ok := Parse(string(fallback)); !ok {
		return nil, fmt.Errorf("unsupported locale %q", fallback)
	}

	bundle := i18n.NewBundle(fallback.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFS.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("read message tables: %w", err)
	}
	for _, e := range entries {
		p := path.Join("messages", e.Name())
		b, err := messageFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(b, e.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
	}

	t := &Translator{localizers: make(map[Locale]*i18n.Localizer, len(Supported)), fallback: fallback}
	for _, l := range Supported {
		t.localizers[l] = i18n.NewLocalizer(bundle, l.Tag().String(), fallback.Tag().String())
	}
	return t, nil
}

// Default is the locale used when a request does not name one.
func (t *Translator) Default() Locale { return t.fallback }

// T renders message id in locale l. Unknown IDs render as the ID itself.
func (t *Translator) T(l Locale, id string, data map[string]any) string {
	loc, ok := t.localizers[l]
	if !ok {
		loc = t.localizers[t.fallback]
	}
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}
