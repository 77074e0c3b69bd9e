// Package report localizes lesson titles and renders the plain-text report.
package report

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datekoans/internal/config"
	"github.com/tartampluch/go-datekoans/internal/runner"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message keys against the embedded locale bundle.
// It implements runner.Titler.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer

	// Languages lists the locale codes detected in the embedded files.
	Languages []string
}

// NewTranslator loads the embedded locales and selects the requested
// language, falling back to the default when it is unknown.
func NewTranslator(lang string) *Translator {
	tr := &Translator{bundle: i18n.NewBundle(language.English)}
	tr.bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return tr
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := tr.bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		tr.Languages = append(tr.Languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	if !tr.supports(lang) {
		slog.Warn(config.MsgLangFallback,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
		)
		lang = config.DefaultLanguage
	}
	tr.localizer = i18n.NewLocalizer(tr.bundle, lang, config.DefaultLanguage)
	return tr
}

func (tr *Translator) supports(lang string) bool {
	for _, l := range tr.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Msg translates a key, returning the key itself when no translation exists.
func (tr *Translator) Msg(key string) string {
	return tr.MsgData(key, nil)
}

// MsgData translates a key with template data.
func (tr *Translator) MsgData(key string, data map[string]any) string {
	if tr.localizer == nil {
		return key
	}
	msg, err := tr.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// Title returns the localized display title for a lesson slug.
func (tr *Translator) Title(slug string) string {
	return tr.Msg(config.TKeyLessonPrefix + slug)
}

// Render produces the plain-text report for a lesson run: a header, one line
// per lesson, check details for failures, and a summary line.
func Render(tr *Translator, results []runner.Result) string {
	var b strings.Builder
	b.WriteString(tr.Msg(config.TKeyReportHeader))
	b.WriteString("\n\n")

	passed := 0
	for _, res := range results {
		if res.Passed() {
			passed++
			b.WriteString(tr.MsgData(config.TKeyReportPass, map[string]any{"Title": res.Title}))
			b.WriteString("\n")
			continue
		}

		b.WriteString(tr.MsgData(config.TKeyReportFail, map[string]any{"Title": res.Title}))
		b.WriteString("\n")
		if res.Err != nil {
			b.WriteString(tr.MsgData(config.TKeyReportError, map[string]any{"Error": res.Err.Error()}))
			b.WriteString("\n")
		}
		for _, c := range res.Checks {
			if c.OK() {
				continue
			}
			b.WriteString(tr.MsgData(config.TKeyReportCheck, map[string]any{
				"Label": c.Label,
				"Got":   c.Got,
				"Want":  c.Want,
			}))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tr.MsgData(config.TKeyReportSummary, map[string]any{
		"Passed": passed,
		"Total":  len(results),
	}))
	b.WriteString("\n")
	return b.String()
}
