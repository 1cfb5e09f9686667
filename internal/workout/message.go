package workout

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// reportKey is the catalog key and English text of the report template.
// Values are pre-formatted strings so the printer never localizes numbers.
const reportKey = "Training type: %s; Duration: %s h.; Distance: %s km; Avg. speed: %s km/h; Calories burned: %s."

// reportRussian is the template in the wording the tracker firmware prints.
const reportRussian = "Тип тренировки: %s; Длительность: %s ч.; Дистанция: %s км; Ср. скорость: %s км/ч; Потрачено ккал: %s."

// supportedLanguages lists report languages; the first entry is the fallback.
//
//nolint:gochecknoglobals // Read-only lookup table.
var supportedLanguages = []language.Tag{language.English, language.Russian}

//nolint:gochecknoglobals // Built once, read-only afterwards.
var (
	reportCatalog  = newReportCatalog()
	languageMatch  = language.NewMatcher(supportedLanguages)
	englishPrinter = message.NewPrinter(language.English, message.Catalog(reportCatalog))
)

func newReportCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	// SetString only fails on malformed messages; both templates are constants.
	_ = b.SetString(language.English, reportKey, reportKey)
	_ = b.SetString(language.Russian, reportKey, reportRussian)
	return b
}

// SupportedLanguages returns the languages a report can be rendered in.
func SupportedLanguages() []language.Tag {
	out := make([]language.Tag, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// MatchLanguage resolves a BCP 47 string such as "ru-RU" to a supported
// report language. Unparseable or unsupported input yields English.
func MatchLanguage(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	_, idx, conf := languageMatch.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supportedLanguages[idx]
}

// IsSupportedLanguage reports whether s names a language a report can be
// rendered in, ignoring region and script subtags.
func IsSupportedLanguage(s string) bool {
	tag, err := language.Parse(s)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	for _, supported := range supportedLanguages {
		if sb, _ := supported.Base(); sb == base {
			return true
		}
	}
	return false
}

// FormatValue renders a report number with ReportPrecision decimals and a
// "." separator, independent of locale.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', ReportPrecision, 64)
}

// Message renders the report with the English template.
func (r Report) Message() string {
	return r.render(englishPrinter)
}

// MessageFor renders the report in the closest supported language.
func (r Report) MessageFor(tag language.Tag) string {
	_, idx, conf := languageMatch.Match(tag)
	if conf == language.No || idx == 0 {
		return r.Message()
	}
	return r.render(message.NewPrinter(supportedLanguages[idx], message.Catalog(reportCatalog)))
}

func (r Report) render(p *message.Printer) string {
	return p.Sprintf(reportKey,
		r.KindName,
		FormatValue(r.DurationHours),
		FormatValue(r.DistanceKm),
		FormatValue(r.MeanSpeedKmh),
		FormatValue(r.CaloriesKcal),
	)
}
