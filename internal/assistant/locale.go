package assistant

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The interpreter understands English and Spanish. Each language is one
// row in the locale table below; the matching routines never branch on
// the language themselves, so adding a language means adding a row, not
// duplicating control flow.
//
// All patterns are written against folded text (see fold), so they are
// spelled without diacritics: "gasté" matches via "gaste", "año" via
// "ano", "gráfico" via "grafico".

type window int

const (
	windowThisWeek window = iota
	windowLastWeek
	windowThisMonth
	windowLastMonth
	windowThisYear
	windowLastYear
)

type locale struct {
	code string

	// Month names and abbreviations in this language
	months map[string]time.Month

	// Named windows like "this week"
	windows map[window]*regexp.Regexp

	// Verbs and keywords that drive intent classification
	chart       *regexp.Regexp
	addVerb     *regexp.Regexp
	deleteVerb  *regexp.Regexp
	goalNoun    *regexp.Regexp
	goalVerb    *regexp.Regexp
	watchNoun   *regexp.Regexp
	insights    *regexp.Regexp
	mostSpent   *regexp.Regexp
	monthly     *regexp.Regexp
	yearNoun    *regexp.Regexp
	yearlyWith  *regexp.Regexp
	superlative *regexp.Regexp
	analytic    *regexp.Regexp

	// Period words, matched loosely so "500weekly" still works
	periodWeekly  *regexp.Regexp
	periodMonthly *regexp.Regexp
	periodYearly  *regexp.Regexp

	// Words that can never be a category
	stopword *regexp.Regexp
}

var english = &locale{
	code: "en",
	months: map[string]time.Month{
		"january": time.January, "february": time.February, "march": time.March,
		"april": time.April, "may": time.May, "june": time.June,
		"july": time.July, "august": time.August, "september": time.September,
		"october": time.October, "november": time.November, "december": time.December,
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "jun": time.June, "jul": time.July,
		"aug": time.August, "sep": time.September, "sept": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	},
	windows: map[window]*regexp.Regexp{
		windowThisWeek:  regexp.MustCompile(`\bthis\s+week\b`),
		windowLastWeek:  regexp.MustCompile(`\blast\s+week\b`),
		windowThisMonth: regexp.MustCompile(`\bthis\s+month\b`),
		windowLastMonth: regexp.MustCompile(`\blast\s+month\b`),
		windowThisYear:  regexp.MustCompile(`\bthis\s+year\b`),
		windowLastYear:  regexp.MustCompile(`\blast\s+year\b`),
	},
	chart:         regexp.MustCompile(`\b(chart|graph|trend|plot)\b`),
	addVerb:       regexp.MustCompile(`\b(add|spent|spend|add expense)\b`),
	deleteVerb:    regexp.MustCompile(`\b(delete|remove)\b`),
	goalNoun:      regexp.MustCompile(`\bgoal\b`),
	goalVerb:      regexp.MustCompile(`\b(set|create|add)\b`),
	watchNoun:     regexp.MustCompile(`\b(watch|alert|notify)\b`),
	insights:      regexp.MustCompile(`(insight|analysis|analy|ideas)`),
	mostSpent:     regexp.MustCompile(`\bmost\b[\s\S]*\b(spent|spending)\b|\b(spent|spending)\b[\s\S]*\bmost\b`),
	monthly:       regexp.MustCompile(`(summary|report|this month|month)\b`),
	yearNoun:      regexp.MustCompile(`\byear(ly)?\b`),
	yearlyWith:    regexp.MustCompile(`(summary|report|total)`),
	superlative:   regexp.MustCompile(`\b(most|top|highest|biggest|largest)\b`),
	analytic:      regexp.MustCompile(`\b(insight|summary|report)\b`),
	periodWeekly:  regexp.MustCompile(`weekly`),
	periodMonthly: regexp.MustCompile(`monthly|month`),
	periodYearly:  regexp.MustCompile(`yearly|annual|year`),
	stopword:      regexp.MustCompile(`^(watch|alert|notify|weekly|monthly|yearly|for|on|the|and)$`),
}

var spanish = &locale{
	code: "es",
	months: map[string]time.Month{
		"enero": time.January, "febrero": time.February, "marzo": time.March,
		"abril": time.April, "mayo": time.May, "junio": time.June,
		"julio": time.July, "agosto": time.August, "septiembre": time.September,
		"setiembre": time.September, "octubre": time.October,
		"noviembre": time.November, "diciembre": time.December,
		"ene": time.January, "abr": time.April, "ago": time.August, "dic": time.December,
	},
	windows: map[window]*regexp.Regexp{
		windowThisWeek:  regexp.MustCompile(`\best[ea]\s+semana\b`),
		windowLastWeek:  regexp.MustCompile(`\bla\s+semana\s+pasada\b`),
		windowThisMonth: regexp.MustCompile(`\best[ea]\s+mes\b`),
		windowLastMonth: regexp.MustCompile(`\bel\s+mes\s+pasado\b`),
		windowThisYear:  regexp.MustCompile(`\best[ea]\s+ano\b`),
		windowLastYear:  regexp.MustCompile(`\bel\s+ano\s+pasado\b`),
	},
	chart:         regexp.MustCompile(`\bgrafic[oa]\b`),
	addVerb:       regexp.MustCompile(`\b(agrega|anade|sumar|registrar|gaste)\b`),
	deleteVerb:    regexp.MustCompile(`\b(eliminar|borrar|quitar)\b`),
	goalNoun:      regexp.MustCompile(`\bmeta\b`),
	goalVerb:      regexp.MustCompile(`\b(crear|establecer|agrega|anade)\b`),
	watchNoun:     regexp.MustCompile(`\b(alerta|aviso)\b`),
	insights:      regexp.MustCompile(`(analisis|ideas)`),
	mostSpent:     regexp.MustCompile(`\bmas\s+gastad`),
	monthly:       regexp.MustCompile(`\b(resumen|reporte|este\s+mes|mes)\b`),
	yearNoun:      regexp.MustCompile(`\bano\b`),
	yearlyWith:    regexp.MustCompile(`(resumen|reporte|total)`),
	superlative:   regexp.MustCompile(`\bmas\b`),
	analytic:      regexp.MustCompile(`\b(resumen|reporte)\b`),
	periodWeekly:  regexp.MustCompile(`semanal`),
	periodMonthly: regexp.MustCompile(`mensual|mes`),
	periodYearly:  regexp.MustCompile(`anual|ano`),
	stopword:      regexp.MustCompile(`^(alerta|aviso|semanal|mensual|anual|para)$`),
}

var locales = []*locale{english, spanish}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases the text and strips diacritics so that accented and
// unaccented spellings match the same patterns.
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}

	return folded
}

// matchAny reports whether the selected pattern of any locale matches
// the folded query.
func matchAny(q string, sel func(*locale) *regexp.Regexp) bool {
	for _, l := range locales {
		if re := sel(l); re != nil && re.MatchString(q) {
			return true
		}
	}

	return false
}

// monthFromWord resolves a folded word to a month, trying every locale.
func monthFromWord(word string) (time.Month, bool) {
	for _, l := range locales {
		if m, ok := l.months[word]; ok {
			return m, true
		}
	}

	return 0, false
}

// isStopword reports whether the folded word is a keyword in any
// locale and therefore can never be a category name.
func isStopword(word string) bool {
	for _, l := range locales {
		if l.stopword.MatchString(word) {
			return true
		}
	}

	return false
}
