package prepready

import (
	"fmt"
	"strings"
	"time"
)

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// ParseLanguage defaults to English for anything that is not Arabic.
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(Arabic)) {
		return Arabic
	}
	return English
}

const (
	UnavailableText   = "Prep time unavailable"
	UnavailableTextAr = "وقت التحضير غير متاح"
)

func FormatResult(res Result, lang Language) string {
	switch res.OptionType {
	case OptionFixed:
		return minutesLabel(res.PrepTimeMinutes, lang)
	case OptionRange:
		if lang == Arabic {
			return fmt.Sprintf("%d-%d دقيقة", res.MaxMinutes, res.MinMinutes)
		}
		return fmt.Sprintf("%d-%d mins", res.MinMinutes, res.MaxMinutes)
	case OptionCutoff:
		if res.IsNextDay {
			if lang == Arabic {
				return "جاهز غداً عند " + res.ReadyTime
			}
			return "Ready tomorrow at " + res.ReadyTime
		}
		if lang == Arabic {
			return "جاهز اليوم عند " + res.ReadyTime
		}
		return "Ready today at " + res.ReadyTime
	}
	return unavailable(lang)
}

func minutesLabel(n int, lang Language) string {
	if lang == Arabic {
		return fmt.Sprintf("%d دقيقة", n)
	}
	return fmt.Sprintf("%d mins", n)
}

func unavailable(lang Language) string {
	if lang == Arabic {
		return UnavailableTextAr
	}
	return UnavailableText
}

// Describe summarizes a config for offer listings, independent of any order time.
func Describe(cfg Config, lang Language) string {
	if err := Validate(cfg); err != nil {
		return unavailable(lang)
	}

	switch cfg.OptionType {
	case OptionFixed:
		return formatDuration(cfg.PrepTimeMinutes, lang)
	case OptionRange:
		return formatDuration(cfg.PrepTimeMinMinutes, lang) + " - " + formatDuration(cfg.PrepTimeMaxMinutes, lang)
	case OptionCutoff:
		rule, _ := cfg.cutoffRule()
		if lang == Arabic {
			return fmt.Sprintf("جاهز بحلول %s (طلبات قبل %s)", rule.beforeReady, rule.cutoff)
		}
		return fmt.Sprintf("Ready by %s (orders before %s)", rule.beforeReady, rule.cutoff)
	}
	return unavailable(lang)
}

func formatDuration(mins int, lang Language) string {
	hours, rest := mins/60, mins%60
	if lang == Arabic {
		if hours > 0 {
			return fmt.Sprintf("%dس %dد", hours, rest)
		}
		return fmt.Sprintf("%dد", rest)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dm", rest)
}

// Preview is the advisory, display-only view of a ready time.
type Preview struct {
	Available       bool       `json:"available"`
	Text            string     `json:"text"`
	PrepTimeMinutes int        `json:"prep_time_minutes,omitempty"`
	ReadyAt         *time.Time `json:"ready_at,omitempty"`
	Timezone        string     `json:"timezone"`
}

// NewPreview never fails: a broken config yields the placeholder text so browsing
// is not blocked. Orders must go through Compute instead.
func NewPreview(cfg Config, zone string, now time.Time, lang Language) Preview {
	res, err := Compute(cfg, zone, now)
	if err != nil {
		return Preview{Text: unavailable(lang), Timezone: zone}
	}
	readyAt := res.ReadyAt
	return Preview{
		Available:       true,
		Text:            FormatResult(res, lang),
		PrepTimeMinutes: res.PrepTimeMinutes,
		ReadyAt:         &readyAt,
		Timezone:        zone,
	}
}
