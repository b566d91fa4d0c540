package i18n

import (
	"fmt"
	"strings"
	"time"
)

var arabicWeekdays = [...]string{
	"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatDate renders t as a full date: "Wednesday, November 19, 2025" in
// English, "الأربعاء، ١٩ نوفمبر ٢٠٢٥" in Arabic.
func (l Locale) FormatDate(t time.Time) string {
	if l != Arabic {
		return t.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("%s، %s %s %s",
		arabicWeekdays[t.Weekday()],
		ArabicDigits(fmt.Sprint(t.Day())),
		arabicMonths[t.Month()-1],
		ArabicDigits(fmt.Sprint(t.Year())))
}

// CountdownLabel titles the countdown with the launch day of target:
// "Countdown to Launch — Nov 20", "العد التنازلي حتى الإطلاق 20 نوفمبر".
// The day keeps Western digits in both locales.
func (l Locale) CountdownLabel(target time.Time) string {
	prefix := l.Strings().CountdownLabel
	if l != Arabic {
		return prefix + " — " + target.Format("Jan 2")
	}
	return fmt.Sprintf("%s %d %s", prefix, target.Day(), arabicMonths[target.Month()-1])
}

// ArabicDigits replaces ASCII digits with Arabic-Indic digits.
func ArabicDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = '٠' + (r - '0')
		}
		b.WriteRune(r)
	}
	return b.String()
}
