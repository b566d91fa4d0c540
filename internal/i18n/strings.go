package i18n

import (
	"github.com/ShayCichocki/oulab/internal/countdown"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/pkg/models"
)

// Strings is the set of labels rendered by the dashboard.
type Strings struct {
	Title            string
	Subtitle         string
	CountdownLabel   string
	Launched         string
	OverallCard      string
	Phase1Card       string
	Phase2Card       string
	ProgressCaption  string
	BusTracks        string
	BusPreparation   string
	OperationalPlans string
	ControlPanel     string
	Details          string
	DetailsTitle     string
	Close            string
	Route            string
	Origin           string
	Destination      string
	Bus              string
	PurchaseDate     string
	ArrivalDate      string

	sliders  map[progress.Metric]string
	statuses map[models.TrackStatus]string
}

var english = Strings{
	Title:            "Oulab Dashboard",
	Subtitle:         "Instant view on project progress and tracks",
	CountdownLabel:   "Countdown to Launch",
	Launched:         "Launched!",
	OverallCard:      "Overall Project Progress",
	Phase1Card:       "Phase I — Preparation",
	Phase2Card:       "Phase II",
	ProgressCaption:  "PROGRESS",
	BusTracks:        "Bus Tracks",
	BusPreparation:   "Bus Preparation",
	OperationalPlans: "Operational & Executive Plans",
	ControlPanel:     "Control Panel",
	Details:          "Details",
	DetailsTitle:     "Details",
	Close:            "Close",
	Route:            "Route — China → Jeddah",
	Origin:           "China",
	Destination:      "Jeddah",
	Bus:              "Oulab Bus",
	PurchaseDate:     "Purchase Date",
	ArrivalDate:      "Arrival Date — Sept 7",
	sliders: map[progress.Metric]string{
		progress.MetricOverall: "Overall Progress",
		progress.MetricPhase1:  "Phase I Progress",
		progress.MetricPhase2:  "Phase II Progress",
		progress.MetricRoute:   "Bus Position to Jeddah",
	},
	statuses: map[models.TrackStatus]string{
		models.TrackStatusDone:       "Done",
		models.TrackStatusInProgress: "In Progress",
		models.TrackStatusNotStarted: "Not Started",
	},
}

var arabic = Strings{
	Title:            "لوحة مؤشرات أولاب",
	Subtitle:         "نظرة فورية على تقدم المشروع ومسارات العمل",
	CountdownLabel:   "العد التنازلي حتى الإطلاق",
	Launched:         "تم الإطلاق!",
	OverallCard:      "نسبة إنجاز مشروع أولاب",
	Phase1Card:       "المرحلة الأولى — الإعداد والتجهيز",
	Phase2Card:       "المرحلة الثانية",
	ProgressCaption:  "الإنجاز",
	BusTracks:        "مسارات الباص",
	BusPreparation:   "مرحلة تهيئة الباص",
	OperationalPlans: "مرحلة إعداد الخطط التشغيلية والتنفيذية",
	ControlPanel:     "لوحة التحكم (تفاعلية)",
	Details:          "التفاصيل",
	DetailsTitle:     "تفاصيل",
	Close:            "إغلاق",
	Route:            "خط الرحلة — الصين ← ميناء جدة",
	Origin:           "الصين",
	Destination:      "جدة",
	Bus:              "باص أولاب",
	PurchaseDate:     "تاريخ الشراء",
	ArrivalDate:      "تاريخ الوصول — 7 سبتمبر",
	sliders: map[progress.Metric]string{
		progress.MetricOverall: "إنجاز مشروع أولاب",
		progress.MetricPhase1:  "المرحلة الأولى — الإعداد والتجهيز",
		progress.MetricPhase2:  "المرحلة الثانية",
		progress.MetricRoute:   "موقع الباص باتجاه ميناء جدة",
	},
	statuses: map[models.TrackStatus]string{
		models.TrackStatusDone:       "مكتمل",
		models.TrackStatusInProgress: "قيد التنفيذ",
		models.TrackStatusNotStarted: "لم يبدأ",
	},
}

// Strings returns the label table for the locale. Unknown locales get English.
func (l Locale) Strings() Strings {
	if l == Arabic {
		return arabic
	}
	return english
}

// Slider returns the control-panel label for metric.
func (s Strings) Slider(metric progress.Metric) string {
	if label, ok := s.sliders[metric]; ok {
		return label
	}
	return string(metric)
}

// Status returns the display text for a track status.
func (s Strings) Status(status models.TrackStatus) string {
	if label, ok := s.statuses[status]; ok {
		return label
	}
	return string(status)
}

// Category returns the heading for a track category.
func (s Strings) Category(c models.Category) string {
	switch c {
	case models.CategoryPreparation:
		return s.BusPreparation
	case models.CategoryOperational:
		return s.OperationalPlans
	default:
		return string(c)
	}
}

// Countdown renders a countdown result, using the locale's elapsed marker.
func (s Strings) Countdown(r countdown.Result) string {
	if r.Elapsed {
		return s.Launched
	}
	return r.String()
}
