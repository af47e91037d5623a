package domain

import (
	"fmt"
	"strings"
)

// Display colors shared by risk, status, importance and severity badges.
const (
	colorRed     = "#DC2626"
	colorOrange  = "#EA580C"
	colorAmber   = "#D97706"
	colorGreen   = "#059669"
	colorNeutral = "#6B7280"
)

// RiskLevel is the heat risk assigned to a zone.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Heat risk thresholds in degrees Celsius.
const (
	HighRiskCelsius   = 40.0
	MediumRiskCelsius = 35.0
)

// RiskForTemperature classifies a temperature using the legend thresholds:
// >= 40°C high, >= 35°C medium, otherwise low.
func RiskForTemperature(celsius float64) RiskLevel {
	switch {
	case celsius >= HighRiskCelsius:
		return RiskHigh
	case celsius >= MediumRiskCelsius:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Color returns the badge color for the risk level.
func (r RiskLevel) Color() string {
	switch r {
	case RiskHigh:
		return colorRed
	case RiskMedium:
		return colorOrange
	case RiskLow:
		return colorGreen
	default:
		return colorNeutral
	}
}

// Label returns the user-facing risk text.
func (r RiskLevel) Label() string {
	switch r {
	case RiskHigh:
		return "High Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskLow:
		return "Low Risk"
	default:
		return "Unknown"
	}
}

// CenterCategory is the kind of cooling center, fixed when the catalog is built.
type CenterCategory string

const (
	CategoryShelter     CenterCategory = "shelter"
	CategoryPublicSpace CenterCategory = "public_space"
	CategoryTransit     CenterCategory = "transit"
	CategoryMedical     CenterCategory = "medical"
)

// Label returns the display name shown on the center card.
func (c CenterCategory) Label() string {
	switch c {
	case CategoryShelter:
		return "Cooling Shelter"
	case CategoryPublicSpace:
		return "Public AC Space"
	case CategoryTransit:
		return "Transit Cooling"
	case CategoryMedical:
		return "Medical Cooling"
	default:
		return "Other"
	}
}

// CenterStatus is the availability of a cooling center.
type CenterStatus string

const (
	StatusOpen    CenterStatus = "open"
	StatusCrowded CenterStatus = "crowded"
	StatusClosed  CenterStatus = "closed"
)

func (s CenterStatus) Color() string {
	switch s {
	case StatusOpen:
		return colorGreen
	case StatusCrowded:
		return colorOrange
	case StatusClosed:
		return colorRed
	default:
		return colorNeutral
	}
}

func (s CenterStatus) Label() string {
	switch s {
	case StatusOpen:
		return "Available"
	case StatusCrowded:
		return "Crowded"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Importance ranks a safety tip.
type Importance string

const (
	ImportanceCritical  Importance = "critical"
	ImportanceImportant Importance = "important"
	ImportanceHelpful   Importance = "helpful"
)

func (i Importance) Color() string {
	switch i {
	case ImportanceCritical:
		return colorRed
	case ImportanceImportant:
		return colorOrange
	case ImportanceHelpful:
		return colorGreen
	default:
		return colorNeutral
	}
}

func (i Importance) Label() string {
	switch i {
	case ImportanceCritical:
		return "Critical"
	case ImportanceImportant:
		return "Important"
	case ImportanceHelpful:
		return "Helpful"
	default:
		return ""
	}
}

// Severity is the single-choice urgency of an emergency report.
type Severity string

const (
	SeverityEmergency Severity = "emergency"
	SeverityUrgent    Severity = "urgent"
	SeverityModerate  Severity = "moderate"
	SeverityLow       Severity = "low"
)

// DefaultSeverity is the severity of a fresh report.
const DefaultSeverity = SeverityModerate

// Severities lists every severity in display order, most urgent first.
var Severities = []Severity{SeverityEmergency, SeverityUrgent, SeverityModerate, SeverityLow}

// ParseSeverity maps a severity id to its typed value.
func ParseSeverity(s string) (Severity, error) {
	level := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
	return level, nil
}

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityEmergency, SeverityUrgent, SeverityModerate, SeverityLow:
		return true
	default:
		return false
	}
}

func (s Severity) Label() string {
	switch s {
	case SeverityEmergency:
		return "Emergency"
	case SeverityUrgent:
		return "Urgent"
	case SeverityModerate:
		return "Moderate"
	case SeverityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

func (s Severity) Color() string {
	switch s {
	case SeverityEmergency:
		return colorRed
	case SeverityUrgent:
		return colorOrange
	case SeverityModerate:
		return colorAmber
	case SeverityLow:
		return colorGreen
	default:
		return colorNeutral
	}
}

// Description explains when to pick the severity.
func (s Severity) Description() string {
	switch s {
	case SeverityEmergency:
		return "Life-threatening situation"
	case SeverityUrgent:
		return "Needs immediate attention"
	case SeverityModerate:
		return "Concerning symptoms"
	case SeverityLow:
		return "Mild discomfort"
	default:
		return ""
	}
}

// SymptomID identifies a selectable heat-illness symptom.
type SymptomID string

const (
	SymptomDizziness   SymptomID = "dizziness"
	SymptomDehydration SymptomID = "dehydration"
	SymptomNausea      SymptomID = "nausea"
	SymptomWeakness    SymptomID = "weakness"
	SymptomHeadache    SymptomID = "headache"
	SymptomCramping    SymptomID = "cramping"
)

// Symptoms lists every symptom in display order.
var Symptoms = []SymptomID{
	SymptomDizziness, SymptomDehydration, SymptomNausea,
	SymptomWeakness, SymptomHeadache, SymptomCramping,
}

// Valid reports whether id is a known symptom.
func (id SymptomID) Valid() bool {
	for _, s := range Symptoms {
		if s == id {
			return true
		}
	}
	return false
}

func (id SymptomID) Label() string {
	switch id {
	case SymptomDizziness:
		return "Dizziness"
	case SymptomDehydration:
		return "Dehydration"
	case SymptomNausea:
		return "Nausea"
	case SymptomWeakness:
		return "Weakness"
	case SymptomHeadache:
		return "Headache"
	case SymptomCramping:
		return "Muscle Cramps"
	default:
		return string(id)
	}
}
