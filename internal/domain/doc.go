// Package domain models the HeatGuard civic heat-safety data set and the
// emergency report a resident composes when someone shows heat-illness
// symptoms.
//
// # Catalogs
//
// Heat zones, cooling centers and safety tips are static catalogs: loaded
// once at startup and never mutated by clients. Filtering is a pure function
// of (catalog, filter key) and is fail-open, so an unrecognized key returns
// the catalog unchanged rather than an empty list:
//
//	Cooling centers:  all | shelter | public (public space + transit) | medical
//	Heat zones:       all | high | medium | low
//
// Derived display values:
//
//	Occupancy percent = round(current / capacity * 100), clamped to [0, 100].
//	Near capacity when the percent exceeds 80. Over capacity (current > capacity)
//	is reported separately so operators can alert on bad occupancy feeds.
//
// Heat risk thresholds (used by the on-screen legend):
//
//	high >= 40°C | medium >= 35°C | low < 35°C
//
// Zone risk is stored as assigned by the data owner. [HeatZone.DerivedRisk]
// and [HeatZone.RiskMismatch] expose the threshold view without overriding it.
//
// # Selection
//
// Two selection primitives exist and are kept separate:
//
//	Toggle-select   [Toggle]    repeating the active key clears it
//	Exclusive-select [Exclusive] exactly one value is always active
//
// # Emergency reports
//
// An [EmergencyReport] carries a multi-select symptom set, a single severity
// (default moderate), optional free text and a display-only location label.
// Submission requires at least one symptom ([ErrNoSymptoms]). Dispatch to
// responders goes through the [Dispatcher] port; the report session state
// machine lives in package report.
package domain
