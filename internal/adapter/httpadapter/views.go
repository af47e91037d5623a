package httpadapter

import (
	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/couchcryptid/heatguard-service/internal/report"
	"github.com/couchcryptid/heatguard-service/internal/screen"
)

type zoneView struct {
	domain.HeatZone
	RiskColor    string           `json:"risk_color"`
	RiskLabel    string           `json:"risk_label"`
	DerivedRisk  domain.RiskLevel `json:"derived_risk"`
	RiskMismatch bool             `json:"risk_mismatch"`
}

func newZoneView(z domain.HeatZone) zoneView {
	return zoneView{
		HeatZone:     z,
		RiskColor:    z.Risk.Color(),
		RiskLabel:    z.Risk.Label(),
		DerivedRisk:  z.DerivedRisk(),
		RiskMismatch: z.RiskMismatch(),
	}
}

type centerView struct {
	domain.CoolingCenter
	CategoryLabel    string `json:"category_label"`
	StatusLabel      string `json:"status_label"`
	StatusColor      string `json:"status_color"`
	OccupancyPercent int    `json:"occupancy_percent"`
	NearCapacity     bool   `json:"near_capacity"`
	OverCapacity     bool   `json:"over_capacity"`
}

func newCenterView(c domain.CoolingCenter) centerView {
	return centerView{
		CoolingCenter:    c,
		CategoryLabel:    c.Category.Label(),
		StatusLabel:      c.Status.Label(),
		StatusColor:      c.Status.Color(),
		OccupancyPercent: c.OccupancyPercent(),
		NearCapacity:     c.NearCapacity(),
		OverCapacity:     c.OverCapacity(),
	}
}

type tipView struct {
	domain.Tip
	Key             string `json:"key"`
	ImportanceLabel string `json:"importance_label"`
	ImportanceColor string `json:"importance_color"`
}

type tipCategoryView struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	ColorTag string    `json:"color_tag"`
	Tips     []tipView `json:"tips"`
}

func newTipCategoryView(c domain.TipCategory) tipCategoryView {
	tips := make([]tipView, len(c.Tips))
	for i, t := range c.Tips {
		tips[i] = tipView{
			Tip:             t,
			Key:             screen.TipKey(c.ID, i),
			ImportanceLabel: t.Importance.Label(),
			ImportanceColor: t.Importance.Color(),
		}
	}
	return tipCategoryView{ID: c.ID, Title: c.Title, ColorTag: c.ColorTag, Tips: tips}
}

type symptomView struct {
	ID    domain.SymptomID `json:"id"`
	Label string           `json:"label"`
}

type severityView struct {
	ID          domain.Severity `json:"id"`
	Label       string          `json:"label"`
	Color       string          `json:"color"`
	Description string          `json:"description"`
	Default     bool            `json:"default"`
}

type reportView struct {
	ID string `json:"id"`
	report.Snapshot
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func newReportView(id string, snap report.Snapshot) reportView {
	v := reportView{ID: id, Snapshot: snap}
	if snap.Err != nil {
		v.Error = snap.Err.Error()
		v.ErrorKind = errorKind(snap.Err)
	}
	return v
}
