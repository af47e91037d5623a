package domain

// HeatZone is a neighborhood with a measured temperature and an assigned risk.
type HeatZone struct {
	ID                 int       `json:"id" yaml:"id"`
	Name               string    `json:"name" yaml:"name"`
	TemperatureCelsius float64   `json:"temperature_celsius" yaml:"temperature_celsius"`
	Risk               RiskLevel `json:"risk" yaml:"risk"`
	ReportCount        int       `json:"report_count" yaml:"report_count"`
}

// DerivedRisk classifies the zone temperature with the legend thresholds.
func (z HeatZone) DerivedRisk() RiskLevel {
	return RiskForTemperature(z.TemperatureCelsius)
}

// RiskMismatch reports whether the assigned risk disagrees with the
// temperature thresholds. The assigned risk is authoritative.
func (z HeatZone) RiskMismatch() bool {
	return z.Risk != z.DerivedRisk()
}

// CoolingCenter is a place residents can go to cool down.
type CoolingCenter struct {
	ID               int            `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	Category         CenterCategory `json:"category" yaml:"category"`
	Address          string         `json:"address" yaml:"address"`
	DistanceKm       float64        `json:"distance_km" yaml:"distance_km"`
	Capacity         int            `json:"capacity" yaml:"capacity"`
	CurrentOccupancy int            `json:"current_occupancy" yaml:"current_occupancy"`
	Amenities        []string       `json:"amenities" yaml:"amenities"`
	OperatingHours   string         `json:"operating_hours" yaml:"operating_hours"`
	Status           CenterStatus   `json:"status" yaml:"status"`
	Phone            string         `json:"phone" yaml:"phone"`
}

// OccupancyPercent is the center's occupancy as a clamped percentage.
func (c CoolingCenter) OccupancyPercent() int {
	return OccupancyPercent(c.CurrentOccupancy, c.Capacity)
}

// NearCapacity reports whether occupancy exceeds NearCapacityPercent.
func (c CoolingCenter) NearCapacity() bool {
	return c.OccupancyPercent() > NearCapacityPercent
}

// OverCapacity reports whether more people are present than the center holds.
func (c CoolingCenter) OverCapacity() bool {
	return c.CurrentOccupancy > c.Capacity
}

// Tip is a single safety recommendation.
type Tip struct {
	Title            string     `json:"title" yaml:"title"`
	ShortDescription string     `json:"short_description" yaml:"short_description"`
	LongDetails      string     `json:"long_details" yaml:"long_details"`
	Importance       Importance `json:"importance" yaml:"importance"`
}

// TipCategory owns an ordered list of tips.
type TipCategory struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	ColorTag string `json:"color_tag" yaml:"color_tag"`
	Tips     []Tip  `json:"tips" yaml:"tips"`
}

// Language is a display language offered on the tips screen.
type Language struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Flag string `json:"flag" yaml:"flag"`
}

// Weather is the current-conditions banner on the heat map.
type Weather struct {
	TemperatureCelsius float64 `json:"temperature_celsius" yaml:"temperature_celsius"`
	FeelsLikeCelsius   float64 `json:"feels_like_celsius" yaml:"feels_like_celsius"`
	HumidityPercent    int     `json:"humidity_percent" yaml:"humidity_percent"`
	Location           string  `json:"location" yaml:"location"`
	LastUpdated        string  `json:"last_updated" yaml:"last_updated"`
}

// UserProfile is the resident shown on the profile screen.
type UserProfile struct {
	Name             string `json:"name" yaml:"name"`
	Location         string `json:"location" yaml:"location"`
	MemberSince      string `json:"member_since" yaml:"member_since"`
	ReportsSubmitted int    `json:"reports_submitted" yaml:"reports_submitted"`
	Volunteering     bool   `json:"volunteering" yaml:"volunteering"`
	EmergencyContact string `json:"emergency_contact" yaml:"emergency_contact"`
}

// AdminStats are the aggregate counters shown in admin mode.
type AdminStats struct {
	TotalReports     int `json:"total_reports" yaml:"total_reports"`
	ActiveAlerts     int `json:"active_alerts" yaml:"active_alerts"`
	VolunteersActive int `json:"volunteers_active" yaml:"volunteers_active"`
	CentersOpen      int `json:"centers_open" yaml:"centers_open"`
}
