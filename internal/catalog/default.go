package catalog

import "github.com/couchcryptid/heatguard-service/internal/domain"

// Default returns the built-in HeatGuard data set for Delhi NCR. Each call
// returns fresh slices, so callers may not affect one another.
func Default() *Catalog {
	return &Catalog{
		Weather: domain.Weather{
			TemperatureCelsius: 42,
			FeelsLikeCelsius:   47,
			HumidityPercent:    65,
			Location:           "Delhi, India",
			LastUpdated:        "2 mins ago",
		},
		Zones: []domain.HeatZone{
			{ID: 1, Name: "Sector 15", TemperatureCelsius: 45, Risk: domain.RiskHigh, ReportCount: 12},
			{ID: 2, Name: "Old City", TemperatureCelsius: 43, Risk: domain.RiskHigh, ReportCount: 8},
			{ID: 3, Name: "Tech Park", TemperatureCelsius: 38, Risk: domain.RiskMedium, ReportCount: 3},
			{ID: 4, Name: "Green Valley", TemperatureCelsius: 35, Risk: domain.RiskLow, ReportCount: 1},
		},
		Centers: []domain.CoolingCenter{
			{
				ID: 1, Name: "City Community Center", Category: domain.CategoryShelter,
				Address: "Sector 15, Block A", DistanceKm: 0.5, Capacity: 150, CurrentOccupancy: 45,
				Amenities:      []string{"AC", "Water", "Medical Aid", "Food"},
				OperatingHours: "24/7", Status: domain.StatusOpen, Phone: "+91-9876543210",
			},
			{
				ID: 2, Name: "Central Mall", Category: domain.CategoryPublicSpace,
				Address: "Main Market Road", DistanceKm: 1.2, Capacity: 300, CurrentOccupancy: 120,
				Amenities:      []string{"AC", "Water", "Restrooms", "Food Court"},
				OperatingHours: "10 AM - 10 PM", Status: domain.StatusOpen, Phone: "+91-9876543211",
			},
			{
				ID: 3, Name: "Metro Station", Category: domain.CategoryTransit,
				Address: "Central Metro Station", DistanceKm: 0.8, Capacity: 200, CurrentOccupancy: 180,
				Amenities:      []string{"AC", "Water", "Restrooms"},
				OperatingHours: "5 AM - 11 PM", Status: domain.StatusCrowded, Phone: "+91-9876543212",
			},
			{
				ID: 4, Name: "Public Library", Category: domain.CategoryShelter,
				Address: "Knowledge Park", DistanceKm: 2.1, Capacity: 80, CurrentOccupancy: 25,
				Amenities:      []string{"AC", "Water", "WiFi", "Reading Space"},
				OperatingHours: "9 AM - 7 PM", Status: domain.StatusOpen, Phone: "+91-9876543213",
			},
			{
				ID: 5, Name: "Hospital Emergency Wing", Category: domain.CategoryMedical,
				Address: "City Hospital Complex", DistanceKm: 1.8, Capacity: 50, CurrentOccupancy: 10,
				Amenities:      []string{"AC", "Medical Care", "Water", "Emergency Care"},
				OperatingHours: "24/7", Status: domain.StatusOpen, Phone: "+91-9876543214",
			},
		},
		TipCategories: defaultTips(),
		Languages: []domain.Language{
			{Code: "en", Name: "English", Flag: "🇬🇧"},
			{Code: "hi", Name: "हिंदी", Flag: "🇮🇳"},
			{Code: "te", Name: "తెలుగు", Flag: "🇮🇳"},
			{Code: "ta", Name: "தமிழ்", Flag: "🇮🇳"},
		},
		Profile: domain.UserProfile{
			Name:             "Priya Sharma",
			Location:         "Sector 15, Gurgaon",
			MemberSince:      "March 2024",
			ReportsSubmitted: 12,
			Volunteering:     true,
			EmergencyContact: "+91-9876543210",
		},
		AdminStats: domain.AdminStats{
			TotalReports:     1247,
			ActiveAlerts:     8,
			VolunteersActive: 156,
			CentersOpen:      18,
		},
		EmergencyNumber: "108",
	}
}

func defaultTips() []domain.TipCategory {
	return []domain.TipCategory{
		{
			ID: "prevention", Title: "Prevention", ColorTag: "#EA580C",
			Tips: []domain.Tip{
				{
					Title:            "Stay Hydrated",
					ShortDescription: "Drink water regularly, even if you don't feel thirsty. Aim for 8-10 glasses per day.",
					LongDetails:      "Avoid alcohol and caffeine as they can dehydrate you. Add a pinch of salt to your water to replace electrolytes.",
					Importance:       domain.ImportanceCritical,
				},
				{
					Title:            "Dress Appropriately",
					ShortDescription: "Wear light-colored, loose-fitting, breathable clothing.",
					LongDetails:      "Cotton fabrics work best. Cover your head and wear sunglasses when outdoors.",
					Importance:       domain.ImportanceImportant,
				},
				{
					Title:            "Avoid Peak Hours",
					ShortDescription: "Stay indoors between 12 PM and 4 PM when the sun is strongest.",
					LongDetails:      "If you must go out, seek shade and take frequent breaks in cool areas.",
					Importance:       domain.ImportanceCritical,
				},
				{
					Title:            "Cool Your Body",
					ShortDescription: "Take cool showers, use damp towels, or apply cold packs to pulse points.",
					LongDetails:      "Focus on wrists, neck, and ankles where blood vessels are close to the skin.",
					Importance:       domain.ImportanceHelpful,
				},
			},
		},
		{
			ID: "home", Title: "Home Safety", ColorTag: "#059669",
			Tips: []domain.Tip{
				{
					Title:            "Create Cross-Ventilation",
					ShortDescription: "Open windows on opposite sides of your home to create airflow.",
					LongDetails:      "Use fans to push hot air out and pull cool air in. Close curtains during the day.",
					Importance:       domain.ImportanceImportant,
				},
				{
					Title:            "Use Cooling Techniques",
					ShortDescription: "Place wet towels over chairs, use ice in front of fans, or freeze water bottles.",
					LongDetails:      "Spray water on the floor and let it evaporate. Sleep on the floor if upper floors are too hot.",
					Importance:       domain.ImportanceHelpful,
				},
				{
					Title:            "Avoid Heat Sources",
					ShortDescription: "Don't use ovens, dryers, or other heat-generating appliances during hot hours.",
					LongDetails:      "Cook early morning or late evening. Unplug electronics that generate heat.",
					Importance:       domain.ImportanceImportant,
				},
			},
		},
		{
			ID: "symptoms", Title: "Warning Signs", ColorTag: "#DC2626",
			Tips: []domain.Tip{
				{
					Title:            "Heat Exhaustion Signs",
					ShortDescription: "Heavy sweating, weakness, nausea, headache, muscle cramps.",
					LongDetails:      "Move to a cool place immediately, remove excess clothing, and apply cool water to skin.",
					Importance:       domain.ImportanceCritical,
				},
				{
					Title:            "Heat Stroke Emergency",
					ShortDescription: "High body temperature, hot/dry skin, rapid pulse, confusion.",
					LongDetails:      "Call emergency services immediately (108). This is life-threatening and requires immediate medical attention.",
					Importance:       domain.ImportanceCritical,
				},
				{
					Title:            "Dehydration Warning",
					ShortDescription: "Thirst, dry mouth, little or no urination, dizziness.",
					LongDetails:      "Drink water slowly and steadily. Seek medical help if symptoms persist.",
					Importance:       domain.ImportanceImportant,
				},
			},
		},
		{
			ID: "vulnerable", Title: "Vulnerable Groups", ColorTag: "#7C3AED",
			Tips: []domain.Tip{
				{
					Title:            "Elderly Care",
					ShortDescription: "Older adults are at higher risk and may not feel heat as acutely.",
					LongDetails:      "Check on elderly neighbors regularly. Ensure they have access to air conditioning or cooling centers.",
					Importance:       domain.ImportanceCritical,
				},
				{
					Title:            "Children & Infants",
					ShortDescription: "Young children cannot regulate body temperature effectively.",
					LongDetails:      "Never leave children in vehicles. Dress them in minimal, light clothing. Offer water frequently.",
					Importance:       domain.ImportanceCritical,
				},
				{
					Title:            "Chronic Conditions",
					ShortDescription: "People with heart disease, diabetes, or taking medications need extra care.",
					LongDetails:      "Consult your doctor about heat precautions. Keep medications in cool, dry places.",
					Importance:       domain.ImportanceImportant,
				},
			},
		},
	}
}
