package dataset

import "wrapped/internal/domain/record"

// SampleCatalog returns a small synthetic catalog for development and tests,
// used when the real dataset files are absent outside production. The real
// datasets are produced offline and never checked in.
func SampleCatalog() *Catalog {
	members := map[string]record.Member{
		"AB12": {
			RegistrationNumber: 1042,
			FirstName:          "Kim",
			FullName:           "Kim de Vries",
			Code:               "AB12",
			Visits:             120,
			Cancellations:      14,
			FavoriteCoaches:    "Sanne",
			FavoriteDay:        "woensdag",
			TopMonth:           "januari",
			QuietestMonth:      "augustus",
			FirstVisit:         "2025-01-06",
			Percentile:         8,
			Buddy1:             "Daan",
			Buddy1Sessions:     42,
			Buddy2:             "Lotte",
			Buddy2Sessions:     31,
			FavoriteClassType:  "CrossFit",
			CommunityVisits:    39326,
			HardestDay:         "maandag",
			HardestDayCount:    6,
			HardestTime:        "07:00",
			HardestTimeCount:   4,
			NoShows:            2,
		},
		"CD34": {
			RegistrationNumber: 2077,
			FirstName:          "Jeroen",
			FullName:           "Jeroen Bakker",
			Code:               "CD34",
			Visits:             61,
			FavoriteCoaches:    "Mark & Sanne",
			CoachesPlural:      true,
			FavoriteDay:        "zaterdag",
			TopMonth:           "maart",
			QuietestMonth:      "juli",
			FirstVisit:         "2025-02-11",
			Percentile:         34,
			FavoriteClassType:  "Intensity",
			CommunityVisits:    39326,
		},
	}
	coaches := map[string]record.Coach{
		"COACH1": {
			Name:                  "Sanne Visser",
			FirstName:             "Sanne",
			Code:                  "COACH1",
			ClassesGiven:          312,
			MembersTrained:        4120,
			UniqueMembers:         286,
			AvgPerClass:           13.2,
			FavoriteDay:           "woensdag",
			FavoriteDayCount:      74,
			FavoriteTime:          "09:00",
			FavoriteTimeCount:     58,
			TopMonth:              "januari",
			TopMonthCount:         35,
			TopClassType:          "CrossFit",
			TopClassTypeCount:     190,
			BusiestClassName:      "CFL TRAINING",
			BusiestClassDate:      "6 januari 2025",
			BusiestClassTime:      "09:00",
			BusiestClassAttendees: 32,
			Regular1:              "Kim",
			Regular1Count:         61,
			Regular2:              "Daan",
			Regular2Count:         49,
			Regular3:              "Lotte",
			Regular3Count:         44,
			EarlyBirdClasses:      180,
			EarlyBirdPercentage:   58,
			NightOwlClasses:       70,
			NightOwlPercentage:    22,
			Percentile:            10,
		},
	}
	stats := record.CommunityStats{
		AvgVisits:        82,
		AvgCancellations: 31,
		PopularDay:       "woensdag",
		PopularCoach:     "Sanne",
		PopularMonth:     "januari",
		TotalMembers:     480,
		Highlights: record.Highlights{
			TotalVisits:            39326,
			TotalMembers:           480,
			TopClass:               "CFL Training",
			TopClassVisits:         25000,
			FavoriteDay:            "Woensdag",
			FavoriteDayCount:       8500,
			FavoriteTime:           "09:00",
			EarlyBirds:             12000,
			NightOwls:              8000,
			BusiestDay:             "6 januari 2025",
			BusiestDayCount:        250,
			QuietestDay:            "25 december 2025",
			QuietestDayCount:       45,
			BusiestClass:           "CFL TRAINING",
			BusiestClassDate:       "6 januari 2025",
			BusiestClassTime:       "09:00",
			BusiestClassAttendees:  32,
			BuddyDuos:              450,
			StrongestBuddySessions: 97,
			Cancellations:          15000,
		},
	}
	return New(members, coaches, stats)
}
