package slide

import "strings"

// dayMessages maps a favourite training day to its slide copy. Used when the
// member's day differs from the community's most popular one.
var dayMessages = map[string]string{
	"maandag":   "Sterk de week in",
	"dinsdag":   "Dinsdag = gains day",
	"woensdag":  "Midden in de week. Slimme keuze.",
	"donderdag": "Bijna weekend, maar eerst knallen",
	"vrijdag":   "Weekend warrior style",
	"zaterdag":  "Uitslapen en dan knallen",
	"zondag":    "Zondag = jouw dag",
}

// dayMessage returns the copy for the rhythm slide.
func dayMessage(day string, matchesPopular bool) string {
	if matchesPopular {
		return "Net als de meeste CFL'ers!"
	}
	if msg, ok := dayMessages[strings.ToLower(day)]; ok {
		return msg
	}
	return "Jouw ritme, jouw regels."
}

// classTypeMessage returns the copy for the favourite-class-type slide.
func classTypeMessage(classType string) string {
	switch {
	case classType == "CrossFit":
		return "De basis, altijd goed!"
	case classType == "Intensity":
		return "Extra gas geven 🔥"
	case classType == "Running" || classType == "Engine":
		return "Kilometers maken!"
	case strings.Contains(classType, "Hyrox"):
		return "Race ready! 🏃"
	case classType == "Focus":
		return "Skills sharpenen"
	case classType == "Flex Friday":
		return "Flexibel de week uit"
	case classType == "GetShredded":
		return "Shredded worden! 💪"
	case strings.Contains(classType, "28 Day"):
		return "28 dagen knallen!"
	case classType == "Teens":
		return "De toekomst van CFL!"
	case strings.Contains(classType, "BUILD") || classType == "Strongman":
		return "Sterk worden 💪"
	case strings.Contains(classType, "Oly") || classType == "Weightlifting":
		return "Heavy lifting! 🏋️"
	default:
		return "Lekker variëren!"
	}
}
