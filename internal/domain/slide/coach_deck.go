package slide

import (
	"fmt"
	"strconv"

	"wrapped/internal/domain/record"
)

// coachDeck mirrors memberDeck for coach records. All coach slides are
// unconditional; the fans list just shrinks with missing regulars.
var coachDeck = []func(c record.Coach) Descriptor{
	buildCoachIntro,
	buildClassesGiven,
	buildMembersTrained,
	buildTiming,
	buildSpecialty,
	buildBusiestClass,
	buildFans,
	buildCoachOutro,
}

// BuildCoachDeck produces the ordered slide sequence for a coach record.
func BuildCoachDeck(c record.Coach) []Descriptor {
	deck := make([]Descriptor, 0, len(coachDeck))
	for _, build := range coachDeck {
		deck = append(deck, build(c))
	}
	return deck
}

func buildCoachIntro(c record.Coach) Descriptor {
	return Descriptor{
		ID:         "intro",
		Background: BgDark,
		Lead:       "Coach Wrapped 2025",
		Hero:       c.FirstName,
		Note:       "Bedankt voor alles dit jaar! 💪",
	}
}

func buildClassesGiven(c record.Coach) Descriptor {
	return Descriptor{
		ID:         "lessen",
		Background: BgBrand,
		Lead:       "Dit jaar gaf jij",
		Hero:       strconv.Itoa(c.ClassesGiven),
		Sub:        "lessen",
		Note:       fmt.Sprintf("Daarmee train je in de top %d%% van alle coaches!", c.Percentile),
	}
}

func buildMembersTrained(c record.Coach) Descriptor {
	return Descriptor{
		ID:         "leden",
		Background: BgTeal,
		Lead:       "Je trainde",
		Hero:       strconv.Itoa(c.MembersTrained),
		Sub:        "leden",
		Blocks: []Block{
			{Label: "unieke leden", Value: strconv.Itoa(c.UniqueMembers)},
			{Label: "gem. per les", Value: trimFloat(c.AvgPerClass)},
		},
	}
}

func buildTiming(c record.Coach) Descriptor {
	d := Descriptor{
		ID:         "timing",
		Background: BgViolet,
		Lead:       "Jouw favoriete moment",
		Blocks: []Block{
			{Label: c.FavoriteDay, Value: fmt.Sprintf("%dx coaching", c.FavoriteDayCount)},
			{Label: c.FavoriteTime, Value: fmt.Sprintf("%dx op dit tijdstip", c.FavoriteTimeCount)},
		},
	}
	// Only call out a chronotype when it is pronounced.
	if c.EarlyBirdPercentage > 40 || c.NightOwlPercentage > 40 {
		if c.EarlyBirdPercentage > c.NightOwlPercentage {
			d.Footnote = fmt.Sprintf("🌅 Early bird! %d%% ochtendlessen", c.EarlyBirdPercentage)
		} else {
			d.Footnote = fmt.Sprintf("🌙 Night owl! %d%% avondlessen", c.NightOwlPercentage)
		}
	}
	return d
}

func buildSpecialty(c record.Coach) Descriptor {
	return Descriptor{
		ID:         "lestype",
		Background: BgOrange,
		Lead:       "Jouw specialty",
		Hero:       c.TopClassType,
		Sub:        fmt.Sprintf("%dx gegeven", c.TopClassTypeCount),
		Blocks: []Block{
			{Label: "Top maand", Value: c.TopMonth, Caption: fmt.Sprintf("%d lessen", c.TopMonthCount)},
		},
	}
}

func buildBusiestClass(c record.Coach) Descriptor {
	return Descriptor{
		ID:         "drukste",
		Background: BgPink,
		Lead:       "Je drukste les",
		Hero:       strconv.Itoa(c.BusiestClassAttendees),
		Sub:        "deelnemers",
		Blocks: []Block{
			{Label: c.BusiestClassName, Value: c.BusiestClassDate, Caption: c.BusiestClassTime},
		},
	}
}

func buildFans(c record.Coach) Descriptor {
	var ranking []RankedItem
	if c.Regular1 != "" {
		ranking = append(ranking, RankedItem{Medal: "🥇", Name: c.Regular1, Count: c.Regular1Count})
	}
	if c.Regular2 != "" {
		ranking = append(ranking, RankedItem{Medal: "🥈", Name: c.Regular2, Count: c.Regular2Count})
	}
	if c.Regular3 != "" {
		ranking = append(ranking, RankedItem{Medal: "🥉", Name: c.Regular3, Count: c.Regular3Count})
	}
	return Descriptor{
		ID:         "fans",
		Background: BgPlum,
		Lead:       "Jouw biggest fans",
		Ranking:    ranking,
	}
}

func buildCoachOutro(c record.Coach) Descriptor {
	return Descriptor{
		ID:         "outro",
		Background: BgBrand,
		Lead:       "Bedankt voor je inzet,",
		Hero:       c.FirstName + "!",
		Note:       "🎉 2026 = 10 jaar CFL! En dat gaan we vieren",
		Sub:        "Op naar nog een mooi jaar! ❤️",
	}
}
