package slide

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"wrapped/internal/domain/record"
)

// memberSlide pairs an inclusion predicate with a slide builder. The deck is
// the fixed, product-defined order; predicates only decide presence.
type memberSlide struct {
	when  func(m record.Member, s record.CommunityStats) bool
	build func(m record.Member, s record.CommunityStats) Descriptor
}

func always(record.Member, record.CommunityStats) bool { return true }

// memberDeck is evaluated top to bottom; this order is a product decision and
// must not be derived or sorted.
var memberDeck = []memberSlide{
	{when: always, build: buildIntro},
	{when: always, build: buildVideo},
	{when: always, build: buildAttendance},
	{when: always, build: buildRhythm},
	{when: always, build: buildCoach},
	{
		when:  func(m record.Member, _ record.CommunityStats) bool { return m.HasBuddies() },
		build: buildBuddies,
	},
	{when: always, build: buildClassType},
	{when: always, build: buildSeasons},
	{
		when:  func(m record.Member, _ record.CommunityStats) bool { return m.Cancellations > 0 },
		build: buildCancellations,
	},
	{
		when: func(m record.Member, _ record.CommunityStats) bool {
			return m.HardestDay != "" && m.HardestDayCount > 0
		},
		build: buildHardestMoment,
	},
	{when: always, build: buildCommunity},
	{when: always, build: buildFeedback},
	{when: always, build: buildMemberOutro},
}

// BuildMemberDeck produces the ordered slide sequence for a member record.
// Total over any well-formed record: missing optional data only drops the
// corresponding slide, never fails.
func BuildMemberDeck(m record.Member, stats record.CommunityStats) []Descriptor {
	deck := make([]Descriptor, 0, len(memberDeck))
	for _, s := range memberDeck {
		if s.when(m, stats) {
			deck = append(deck, s.build(m, stats))
		}
	}
	return deck
}

func buildIntro(m record.Member, _ record.CommunityStats) Descriptor {
	return Descriptor{
		ID:         "intro",
		Background: BgBrand,
		Hero:       m.FirstName,
		Lead:       "Jouw",
		Sub:        "Wrapped 2025",
	}
}

func buildVideo(record.Member, record.CommunityStats) Descriptor {
	return Descriptor{
		ID:         "video",
		Background: BgDark,
		Hero:       "Video komt binnenkort",
		Note:       "Hier komt een speciale boodschap voor jou",
	}
}

func buildAttendance(m record.Member, s record.CommunityStats) Descriptor {
	weekly := math.Round(float64(m.Visits)/52*10) / 10
	avgWeekly := math.Round(s.AvgVisits/52*10) / 10
	diff := float64(m.Visits) - s.AvgVisits

	note := fmt.Sprintf("Dat is %sx per week (gemiddeld: %sx)", trimFloat(weekly), trimFloat(avgWeekly))
	if diff > 0 {
		note = fmt.Sprintf("Dat is %sx per week — %d meer dan gemiddeld! 💪", trimFloat(weekly), int(math.Round(diff)))
	}
	return Descriptor{
		ID:         "attendance",
		Background: BgTeal,
		Lead:       "Dit jaar kwam je",
		Hero:       strconv.Itoa(m.Visits),
		Sub:        "keer trainen",
		Note:       note,
	}
}

func buildRhythm(m record.Member, s record.CommunityStats) Descriptor {
	sameDay := strings.EqualFold(m.FavoriteDay, s.PopularDay)
	d := Descriptor{
		ID:         "rhythm",
		Background: BgYellow,
		Lead:       "Jouw vaste dag?",
		Hero:       m.FavoriteDay,
		Note:       dayMessage(m.FavoriteDay, sameDay),
	}
	if !sameDay {
		d.Footnote = "Populairst bij CFL: " + s.PopularDay
	}
	return d
}

func buildCoach(m record.Member, s record.CommunityStats) Descriptor {
	lead := "Je favoriete coach"
	note := "Die kent jouw squat depth inmiddels 😉"
	if m.CoachesPlural {
		lead = "Je favoriete coaches"
		note = "Zij kennen jouw squat depth inmiddels 😉"
	}
	sameCoach := s.PopularCoach != "" && strings.Contains(m.FavoriteCoaches, s.PopularCoach)
	if sameCoach {
		note = "Ook de populairste coach van CFL! 🏆"
	}
	d := Descriptor{
		ID:         "coach",
		Background: BgPurple,
		Lead:       lead,
		Hero:       m.FavoriteCoaches,
		Note:       note,
	}
	if !sameCoach {
		d.Footnote = "Populairst: " + s.PopularCoach
	}
	return d
}

func buildBuddies(m record.Member, _ record.CommunityStats) Descriptor {
	var ranking []RankedItem
	if m.Buddy1 != "" {
		ranking = append(ranking, RankedItem{Medal: "🥇", Name: m.Buddy1, Count: m.Buddy1Sessions})
	}
	if m.Buddy2 != "" {
		ranking = append(ranking, RankedItem{Medal: "🥈", Name: m.Buddy2, Count: m.Buddy2Sessions})
	}
	if m.Buddy3 != "" {
		ranking = append(ranking, RankedItem{Medal: "🥉", Name: m.Buddy3, Count: m.Buddy3Sessions})
	}
	return Descriptor{
		ID:         "buddies",
		Background: BgYellow,
		Lead:       "Jouw top training buddies",
		Ranking:    ranking,
		Footnote:   "Samen in de les = samen sterker 💪",
	}
}

func buildClassType(m record.Member, _ record.CommunityStats) Descriptor {
	return Descriptor{
		ID:         "lestype",
		Background: BgTeal,
		Lead:       "Jouw favoriete lestype",
		Hero:       m.FavoriteClassType,
		Note:       classTypeMessage(m.FavoriteClassType),
	}
}

func buildSeasons(m record.Member, s record.CommunityStats) Descriptor {
	topCaption := ""
	if strings.EqualFold(m.TopMonth, s.PopularMonth) {
		topCaption = "Net als de meeste leden!"
	}
	return Descriptor{
		ID:         "seasons",
		Background: BgBrand,
		Blocks: []Block{
			{Label: "Topmaand", Value: m.TopMonth + " 🔥", Caption: topCaption},
			{Label: "Rustigste maand", Value: m.QuietestMonth, Caption: "(vakantie telt niet mee 😄)"},
		},
	}
}

func buildCancellations(m record.Member, s record.CommunityStats) Descriptor {
	avg := int(math.Round(s.AvgCancellations))
	diff := float64(m.Cancellations) - s.AvgCancellations
	note := fmt.Sprintf("Minder dan gemiddeld (%d) — netjes! 👏", avg)
	if diff > 0 {
		note = fmt.Sprintf("Dat is %d meer dan gemiddeld (%d). Volgend jaar beter? 😉", int(math.Round(diff)), avg)
	}
	return Descriptor{
		ID:         "cancellations",
		Background: BgDark,
		Lead:       "En ja...",
		Hero:       strconv.Itoa(m.Cancellations) + "x",
		Sub:        "afgezegd",
		Note:       note,
	}
}

func buildHardestMoment(m record.Member, _ record.CommunityStats) Descriptor {
	d := Descriptor{
		ID:         "moeilijkste",
		Background: BgViolet,
		Lead:       "Jouw moeilijkste moment",
		Blocks: []Block{
			{Label: m.HardestDay, Value: fmt.Sprintf("%dx afgezegd", m.HardestDayCount)},
		},
	}
	if m.HardestTime != "" {
		d.Blocks = append(d.Blocks, Block{
			Label:   "Vooral om",
			Value:   m.HardestTime,
			Caption: fmt.Sprintf("(%dx)", m.HardestTimeCount),
		})
	}
	if m.NoShows > 0 {
		d.Footnote = fmt.Sprintf("En %dx niet komen opdagen... 👀", m.NoShows)
	}
	return d
}

func buildCommunity(m record.Member, s record.CommunityStats) Descriptor {
	return Descriptor{
		ID:         "community",
		Background: BgTeal,
		Lead:       "Je hoort bij de",
		Hero:       fmt.Sprintf("top %d%%", m.Percentile),
		Sub:        "meest actieve leden",
		Note: fmt.Sprintf("Samen kwamen %d CFL'ers dit jaar %s keer trainen",
			s.TotalMembers, formatThousands(m.CommunityVisits)),
	}
}

func buildFeedback(record.Member, record.CommunityStats) Descriptor {
	return Descriptor{
		ID:         "feedback",
		Background: BgPurple,
		Lead:       "Deel met ons!",
		Note:       "Vul in en ontvang daarna je social share afbeelding 📸",
		Blocks: []Block{
			{Label: "Grootste win van 2025", Value: "", Caption: "Mijn eerste muscle-up, 100kg deadlift..."},
			{Label: "Goed voornemen voor 2026", Value: "", Caption: "Elke week 3x trainen, handstand leren..."},
		},
	}
}

func buildMemberOutro(record.Member, record.CommunityStats) Descriptor {
	return Descriptor{
		ID:         "outro",
		Background: BgBrand,
		Lead:       "Dank je dat je deel bent van",
		Hero:       "CrossFit Leiden",
		Note:       "🎉 2026 = 10 jaar CFL! En dat gaan we vieren",
		Sub:        "Tot op de vloer! ❤️",
		Footnote:   "Data van 1 december 2024 t/m 30 november 2025",
	}
}

// trimFloat renders 3.0 as "3" and 3.5 as "3.5".
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatThousands renders 39326 as "39.326" (nl-NL grouping).
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
