package imaging

import (
	"errors"
	"fmt"
	"strconv"

	"wrapped/internal/domain/record"
	"wrapped/internal/domain/slide"
)

// ErrUnknownSlide is returned when the requested community slide number is
// out of range.
var ErrUnknownSlide = errors.New("unknown community slide")

// CommunitySlideCount is the number of gym-wide recap slides, numbered 1..N.
const CommunitySlideCount = 6

// CommunitySlide renders one of the gym-wide recap slides. Slides are
// numbered from 1; out-of-range numbers return ErrUnknownSlide.
func (r *Renderer) CommunitySlide(n int, stats record.CommunityStats, top []record.TopCoach, f Format) ([]byte, error) {
	h := stats.Highlights
	var d slide.Descriptor
	switch n {
	case 1:
		d = slide.Descriptor{
			ID:         "community-intro",
			Background: slide.BgBrand,
			Lead:       "Samen trainden we in 2025",
			Hero:       groupThousands(h.TotalVisits),
			Sub:        "keer",
			Note:       fmt.Sprintf("Met %s leden die samen de gym op z'n kop zetten", groupThousands(h.TotalMembers)),
			Footnote:   "#2025wrapped",
		}
	case 2:
		d = slide.Descriptor{
			ID:         "community-les",
			Background: slide.BgTeal,
			Lead:       "De populairste les van het jaar",
			Hero:       h.TopClass,
			Sub:        fmt.Sprintf("%s keer bezocht", groupThousands(h.TopClassVisits)),
			Footnote:   "#2025wrapped",
		}
	case 3:
		d = slide.Descriptor{
			ID:         "community-dagen",
			Background: slide.BgPurple,
			Lead:       "Drukste en rustigste dag",
			Blocks: []slide.Block{
				{Label: "Drukste dag", Value: h.BusiestDay, Caption: groupThousands(h.BusiestDayCount) + " bezoeken"},
				{Label: "Rustigste dag", Value: h.QuietestDay, Caption: groupThousands(h.QuietestDayCount) + " bezoeken"},
			},
			Footnote: "#2025wrapped",
		}
	case 4:
		d = slide.Descriptor{
			ID:         "community-tijden",
			Background: slide.BgDark,
			Lead:       "Vroege vogels vs nachtuilen",
			Blocks: []slide.Block{
				{Label: "Early birds (voor 8:00)", Value: groupThousands(h.EarlyBirds)},
				{Label: "Night owls (na 20:00)", Value: groupThousands(h.NightOwls)},
			},
			Note:     fmt.Sprintf("Favoriete tijdstip van de gym: %s", h.FavoriteTime),
			Footnote: "#2025wrapped",
		}
	case 5:
		d = slide.Descriptor{
			ID:         "community-buddies",
			Background: slide.BgPink,
			Lead:       "Gym buddies",
			Hero:       groupThousands(h.BuddyDuos),
			Sub:        "duo's trainden samen",
			Note:       fmt.Sprintf("Het sterkste duo stond %d keer samen op de vloer", h.StrongestBuddySessions),
			Footnote:   "#2025wrapped",
		}
	case 6:
		d = slide.Descriptor{
			ID:         "community-coaches",
			Background: slide.BgViolet,
			Lead:       "De coaches die het jaar droegen",
			Footnote:   "#2025wrapped",
		}
		medals := []string{"🥇", "🥈", "🥉"}
		for i, coach := range top {
			if i >= len(medals) {
				break
			}
			d.Ranking = append(d.Ranking, slide.RankedItem{
				Medal: medals[i],
				Name:  coach.FirstName,
				Count: coach.ClassesGiven,
			})
		}
		d.Note = fmt.Sprintf("Drukste les: %s op %s (%d deelnemers)",
			h.BusiestClass, h.BusiestClassDate, h.BusiestClassAttendees)
	default:
		return nil, ErrUnknownSlide
	}
	return r.Slide(d, f)
}

// Caption builds the ready-to-paste social caption that accompanies the
// community slides.
func Caption(stats record.CommunityStats) string {
	h := stats.Highlights
	return fmt.Sprintf(`2025 zit erop! 🎉

Samen goed voor %s bezoeken met %s leden.
Populairste les: %s (%s keer bezocht).
Drukste dag: %s. Favoriete tijdstip: %s.

Op naar 2026 💪 #2025wrapped`,
		groupThousands(h.TotalVisits), groupThousands(h.TotalMembers),
		h.TopClass, groupThousands(h.TopClassVisits),
		h.BusiestDay, h.FavoriteTime)
}

// groupThousands formats n with dots as thousands separators (nl-NL style).
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
