package record

import "strconv"

// Kind discriminates the two record shapes behind an access code.
type Kind string

const (
	KindMember Kind = "member"
	KindCoach  Kind = "coach"
)

// MemberIDCoach is the sentinel member identifier logged for coach views.
const MemberIDCoach = "0"

// Member is a precomputed year-in-review record for one gym member.
// JSON tags match the offline data-preparation output (Dutch field names).
type Member struct {
	RegistrationNumber int    `json:"registratienummer"`
	FirstName          string `json:"voornaam"`
	FullName           string `json:"volledige_naam"`
	Code               string `json:"code"`
	Visits             int    `json:"bezoeken"`
	Cancellations      int    `json:"afmeldingen"`
	FavoriteCoaches    string `json:"favoriete_coaches"`
	CoachesPlural      bool   `json:"coaches_meervoud"`
	FavoriteDay        string `json:"favoriete_dag"`
	TopMonth           string `json:"top_maand"`
	QuietestMonth      string `json:"rustigste_maand"`
	FirstVisit         string `json:"eerste_bezoek"`
	Percentile         int    `json:"percentile"`
	Buddy1             string `json:"buddy_1"`
	Buddy1Sessions     int    `json:"buddy_1_sessies"`
	Buddy2             string `json:"buddy_2"`
	Buddy2Sessions     int    `json:"buddy_2_sessies"`
	Buddy3             string `json:"buddy_3"`
	Buddy3Sessions     int    `json:"buddy_3_sessies"`
	FavoriteClassType  string `json:"favoriete_lestype"`
	CommunityVisits    int    `json:"community_bezoeken"`
	HardestDay         string `json:"moeilijkste_dag"`
	HardestDayCount    int    `json:"moeilijkste_dag_count"`
	HardestTime        string `json:"moeilijkste_tijd"`
	HardestTimeCount   int    `json:"moeilijkste_tijd_count"`
	NoShows            int    `json:"no_shows"`
}

// HasBuddies reports whether the record carries training-buddy data.
// INVARIANT: Buddy2/Buddy3 are only set when Buddy1 is set
func (m Member) HasBuddies() bool {
	return m.Buddy1 != ""
}

// Coach is a precomputed year-in-review record for one coach.
type Coach struct {
	Name                  string  `json:"coach_naam"`
	FirstName             string  `json:"voornaam"`
	Code                  string  `json:"code"`
	ClassesGiven          int     `json:"lessen_gegeven"`
	MembersTrained        int     `json:"leden_getraind_totaal"`
	UniqueMembers         int     `json:"unieke_leden"`
	AvgPerClass           float64 `json:"gemiddeld_per_les"`
	FavoriteDay           string  `json:"favoriete_dag"`
	FavoriteDayCount      int     `json:"favoriete_dag_count"`
	FavoriteTime          string  `json:"favoriete_tijd"`
	FavoriteTimeCount     int     `json:"favoriete_tijd_count"`
	TopMonth              string  `json:"top_maand"`
	TopMonthCount         int     `json:"top_maand_count"`
	TopClassType          string  `json:"top_lestype"`
	TopClassTypeCount     int     `json:"top_lestype_count"`
	BusiestClassName      string  `json:"drukste_les_naam"`
	BusiestClassDate      string  `json:"drukste_les_datum"`
	BusiestClassTime      string  `json:"drukste_les_tijd"`
	BusiestClassAttendees int     `json:"drukste_les_deelnemers"`
	Regular1              string  `json:"vaste_klant_1"`
	Regular1Count         int     `json:"vaste_klant_1_count"`
	Regular2              string  `json:"vaste_klant_2"`
	Regular2Count         int     `json:"vaste_klant_2_count"`
	Regular3              string  `json:"vaste_klant_3"`
	Regular3Count         int     `json:"vaste_klant_3_count"`
	EarlyBirdClasses      int     `json:"early_bird_lessen"`
	EarlyBirdPercentage   int     `json:"early_bird_percentage"`
	NightOwlClasses       int     `json:"night_owl_lessen"`
	NightOwlPercentage    int     `json:"night_owl_percentage"`
	Percentile            int     `json:"percentile"`
}

// AccessRecord is the tagged union returned by code resolution. Exactly one
// of Member or Coach is set, matching Kind.
type AccessRecord struct {
	Kind   Kind    `json:"kind"`
	Member *Member `json:"member,omitempty"`
	Coach  *Coach  `json:"coach,omitempty"`
}

// ForMember wraps a member record.
func ForMember(m Member) AccessRecord {
	return AccessRecord{Kind: KindMember, Member: &m}
}

// ForCoach wraps a coach record.
func ForCoach(c Coach) AccessRecord {
	return AccessRecord{Kind: KindCoach, Coach: &c}
}

// Code returns the access code of whichever record is set.
func (r AccessRecord) Code() string {
	switch r.Kind {
	case KindCoach:
		if r.Coach != nil {
			return r.Coach.Code
		}
	case KindMember:
		if r.Member != nil {
			return r.Member.Code
		}
	}
	return ""
}

// ViewerID returns the identifier the view log records for this viewer:
// the member registration number, or the coach sentinel "0".
func (r AccessRecord) ViewerID() string {
	if r.Kind == KindMember && r.Member != nil {
		return strconv.Itoa(r.Member.RegistrationNumber)
	}
	return MemberIDCoach
}

// ViewerName returns the display name the view log records for this viewer.
// Coaches are suffixed so the admin list tells them apart from members.
func (r AccessRecord) ViewerName() string {
	switch r.Kind {
	case KindCoach:
		if r.Coach != nil {
			return r.Coach.FirstName + " (coach)"
		}
	case KindMember:
		if r.Member != nil {
			return r.Member.FirstName
		}
	}
	return ""
}
