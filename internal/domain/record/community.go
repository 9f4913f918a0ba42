package record

// CommunityStats carries the gym-wide aggregates used for comparison copy on
// the personal slides. Loaded once at startup next to the code datasets.
type CommunityStats struct {
	AvgVisits        float64    `json:"avgBezoeken"`
	AvgCancellations float64    `json:"avgAfmeldingen"`
	PopularDay       string     `json:"popularDay"`
	PopularCoach     string     `json:"popularCoach"`
	PopularMonth     string     `json:"popularMonth"`
	TotalMembers     int        `json:"totalMembers"`
	Highlights       Highlights `json:"highlights"`
}

// Highlights are the figures behind the static community export slides and
// the social caption.
type Highlights struct {
	TotalVisits            int    `json:"totaalBezoeken"`
	TotalMembers           int    `json:"totaalLeden"`
	TopClass               string `json:"populairsteLes"`
	TopClassVisits         int    `json:"populairsteLesBezoeken"`
	FavoriteDay            string `json:"favorieteDag"`
	FavoriteDayCount       int    `json:"favorieteDagCount"`
	FavoriteTime           string `json:"favorieteTijd"`
	EarlyBirds             int    `json:"earlyBirds"`
	NightOwls              int    `json:"nightOwls"`
	BusiestDay             string `json:"druksteDag"`
	BusiestDayCount        int    `json:"druksteDagCount"`
	QuietestDay            string `json:"rustigsteDag"`
	QuietestDayCount       int    `json:"rustigsteDagCount"`
	BusiestClass           string `json:"druksteLes"`
	BusiestClassDate       string `json:"druksteLesDatum"`
	BusiestClassTime       string `json:"druksteLesTijd"`
	BusiestClassAttendees  int    `json:"druksteLesDeelnemers"`
	BuddyDuos              int    `json:"gymBuddyDuos"`
	StrongestBuddySessions int    `json:"sterksteBuddySessies"`
	Cancellations          int    `json:"afmeldingen"`
}

// TopCoach is one entry of the top-3 coach ranking, derived from the coach
// dataset at load time (not stored in the stats file).
type TopCoach struct {
	FirstName    string `json:"voornaam"`
	ClassesGiven int    `json:"lessen_gegeven"`
}
