package slide

// Background style tokens. The client and the image exporter map these to
// gradient pairs; the deck builder never deals in colours directly.
const (
	BgBrand  = "brand"  // CFL red
	BgTeal   = "teal"
	BgYellow = "yellow"
	BgPurple = "purple"
	BgViolet = "violet"
	BgDark   = "dark"
	BgOrange = "orange"
	BgPink   = "pink"
	BgPlum   = "plum"
)

// Gradients maps a background token to its [top, bottom] hex colours.
var Gradients = map[string][2]string{
	BgBrand:  {"#EF4C37", "#D43A28"},
	BgTeal:   {"#0CBABA", "#099999"},
	BgYellow: {"#F7CB15", "#E5B800"},
	BgPurple: {"#7B6D8D", "#5D5169"},
	BgViolet: {"#6B5B95", "#4A4063"},
	BgDark:   {"#1a1a1a", "#2d2d2d"},
	BgOrange: {"#F7941D", "#E87D0D"},
	BgPink:   {"#E91E63", "#C2185B"},
	BgPlum:   {"#9C27B0", "#7B1FA2"},
}

// Descriptor is one slide: a background token plus structured content. The
// fields are layout slots, top to bottom; empty slots are omitted.
type Descriptor struct {
	ID         string       `json:"id"`
	Background string       `json:"bg"`
	Lead       string       `json:"lead,omitempty"`     // small line above the hero
	Hero       string       `json:"hero,omitempty"`     // the big number or word
	Sub        string       `json:"sub,omitempty"`      // line under the hero
	Note       string       `json:"note,omitempty"`     // boxed message
	Footnote   string       `json:"footnote,omitempty"` // small print at the bottom
	Blocks     []Block      `json:"blocks,omitempty"`   // labelled stat boxes
	Ranking    []RankedItem `json:"ranking,omitempty"`  // medal lists (buddies, fans)
}

// Block is a labelled stat box.
type Block struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Caption string `json:"caption,omitempty"`
}

// RankedItem is one row of a medal list.
type RankedItem struct {
	Medal string `json:"medal"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
