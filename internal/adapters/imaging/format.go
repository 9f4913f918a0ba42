package imaging

import "fmt"

// Format selects the export canvas.
type Format string

const (
	// FormatStory is the vertical 1080x1920 canvas for stories.
	FormatStory Format = "story"
	// FormatPost is the square 1080x1080 canvas for feed posts.
	FormatPost Format = "post"
)

// ParseFormat maps a query-string value to a Format. Empty defaults to story.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatStory):
		return FormatStory, nil
	case string(FormatPost):
		return FormatPost, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// Dimensions returns the exported pixel size.
func (f Format) Dimensions() (w, h int) {
	if f == FormatPost {
		return 1080, 1080
	}
	return 1080, 1920
}

// Cards are composed at half resolution and upscaled on encode, which keeps
// the draw pass cheap while the output stays at the exact share dimensions.
func (f Format) baseDimensions() (w, h int) {
	if f == FormatPost {
		return 540, 540
	}
	return 540, 960
}
