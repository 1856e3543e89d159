package transcripts

import "regexp"

// A bare video ID
var videoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// URL shapes, tried in order
var videoURLs = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the video ID from a YouTube URL,
// or the input itself if it's already an ID.
// Input matching no known shape is returned unchanged.
func ExtractVideoID(input string) string {
	if videoID.MatchString(input) {
		return input
	}

	for _, re := range videoURLs {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}

	return input
}
