package models

// Segment is a single timed caption unit
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript holds segments in playback order
type Transcript []Segment

// Language describes one available caption track
type Language struct {
	Code           string `json:"language_code"`
	Name           string `json:"language"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

// Summary is a generated transcript summary
type Summary struct {
	Text            string
	HTML            string
	WordCount       int
	RequestedLength int
}

type TranscriptResponse struct {
	VideoID    string     `json:"video_id"`
	Transcript Transcript `json:"transcript"`
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
}

type TextResponse struct {
	VideoID string `json:"video_id"`
	Text    string `json:"text"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LanguagesResponse struct {
	VideoID            string     `json:"video_id"`
	AvailableLanguages []Language `json:"available_languages"`
	Success            bool       `json:"success"`
	Message            string     `json:"message,omitempty"`
}

type SummaryResponse struct {
	VideoID         string `json:"video_id"`
	Summary         string `json:"summary"`
	SummaryHTML     string `json:"summary_html"`
	WordCount       int    `json:"word_count"`
	RequestedLength int    `json:"requested_length"`
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}
