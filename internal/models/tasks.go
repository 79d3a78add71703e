package models

import "github.com/google/uuid"

// ImageSubject says what kind of record an image task illustrates.
type ImageSubject string

const (
	ImageSubjectCharacter ImageSubject = "character"
	ImageSubjectLocation  ImageSubject = "location"
)

// Subfolder is the media directory for images of this subject.
func (s ImageSubject) Subfolder() string {
	switch s {
	case ImageSubjectCharacter:
		return "characters"
	case ImageSubjectLocation:
		return "locations"
	default:
		return "misc"
	}
}

// ImageTask asks the image worker to illustrate one character or location.
type ImageTask struct {
	TaskID    string       `json:"task_id"`
	OwnerID   uuid.UUID    `json:"owner_id"`
	GameID    uuid.UUID    `json:"game_id"`
	Subject   ImageSubject `json:"subject"`
	SubjectID uuid.UUID    `json:"subject_id"`
	Name      string       `json:"name"`
	Prompt    string       `json:"prompt"`
}

// Client update event types pushed over the websocket.
const (
	EventImageReady       = "image_ready"
	EventNarrativeUpdated = "narrative_updated"
	EventGameCreated      = "game_created"
)
