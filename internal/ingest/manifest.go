package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"stencil/internal/recording"
	"stencil/internal/services"
)

// Manifest lists recordings collected for a batch run.
type Manifest struct {
	Recordings []Entry `json:"recordings"`
}

// Entry is one recording in a manifest.
type Entry struct {
	Topic           string        `json:"topic"`
	HostEmail       string        `json:"host_email,omitempty"`
	Participants    []Participant `json:"participants,omitempty"`
	Transcript      string        `json:"transcript,omitempty"`
	Chat            string        `json:"chat,omitempty"`
	FolderPath      []string      `json:"folder_path,omitempty"`
	DurationSeconds int           `json:"duration_seconds,omitempty"`
	Timestamp       string        `json:"timestamp,omitempty"`
	MeetingID       string        `json:"meeting_id,omitempty"`
	UUID            string        `json:"uuid,omitempty"`
}

// Participant is one roster attendee in a manifest entry.
type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Context converts a manifest entry into a resolution context.
func (e Entry) Context() *recording.Context {
	participants := make([]recording.Participant, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, recording.Participant{Name: p.Name, Email: p.Email})
	}
	return &recording.Context{
		Topic:           e.Topic,
		HostEmail:       e.HostEmail,
		Participants:    participants,
		TranscriptText:  e.Transcript,
		ChatText:        e.Chat,
		FolderPath:      e.FolderPath,
		DurationSeconds: e.DurationSeconds,
		Timestamp:       e.Timestamp,
		MeetingID:       e.MeetingID,
		UUID:            e.UUID,
	}
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "ingest", "load manifest", fmt.Sprintf("read %s", path), err)
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, services.Wrap(services.ErrValidation, "ingest", "load manifest", fmt.Sprintf("parse %s", path), err)
	}
	if len(manifest.Recordings) == 0 {
		return nil, services.Wrap(services.ErrValidation, "ingest", "load manifest", "manifest lists no recordings", nil)
	}
	return &manifest, nil
}
