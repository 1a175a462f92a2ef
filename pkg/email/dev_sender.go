package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development.
// It saves each message as HTML, text and JSON files to a directory
// instead of sending it through a provider.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type emailMetadata struct {
	ID          string             `json:"id"`
	Timestamp   string             `json:"timestamp"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	ReplyTo     string             `json:"reply_to,omitempty"`
	Subject     string             `json:"subject"`
	Tag         string             `json:"tag,omitempty"`
	Attachments []attachmentSchema `json:"attachments,omitempty"`
}

type attachmentSchema struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Size        int    `json:"size"`
}

// Send writes the message bodies and metadata and returns a generated id.
func (d *DevSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create directory: %w", ErrFailedToSendEmail, err)
	}

	id := uuid.NewString()
	now := d.now()

	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := filepath.Join(d.dir, fmt.Sprintf("%s_%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier), id[:8]))

	if msg.HTML != "" {
		if err := os.WriteFile(base+".html", []byte(msg.HTML), 0o644); err != nil {
			return "", fmt.Errorf("%w: failed to write HTML file: %w", ErrFailedToSendEmail, err)
		}
	}
	if msg.Text != "" {
		if err := os.WriteFile(base+".txt", []byte(msg.Text), 0o644); err != nil {
			return "", fmt.Errorf("%w: failed to write text file: %w", ErrFailedToSendEmail, err)
		}
	}

	metadata := emailMetadata{
		ID:        id,
		Timestamp: now.Format(time.RFC3339),
		From:      msg.From,
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}
	for _, a := range msg.Attachments {
		metadata.Attachments = append(metadata.Attachments, attachmentSchema{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        len(a.Content),
		})
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal metadata: %w", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(base+".json", jsonData, 0o644); err != nil {
		return "", fmt.Errorf("%w: failed to write JSON file: %w", ErrFailedToSendEmail, err)
	}

	return id, nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
