package contact

import "mime/multipart"

// Field limits, counted in runes.
const (
	MaxNameLength       = 100
	MaxPhoneLength      = 50
	MaxSubjectLength    = 200
	MaxMessageLength    = 5000
	MaxPositionLength   = 100
	MaxExperienceLength = 100
	MaxFilenameLength   = 255

	// MaxResumeSize is the largest accepted resume upload in bytes.
	MaxResumeSize = 10 << 20
)

// resumeTypes are matched against the upload's content type and extension.
var resumeTypes = []string{"pdf", "doc", "docx", "msword"}

// resumeContentTypes fills in the attachment type when the browser sent none.
var resumeContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Payload is the contact form body.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ApplicationPayload is the careers form body. Resume is optional.
type ApplicationPayload struct {
	Name       string                `form:"name"`
	Email      string                `form:"email"`
	Phone      string                `form:"phone"`
	Position   string                `form:"position"`
	Experience string                `form:"experience"`
	Message    string                `form:"message"`
	Resume     *multipart.FileHeader `file:"resume"`
}
