package contact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/firstengineering/website/pkg/email"
	"github.com/firstengineering/website/pkg/email/templates"
	"github.com/firstengineering/website/pkg/logger"
	"github.com/firstengineering/website/pkg/sanitizer"
	"github.com/firstengineering/website/pkg/validator"
)

const (
	defaultContactFromName     = "Contact Form"
	defaultApplicationFromName = "Careers"

	tagContact     = "contact"
	tagApplication = "application"
)

// Service validates submissions and relays them to the site owner.
type Service struct {
	cfg    Config
	sender email.Sender
	log    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for delivery events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a Service delivering through sender.
func NewService(cfg Config, sender email.Sender, opts ...Option) *Service {
	if cfg.ContactFromName == "" {
		cfg.ContactFromName = defaultContactFromName
	}
	if cfg.ApplicationFromName == "" {
		cfg.ApplicationFromName = defaultApplicationFromName
	}

	s := &Service{
		cfg:    cfg,
		sender: sender,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit relays a contact form submission and returns the provider's
// message id.
func (s *Service) Submit(ctx context.Context, p Payload) (string, error) {
	p = Payload{
		Name:    sanitizer.NormalizeUnicode(p.Name),
		Email:   strings.TrimSpace(p.Email),
		Phone:   p.Phone,
		Subject: sanitizer.NormalizeUnicode(p.Subject),
		Message: sanitizer.NormalizeUnicode(p.Message),
	}

	if err := validator.ApplyFirst(
		validator.Required("name", p.Name).WithMessage(MsgContactRequired),
		validator.Required("email", p.Email).WithMessage(MsgContactRequired),
		validator.Required("message", p.Message).WithMessage(MsgContactRequired),
		validator.MaxLen("name", p.Name, MaxNameLength).WithMessage(MsgNameTooLong),
		validator.MaxLen("message", p.Message, MaxMessageLength).WithMessage(MsgMessageTooLong),
		validator.MaxLen("subject", p.Subject, MaxSubjectLength).WithMessage(MsgSubjectTooLong),
		replyAddress("email", p.Email),
		validator.OptionalPhone("phone", p.Phone).WithMessage(MsgInvalidPhone),
	); err != nil {
		return "", rejected(err)
	}

	c := templates.Contact{
		Name:        sanitizer.String(sanitizer.SingleLine(p.Name), MaxNameLength),
		Email:       sanitizer.TrimToLower(p.Email),
		Phone:       sanitizer.String(p.Phone, MaxPhoneLength),
		Subject:     sanitizer.String(sanitizer.SingleLine(p.Subject), MaxSubjectLength),
		MessageHTML: sanitizer.HTML(p.Message, MaxMessageLength),
		Company:     s.cfg.company(),
	}

	from, to, err := s.resolveAddresses(s.cfg.ContactFromName)
	if err != nil {
		return "", err
	}

	subject := c.Subject
	if subject == "" {
		subject = "New Contact Form Submission from " + c.Name
	}

	html, err := templates.Render(ctx, templates.ContactNotification(c))
	if err != nil {
		return "", fmt.Errorf("contact: render notification: %w", err)
	}

	return s.deliver(ctx, email.Message{
		From:    from,
		To:      to,
		ReplyTo: c.Email,
		Subject: sanitizer.PreventHeaderInjection(subject),
		HTML:    html,
		Text:    templates.ContactText(c),
		Tag:     tagContact,
	})
}

// Apply relays a careers application, attaching the resume when present,
// and returns the provider's message id.
func (s *Service) Apply(ctx context.Context, p ApplicationPayload) (string, error) {
	p.Name = sanitizer.NormalizeUnicode(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Position = sanitizer.NormalizeUnicode(p.Position)
	p.Experience = sanitizer.NormalizeUnicode(p.Experience)
	p.Message = sanitizer.NormalizeUnicode(p.Message)

	rules := []validator.Rule{
		validator.Required("name", p.Name).WithMessage(MsgApplicationRequired),
		validator.Required("email", p.Email).WithMessage(MsgApplicationRequired),
		validator.Required("position", p.Position).WithMessage(MsgApplicationRequired),
		validator.MaxLen("name", p.Name, MaxNameLength).WithMessage(MsgNameTooLong),
		validator.MaxLen("position", p.Position, MaxPositionLength).WithMessage(MsgPositionTooLong),
		validator.MaxLen("experience", p.Experience, MaxExperienceLength).WithMessage(MsgExperienceTooLong),
		validator.MaxLen("message", p.Message, MaxMessageLength).WithMessage(MsgMessageTooLong),
		replyAddress("email", p.Email),
		validator.OptionalPhone("phone", p.Phone).WithMessage(MsgInvalidPhone),
	}
	if p.Resume != nil {
		rules = append(rules,
			validator.MaxFileSize("resume", p.Resume.Size, MaxResumeSize).WithMessage(MsgResumeTooLarge),
			validator.AllowedFileType("resume", p.Resume.Filename, p.Resume.Header.Get("Content-Type"), resumeTypes).WithMessage(MsgResumeType),
		)
	}
	if err := validator.ApplyFirst(rules...); err != nil {
		return "", rejected(err)
	}

	var attachments []email.Attachment
	if p.Resume != nil {
		a, err := readResume(p.Resume)
		if err != nil {
			return "", err
		}
		attachments = append(attachments, a)
	}

	a := templates.Application{
		Name:        sanitizer.String(sanitizer.SingleLine(p.Name), MaxNameLength),
		Email:       sanitizer.TrimToLower(p.Email),
		Phone:       sanitizer.String(p.Phone, MaxPhoneLength),
		Position:    sanitizer.String(sanitizer.SingleLine(p.Position), MaxPositionLength),
		Experience:  sanitizer.String(p.Experience, MaxExperienceLength),
		MessageHTML: sanitizer.HTML(p.Message, MaxMessageLength),
		Company:     s.cfg.company(),
	}
	if len(attachments) > 0 {
		a.Resume = attachments[0].Filename
	}

	from, to, err := s.resolveAddresses(s.cfg.ApplicationFromName)
	if err != nil {
		return "", err
	}

	html, err := templates.Render(ctx, templates.ApplicationNotification(a))
	if err != nil {
		return "", fmt.Errorf("contact: render application: %w", err)
	}

	return s.deliver(ctx, email.Message{
		From:        from,
		To:          to,
		ReplyTo:     a.Email,
		Subject:     fmt.Sprintf("Job Application: %s - %s", a.Position, a.Name),
		HTML:        html,
		Text:        templates.ApplicationText(a),
		Tag:         tagApplication,
		Attachments: attachments,
	})
}

// deliver sends msg detached from the request's cancellation: once a send
// starts it runs to completion or failure.
func (s *Service) deliver(ctx context.Context, msg email.Message) (string, error) {
	id, err := s.sender.Send(context.WithoutCancel(ctx), msg)
	if err != nil {
		return "", undelivered(err)
	}

	s.log.InfoContext(ctx, "notification delivered",
		logger.MessageID(id),
		logger.Event(msg.Tag+".delivered"),
		logger.Component("contact"),
	)
	return id, nil
}

// replyAddress accepts addresses that IsEmail allows and that can be used
// verbatim as a Reply-To header.
func replyAddress(field, value string) validator.Rule {
	rule := validator.ValidEmail(field, value).WithMessage(MsgInvalidEmail)
	check := rule.Check
	rule.Check = func() bool {
		return check() && !strings.ContainsAny(value, "<>,;\"")
	}
	return rule
}

func rejected(err error) *Error {
	e := invalid(validator.ExtractValidationErrors(err).First().Message)
	e.Err = err
	return e
}

// readResume loads the upload into memory. The size is re-checked on the
// bytes read since the multipart header size is client supplied.
func readResume(fh *multipart.FileHeader) (email.Attachment, error) {
	f, err := fh.Open()
	if err != nil {
		return email.Attachment{}, fmt.Errorf("contact: open resume: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxResumeSize+1))
	if err != nil {
		return email.Attachment{}, fmt.Errorf("contact: read resume: %w", err)
	}
	if len(content) > MaxResumeSize {
		return email.Attachment{}, invalid(MsgResumeTooLarge)
	}

	filename := sanitizer.String(sanitizer.SingleLine(fh.Filename), MaxFilenameLength)
	if filename == "" || filename == "." {
		filename = "resume" + filepath.Ext(fh.Filename)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt, ok := resumeContentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
			contentType = byExt
		}
	}

	return email.Attachment{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}
