package mailer

import "errors"

var (
	// ErrMissingRequiredField indicates the message lacks a sender, a subject,
	// a body, or (in single mode) a recipient. Build aborts.
	ErrMissingRequiredField = errors.New("mailer: from, subject, recipient and text or html body are required")

	// ErrInvalidPersonalization indicates a personalization without recipients.
	// Build aborts; no partial payload is produced.
	ErrInvalidPersonalization = errors.New("mailer: personalization is missing \"to\"")

	// ErrBuildFailed wraps any build error surfaced by Mailer.Send.
	ErrBuildFailed = errors.New("mailer: error building message, unable to send")

	// ErrSendFailed indicates the provider rejected or never received the payload.
	ErrSendFailed = errors.New("mailer: failed to send email")

	// ErrNoBatchID indicates the provider did not issue a batch id.
	ErrNoBatchID = errors.New("mailer: no batch id obtained")

	// ErrBatchUnsupported indicates the transport cannot mint batch ids.
	ErrBatchUnsupported = errors.New("mailer: transport does not support batch ids")

	// ErrAttachmentFilename indicates in-memory attachment content without a filename.
	ErrAttachmentFilename = errors.New("mailer: attachment filename is required")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("mailer: template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("mailer: layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("mailer: failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("mailer: invalid frontmatter")

	// ErrNoRenderer indicates Compose was called on a mailer without templates.
	ErrNoRenderer = errors.New("mailer: no template renderer configured")
)
