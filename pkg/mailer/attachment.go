package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gridmail/pkg/storage"
)

// Attachment dispositions.
const (
	DispositionAttachment = "attachment"
	DispositionInline     = "inline"
)

// MaxAttachmentSize is the largest stored file Attach will read.
// The provider rejects messages above this size anyway.
const MaxAttachmentSize = storage.DefaultMaxObjectSize

// AttachmentOptions overrides attachment metadata.
// Empty fields are derived: filename from the path, type from the content.
type AttachmentOptions struct {
	Filename    string
	ContentType string
	Disposition string
	ContentID   string
}

type attachmentSource struct {
	path    string
	content []byte
	opts    AttachmentOptions
}

// Attach adds the file at path. The bytes are read from the attachment store at build time.
func (m *Message) Attach(path string, opts AttachmentOptions) *Message {
	m.attachments = append(m.attachments, attachmentSource{path: path, opts: opts})
	return m
}

// AttachContent adds in-memory content as an attachment. opts.Filename should be set.
func (m *Message) AttachContent(content []byte, opts AttachmentOptions) *Message {
	m.attachments = append(m.attachments, attachmentSource{content: content, opts: opts})
	return m
}

// Embed adds the file at path as an inline attachment and returns its content id
// for use as "cid:<id>" in the HTML body.
func (m *Message) Embed(path string, opts AttachmentOptions) string {
	opts = inlineOptions(opts)
	m.attachments = append(m.attachments, attachmentSource{path: path, opts: opts})
	return opts.ContentID
}

// EmbedContent adds in-memory content as an inline attachment and returns its content id.
func (m *Message) EmbedContent(content []byte, opts AttachmentOptions) string {
	opts = inlineOptions(opts)
	m.attachments = append(m.attachments, attachmentSource{content: content, opts: opts})
	return opts.ContentID
}

func inlineOptions(opts AttachmentOptions) AttachmentOptions {
	opts.Disposition = DispositionInline
	if opts.ContentID == "" {
		opts.ContentID = uuid.NewString()
	}
	return opts
}

// load resolves the source bytes and derives missing metadata.
func (a attachmentSource) load(ctx context.Context, store storage.Store) (Attachment, error) {
	data := a.content
	filename := a.opts.Filename
	if a.path != "" {
		if st, ok := store.(storage.Statter); ok {
			info, err := st.Stat(ctx, a.path)
			if err != nil {
				return Attachment{}, err
			}
			if info.Size > MaxAttachmentSize {
				return Attachment{}, fmt.Errorf("%w: %s is %d bytes", storage.ErrTooLarge, a.path, info.Size)
			}
		}

		rc, err := store.Get(ctx, a.path)
		if err != nil {
			return Attachment{}, err
		}
		defer rc.Close()

		data, err = io.ReadAll(rc)
		if err != nil {
			return Attachment{}, fmt.Errorf("%w: %s: %v", storage.ErrReadFailed, a.path, err)
		}
		if filename == "" {
			filename = filepath.Base(a.path)
		}
	}
	if filename == "" {
		return Attachment{}, ErrAttachmentFilename
	}

	contentType := a.opts.ContentType
	if contentType == "" {
		contentType = storage.DetectMIME(filename, data)
	}

	return Attachment{
		Content:     base64.StdEncoding.EncodeToString(data),
		Type:        contentType,
		Filename:    filename,
		Disposition: a.opts.Disposition,
		ContentID:   a.opts.ContentID,
	}, nil
}
