// Package storage resolves attachment paths into file content.
//
// Message attachments are referenced by path. The mailer reads them through the
// Store interface, so the same message can attach files from the local disk or
// from an S3-compatible bucket:
//
//	// Local files (default), optionally jailed to a root directory.
//	store := storage.NewDisk("")
//
//	// S3 or MinIO.
//	store, err := storage.New(storage.Config{
//		Bucket:    "mail-attachments",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//
//	msg.SetAttachmentStore(store).Attach("reports/2024-05.pdf", mailer.AttachmentOptions{})
//
// Missing objects are reported as ErrNotFound regardless of the backend; the
// mailer treats them as a warning and skips the attachment.
//
// DetectMIME guesses a content type from the file name and, failing that, from
// the first 512 bytes of content.
package storage
