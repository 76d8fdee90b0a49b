package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// MaxAttachmentSize is the per-file upload limit of a webhook without boosts.
const MaxAttachmentSize = 8 * 1024 * 1024

// Attachment is a file uploaded alongside a message.
type Attachment struct {
	Name string
	Data []byte
}

// LoadAttachment reads a file from disk into an Attachment named after its
// base name.
func LoadAttachment(path string) (Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attachment{}, errorwrapper.WrapError(err, fmt.Sprintf("failed to stat attachment '%s'", path))
	}
	if info.Size() > MaxAttachmentSize {
		return Attachment{}, errorwrapper.NewValidationError("files", path,
			fmt.Sprintf("attachment is %d bytes, limit is %d", info.Size(), MaxAttachmentSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, errorwrapper.WrapError(err, fmt.Sprintf("failed to read attachment '%s'", path))
	}
	return Attachment{Name: filepath.Base(path), Data: data}, nil
}

// encodeMultipart writes payload as the payload_json part followed by one
// files[i] part per attachment. It returns the body and its content type.
func encodeMultipart(payload *MessagePayload, files []Attachment) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, "", errorwrapper.WrapError(err, "failed to marshal webhook payload")
	}
	if err := writer.WriteField("payload_json", string(payloadJSON)); err != nil {
		return nil, "", errorwrapper.WrapError(err, "failed to write payload_json part")
	}

	for i, file := range files {
		if file.Name == "" {
			return nil, "", errorwrapper.NewValidationError(fmt.Sprintf("files[%d]", i), nil, "attachment name is empty")
		}
		part, err := writer.CreateFormFile(fmt.Sprintf("files[%d]", i), file.Name)
		if err != nil {
			return nil, "", errorwrapper.WrapError(err, "failed to create attachment part")
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", errorwrapper.WrapError(err, "failed to write attachment part")
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errorwrapper.WrapError(err, "failed to close multipart body")
	}
	return body.Bytes(), writer.FormDataContentType(), nil
}
