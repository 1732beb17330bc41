package shopapi

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// formBuilder assembles a multipart/form-data body. File parts without a
// content type default to application/octet-stream.
type formBuilder struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func newFormBuilder() *formBuilder {
	b := &formBuilder{}
	b.writer = multipart.NewWriter(&b.buf)
	return b
}

// field adds a text field. Errors are held until close.
func (b *formBuilder) field(name, value string) *formBuilder {
	if b.err != nil {
		return b
	}
	b.err = b.writer.WriteField(name, value)
	return b
}

// file adds a binary file part.
func (b *formBuilder) file(fieldName, fileName, contentType string, data []byte) *formBuilder {
	if b.err != nil {
		return b
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		escapeQuotes(fieldName), escapeQuotes(fileName)))
	header.Set("Content-Type", contentType)

	part, err := b.writer.CreatePart(header)
	if err != nil {
		b.err = err
		return b
	}
	_, b.err = part.Write(data)
	return b
}

// close finalizes the body and returns it with its content type.
func (b *formBuilder) close() (*bytes.Buffer, string, error) {
	if b.err != nil {
		return nil, "", &Error{Kind: KindUnknown, Message: fmt.Sprintf("build multipart body: %v", b.err)}
	}
	if err := b.writer.Close(); err != nil {
		return nil, "", &Error{Kind: KindUnknown, Message: fmt.Sprintf("build multipart body: %v", err)}
	}
	return &b.buf, b.writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
