package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// Multipart is a request body for file uploads.  The client encodes it with
// mime/multipart and takes the Content-Type (including the boundary) from
// the writer; callers never set it themselves.
type Multipart struct {
	Fields map[string]string
	Files  []File
}

// File is one uploaded part.
type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

func (m *Multipart) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	for _, f := range m.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
