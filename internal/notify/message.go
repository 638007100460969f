package notify

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a single outbound email. Text is always set; HTML is optional.
type Message struct {
	FromName  string
	From      string
	To        string
	Subject   string
	Text      string
	HTML      string
	MessageID string
	Date      time.Time
}

func newMessageID(from string) string {
	host := "outlaw.local"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		host = from[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}

// Bytes renders the message in RFC 5322 form. Messages with an HTML body are sent
// as multipart/alternative with the plain text part first.
func (m *Message) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	from := (&mail.Address{Name: m.FromName, Address: m.From}).String()
	if m.FromName == "" {
		from = m.From
	}

	writeHeader(&buf, "From", from)
	writeHeader(&buf, "To", m.To)
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", m.Subject))
	writeHeader(&buf, "Date", m.Date.Format(time.RFC1123Z))
	writeHeader(&buf, "Message-ID", m.MessageID)
	writeHeader(&buf, "MIME-Version", "1.0")

	if m.HTML == "" {
		writeHeader(&buf, "Content-Type", "text/plain; charset=UTF-8")
		writeHeader(&buf, "Content-Transfer-Encoding", "quoted-printable")
		buf.WriteString("\r\n")
		if err := writeQP(&buf, m.Text); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	mw := multipart.NewWriter(&buf)
	writeHeader(&buf, "Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", mw.Boundary()))
	buf.WriteString("\r\n")

	for _, part := range []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", m.Text},
		{"text/html; charset=UTF-8", m.HTML},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {part.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return nil, err
		}
		if err := writeQP(w, part.body); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}

func writeQP(w io.Writer, body string) error {
	qp := quotedprintable.NewWriter(w)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	return qp.Close()
}
