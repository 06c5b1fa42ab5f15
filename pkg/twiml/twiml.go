// Package twiml renders the Twilio Markup Language documents returned from
// messaging webhooks. Only the <Response>/<Message> subset is supported.
package twiml

import "encoding/xml"

const ContentType = "application/xml"

type MessagingResponse struct {
	XMLName  xml.Name  `xml:"Response"`
	Messages []Message `xml:"Message"`
}

type Message struct {
	Body string `xml:",chardata"`
}

// NewMessagingResponse returns an empty response. Twilio sends nothing back to
// the user for an empty <Response/>.
func NewMessagingResponse() *MessagingResponse {
	return &MessagingResponse{}
}

// Message appends a reply. Empty bodies are ignored.
func (r *MessagingResponse) Message(body string) *MessagingResponse {
	if body != "" {
		r.Messages = append(r.Messages, Message{Body: body})
	}
	return r
}

func (r *MessagingResponse) Marshal() ([]byte, error) {
	out, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
