package service

type InboundMessageCommand struct {
	TrackID    string
	From       string
	Body       string
	MessageSID string
	Endpoint   string
}

type SendMessageCommand struct {
	TrackID string
	To      string
	Text    string
}
