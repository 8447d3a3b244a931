package domain

// Button is one inline keyboard button: display label plus the callback
// token it fires
type Button struct {
	Label string
	Token string
}

// Render is an outbound reply: message body plus keyboard rows.
// Button order is significant and must be preserved by the transport.
type Render struct {
	Body    string
	Buttons [][]Button
}

// IsEmpty reports whether there is nothing to send
func (r Render) IsEmpty() bool {
	return r.Body == "" && len(r.Buttons) == 0
}
