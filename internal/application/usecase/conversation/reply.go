package conversation

// Button is one tappable button: a visible label and the token sent back
// when the user taps it.
type Button struct {
	Label string
	Token string
}

// Reply is what the conversation layer hands back to the transport: a
// text body plus rows of buttons. Alert marks short transient notices
// (stale token, refused action) that should not replace the current
// screen.
type Reply struct {
	Text    string
	Buttons [][]Button
	Alert   bool
}

func btn(label, action, arg string) Button {
	return Button{Label: label, Token: Token{Action: action, Arg: arg}.String()}
}

func row(buttons ...Button) []Button {
	return buttons
}

// alert builds a transient notice reply.
func alert(text string) *Reply {
	return &Reply{Text: text, Alert: true}
}

// prompt builds a plain text reply with no buttons, used by wizard steps
// that wait for typed input.
func prompt(text string) *Reply {
	return &Reply{
		Text: text,
		Buttons: [][]Button{
			row(btn("❌ Cancel", ActionCancel, "")),
		},
	}
}
