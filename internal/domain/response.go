package domain

// Speech carries spoken output as plain text and, when the response uses list
// or narrative markup, as SSML.
type Speech struct {
	Plain string `json:"plain"`
	SSML  string `json:"ssml,omitempty"`
}

// Reprompt is spoken when a non-terminal response gets no user reply.
type Reprompt struct {
	Speech Speech `json:"speech"`
}

// Card is the short visual summary shown alongside the spoken response.
type Card struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Response is the outbound envelope handed back to the voice platform.
// Terminal responses end the dialog; non-terminal ones expect another turn
// and carry a reprompt.
type Response struct {
	Terminal bool      `json:"terminal"`
	Speech   Speech    `json:"speech"`
	Reprompt *Reprompt `json:"reprompt,omitempty"`
	Card     *Card     `json:"card,omitempty"`
}

// NewTellResponse builds a terminal spoken response.
func NewTellResponse(speech Speech, card *Card) Response {
	return Response{Terminal: true, Speech: speech, Card: card}
}

// NewAskResponse builds a non-terminal response that reprompts with the given
// speech when the user stays silent.
func NewAskResponse(speech, reprompt Speech, card *Card) Response {
	return Response{Speech: speech, Reprompt: &Reprompt{Speech: reprompt}, Card: card}
}
