package negotiation

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	id             uuid.UUID
	sessionID      uuid.UUID
	sender         uuid.UUID
	messageType    MessageType
	content        Content
	templateID     *string
	priceOffer     *int64
	isFiltered     bool
	filteredReason *string
	createdAt      time.Time
}

func ReconstructMessage(
	id, sessionID, sender uuid.UUID,
	messageType MessageType,
	content Content,
	templateID *string,
	priceOffer *int64,
	isFiltered bool,
	filteredReason *string,
	createdAt time.Time,
) *Message {
	return &Message{
		id:             id,
		sessionID:      sessionID,
		sender:         sender,
		messageType:    messageType,
		content:        content,
		templateID:     templateID,
		priceOffer:     priceOffer,
		isFiltered:     isFiltered,
		filteredReason: filteredReason,
		createdAt:      createdAt,
	}
}

func (m *Message) ID() uuid.UUID           { return m.id }
func (m *Message) SessionID() uuid.UUID    { return m.sessionID }
func (m *Message) Sender() uuid.UUID       { return m.sender }
func (m *Message) Type() MessageType       { return m.messageType }
func (m *Message) Content() Content        { return m.content }
func (m *Message) TemplateID() *string     { return m.templateID }
func (m *Message) PriceOffer() *int64      { return m.priceOffer }
func (m *Message) IsFiltered() bool        { return m.isFiltered }
func (m *Message) FilteredReason() *string { return m.filteredReason }
func (m *Message) CreatedAt() time.Time    { return m.createdAt }
