package negotiation

type Status string

const (
	StatusActive   Status = "active"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
	// StatusCompleted is set by the external payment collaborator after
	// redemption; this core only stores and exposes it.
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusAccepted, StatusRejected, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further negotiation activity is allowed.
func (s Status) IsTerminal() bool {
	return s != StatusActive
}

type MessageType string

const (
	MessageTypeTemplate     MessageType = "template"
	MessageTypePriceOffer   MessageType = "price_offer"
	MessageTypeCounterOffer MessageType = "counter_offer"
	MessageTypeAcceptance   MessageType = "acceptance"
	MessageTypeRejection    MessageType = "rejection"
	MessageTypeSystem       MessageType = "system"
)

func (t MessageType) String() string {
	return string(t)
}

func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeTemplate, MessageTypePriceOffer, MessageTypeCounterOffer,
		MessageTypeAcceptance, MessageTypeRejection, MessageTypeSystem:
		return true
	default:
		return false
	}
}

// CarriesOffer reports whether messages of this type must carry a price offer.
func (t MessageType) CarriesOffer() bool {
	return t == MessageTypePriceOffer || t == MessageTypeCounterOffer
}
