package domain

// ActionSourceWebsite is the only action_source this system reports
const ActionSourceWebsite = "website"

// ServerEvent is one entry of the Conversions API "data" array
type ServerEvent struct {
	EventName      string      `json:"event_name"`
	EventTime      int64       `json:"event_time"`
	EventID        string      `json:"event_id,omitempty"`
	EventSourceURL string      `json:"event_source_url,omitempty"`
	ActionSource   string      `json:"action_source"`
	UserData       UserData    `json:"user_data"`
	CustomData     *CustomData `json:"custom_data,omitempty"`
}

// UserData carries matching keys. Em..Country hold SHA-256 hex digests, never plaintext.
type UserData struct {
	ClientIPAddress string   `json:"client_ip_address,omitempty"`
	ClientUserAgent string   `json:"client_user_agent,omitempty"`
	Fbc             string   `json:"fbc,omitempty"`
	Fbp             string   `json:"fbp,omitempty"`
	ExternalID      []string `json:"external_id,omitempty"`
	Em              []string `json:"em,omitempty"`
	Ph              []string `json:"ph,omitempty"`
	Fn              []string `json:"fn,omitempty"`
	Ln              []string `json:"ln,omitempty"`
	Ct              []string `json:"ct,omitempty"`
	St              []string `json:"st,omitempty"`
	Zp              []string `json:"zp,omitempty"`
	Country         []string `json:"country,omitempty"`
}

type CustomData struct {
	Value        *float64 `json:"value,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	ContentName  string   `json:"content_name,omitempty"`
	ContentIDs   []string `json:"content_ids,omitempty"`
	PredictedLTV *float64 `json:"predicted_ltv,omitempty"`
}

func (c *CustomData) IsEmpty() bool {
	return c.Value == nil && c.Currency == "" && c.ContentName == "" &&
		len(c.ContentIDs) == 0 && c.PredictedLTV == nil
}

// FacebookEventsRequest is the body posted to /{pixel_id}/events
type FacebookEventsRequest struct {
	Data          []ServerEvent `json:"data"`
	TestEventCode string        `json:"test_event_code,omitempty"`
}
