package ekdsend

import "time"

// EmailStatus is the delivery status of an email.
type EmailStatus string

// Email statuses.
const (
	EmailStatusQueued    EmailStatus = "queued"
	EmailStatusSending   EmailStatus = "sending"
	EmailStatusSent      EmailStatus = "sent"
	EmailStatusDelivered EmailStatus = "delivered"
	EmailStatusFailed    EmailStatus = "failed"
	EmailStatusBounced   EmailStatus = "bounced"
)

// SMSStatus is the delivery status of an SMS message.
type SMSStatus string

// SMS statuses.
const (
	SMSStatusQueued    SMSStatus = "queued"
	SMSStatusSending   SMSStatus = "sending"
	SMSStatusSent      SMSStatus = "sent"
	SMSStatusDelivered SMSStatus = "delivered"
	SMSStatusFailed    SMSStatus = "failed"
)

// CallStatus is the state of a voice call.
type CallStatus string

// Call statuses.
const (
	CallStatusQueued     CallStatus = "queued"
	CallStatusRinging    CallStatus = "ringing"
	CallStatusInProgress CallStatus = "in-progress"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusFailed     CallStatus = "failed"
	CallStatusNoAnswer   CallStatus = "no-answer"
	CallStatusBusy       CallStatus = "busy"
)

// Attachment is an email attachment. Content is base64-encoded.
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

// SendEmailParams are the parameters for Emails.Send. From, To, and
// Subject are required; empty optional fields are omitted from the
// request body.
type SendEmailParams struct {
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	HTML        string            `json:"html,omitempty"`
	Text        string            `json:"text,omitempty"`
	CC          []string          `json:"cc,omitempty"`
	BCC         []string          `json:"bcc,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	// ScheduledAt is an ISO 8601 timestamp for scheduled delivery.
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

// Email represents an email message.
type Email struct {
	ID          string            `json:"id"`
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	Status      EmailStatus       `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	SentAt      *time.Time        `json:"sent_at,omitempty"`
	DeliveredAt *time.Time        `json:"delivered_at,omitempty"`
	OpenedAt    *time.Time        `json:"opened_at,omitempty"`
	ClickedAt   *time.Time        `json:"clicked_at,omitempty"`
	BouncedAt   *time.Time        `json:"bounced_at,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// SendSMSParams are the parameters for SMS.Send. To and Message are
// required; To must be in E.164 format (+1234567890).
type SendSMSParams struct {
	To      string `json:"to"`
	Message string `json:"message"`
	// From is the sender phone number. The account default is used
	// when empty.
	From        string            `json:"from,omitempty"`
	ScheduledAt string            `json:"scheduled_at,omitempty"`
	WebhookURL  string            `json:"webhook_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// SMS represents an SMS message. Segments is the transport-level part
// count reported by the server.
type SMS struct {
	ID          string     `json:"id"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	Body        string     `json:"body"`
	Status      SMSStatus  `json:"status"`
	Segments    int        `json:"segments"`
	CreatedAt   time.Time  `json:"created_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// Voice and language defaults for text-to-speech calls.
const (
	DefaultVoice    = "alloy"
	DefaultLanguage = "en-US"
)

// CreateCallParams are the parameters for Calls.Create. To and From are
// required, plus exactly one content source: TTSMessage or AudioURL.
type CreateCallParams struct {
	To   string `json:"to"`
	From string `json:"from"`
	// TTSMessage is the text-to-speech message content.
	TTSMessage string `json:"tts_message,omitempty"`
	// AudioURL points to an audio file for playback, as an alternative
	// to TTS.
	AudioURL string `json:"audio_url,omitempty"`
	// Voice is the TTS voice (alloy, echo, fable, onyx, nova, shimmer).
	// Defaults to DefaultVoice.
	Voice string `json:"voice"`
	// Language is the TTS language code. Defaults to DefaultLanguage.
	Language         string            `json:"language"`
	Record           bool              `json:"record"`
	MachineDetection bool              `json:"machine_detection"`
	WebhookURL       string            `json:"webhook_url,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// Call represents a voice call.
type Call struct {
	ID     string     `json:"id"`
	From   string     `json:"from"`
	To     string     `json:"to"`
	Status CallStatus `json:"status"`
	// Duration is the call length in seconds, once the call has ended.
	Duration     int        `json:"duration,omitempty"`
	RecordingURL string     `json:"recording_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	AnsweredAt   *time.Time `json:"answered_at,omitempty"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

// Recording is a voice call recording.
type Recording struct {
	CallID    string    `json:"call_id"`
	URL       string    `json:"url"`
	Duration  int       `json:"duration"`
	Format    string    `json:"format"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is a paginated list of resources.
type Page[T any] struct {
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}
