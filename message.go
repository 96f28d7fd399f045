package mitsvalidator

// Severity represents the severity of a validation message.
type Severity string

const (
	// SeverityError indicates a rule violation that makes the document invalid.
	SeverityError Severity = "error"
	// SeverityWarning indicates a potential problem that should be reviewed.
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates informational feedback.
	SeverityInfo Severity = "info"
)

// RuleID identifies a single validation rule, e.g. "basis_percentage_no_circular".
// Rule identifiers are stable: they never change meaning between releases.
type RuleID string

// Rule describes one validation rule: its stable identifier, the severity
// it reports at, and a human-readable summary of what it checks.
// Rules are static data and are never mutated at runtime.
type Rule struct {
	ID       RuleID
	Severity Severity
	Summary  string
}

// Message is a single validation finding. It is an immutable value:
// validators build messages and never modify them afterwards.
type Message struct {
	// RuleID is the rule that produced this message
	RuleID RuleID `json:"ruleId"`

	// Severity of the finding
	Severity Severity `json:"severity"`

	// Text is the rendered human-readable message
	Text string `json:"message"`

	// Path locates the offending element,
	// e.g. /PhysicalProperty/Property[@IDValue='p1']/ChargeOfferClass[@Code='FEES']
	Path string `json:"elementPath,omitempty"`

	// Details carries free-form context such as class codes and item codes
	Details map[string]string `json:"details,omitempty"`

	// Phase is the validation phase that generated this message
	Phase string `json:"phase,omitempty"`
}

// IsError returns true if this is an error message.
func (m Message) IsError() bool {
	return m.Severity == SeverityError
}

// IsWarning returns true if this is a warning message.
func (m Message) IsWarning() bool {
	return m.Severity == SeverityWarning
}

// String renders the display form "[rule_id] message at path".
func (m Message) String() string {
	s := "[" + string(m.RuleID) + "] " + m.Text
	if m.Path != "" {
		s += " at " + m.Path
	}
	return s
}

// MessageBuilder provides a fluent API for building messages.
type MessageBuilder struct {
	msg Message
}

// NewMessage creates a new MessageBuilder for a rule at an explicit severity.
func NewMessage(id RuleID, severity Severity) *MessageBuilder {
	return &MessageBuilder{
		msg: Message{
			RuleID:   id,
			Severity: severity,
		},
	}
}

// Error creates an error message builder.
func Error(id RuleID) *MessageBuilder {
	return NewMessage(id, SeverityError)
}

// Warning creates a warning message builder.
func Warning(id RuleID) *MessageBuilder {
	return NewMessage(id, SeverityWarning)
}

// Info creates an informational message builder.
func Info(id RuleID) *MessageBuilder {
	return NewMessage(id, SeverityInfo)
}

// Text sets the rendered message text.
func (b *MessageBuilder) Text(text string) *MessageBuilder {
	b.msg.Text = text
	return b
}

// At sets the element path.
func (b *MessageBuilder) At(path string) *MessageBuilder {
	b.msg.Path = path
	return b
}

// Detail adds one context key/value pair.
func (b *MessageBuilder) Detail(key, value string) *MessageBuilder {
	if b.msg.Details == nil {
		b.msg.Details = make(map[string]string, 4)
	}
	b.msg.Details[key] = value
	return b
}

// Phase sets the validation phase name.
func (b *MessageBuilder) Phase(phase string) *MessageBuilder {
	b.msg.Phase = phase
	return b
}

// Build returns the constructed message.
func (b *MessageBuilder) Build() Message {
	return b.msg
}
