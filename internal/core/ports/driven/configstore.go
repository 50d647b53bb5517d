package driven

// ConfigStore holds workspace settings under dot-notation keys
// such as "conversation.reply_delay_ms".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns "" when the key is unset or not a string.
	GetString(key string) string

	// GetInt accepts any numeric value a decoder may produce; 0 otherwise.
	GetInt(key string) int

	// GetBool returns false when the key is unset or not a bool.
	GetBool(key string) bool

	// Set stores a value. File-backed stores write it through at once.
	Set(key string, value any) error
}
