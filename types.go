package jsonx

// Action describes which direction of the pipeline an error came from.
type Action string

const (
	ActionSerialize   Action = "serialize"
	ActionDeserialize Action = "deserialize"
)
