package rating

// engineVersion is the semantic version of the state engine.
const engineVersion = "1.1.0"

// Version returns the semantic version of the state engine.
func Version() string {
	return engineVersion
}
