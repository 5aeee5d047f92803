package ir

// Version constants for the compiled rule format and engine.
const (
	// IRVersion is the compiled rule schema version.
	IRVersion = "1"

	// EngineVersion is the pavsca engine version.
	EngineVersion = "0.1.0"
)
