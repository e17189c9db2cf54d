package constants

const (
	// IDPrefix namespaces habit identifiers so they are recognizable out
	// of context (e.g. in a raw database dump).
	IDPrefix = "hbt_"
)
