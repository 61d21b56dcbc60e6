package main

// CLI defaults
const (
	defaultPreset    = "trio-valid"
	defaultOutPrefix = "output_"
	minRequiredArgs  = 0
)

// Summary formatting
const (
	summaryPrecision = 6
)
