// Package llm provides centralized LLM configuration and client abstractions.
// Generation calls are parameterized by persona: a named temperature and
// output-token preset that each pipeline stage picks to trade determinism
// against creativity without hardcoding per-stage hyperparameters.
package llm

// Persona names a generation temperature/token-budget preset
type Persona string

// Personas reused across prompt templates
const (
	// PersonaFactual is for extraction and matching tasks where the output
	// should be as deterministic as possible
	PersonaFactual Persona = "factual"
	// PersonaBalanced is for structured generation with some interpretation
	// (gap analysis, roadmaps)
	PersonaBalanced Persona = "balanced"
	// PersonaCreative is for personalized advice where variety is desirable
	PersonaCreative Persona = "creative"
)

// Preset holds the generation parameters behind a persona
type Preset struct {
	Temperature     float32
	MaxOutputTokens int32
}

// Config holds the model configuration for the application
type Config struct {
	Model   string
	Presets map[Persona]Preset
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Model: "gemini-2.5-flash",
		Presets: map[Persona]Preset{
			PersonaFactual:  {Temperature: 0.3, MaxOutputTokens: 1000},
			PersonaBalanced: {Temperature: 0.7, MaxOutputTokens: 2500},
			PersonaCreative: {Temperature: 0.8, MaxOutputTokens: 2000},
		},
	}
}

// GetPreset returns the preset for a persona, falling back to the balanced
// preset when the persona is unknown
func (c *Config) GetPreset(persona Persona) Preset {
	if preset, ok := c.Presets[persona]; ok {
		return preset
	}
	if preset, ok := c.Presets[PersonaBalanced]; ok {
		return preset
	}
	return Preset{Temperature: 0.7, MaxOutputTokens: 2500}
}

// WithModel returns a new Config with a different model name
func (c *Config) WithModel(model string) *Config {
	newConfig := &Config{
		Model:   model,
		Presets: make(map[Persona]Preset),
	}
	for k, v := range c.Presets {
		newConfig.Presets[k] = v
	}
	return newConfig
}
