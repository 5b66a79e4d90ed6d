package service

import (
	"fmt"
	"strings"

	"smartdna/internal/domain"
)

var (
	defaultPromptValues = []string{"Excellence", "Innovation"}
	defaultImageValues  = []string{"innovation"}
)

// BuildDNAPrompt envuelve el pedido del usuario con el contexto DNA y el hub.
// Los campos vacios toman los valores por defecto.
func BuildDNAPrompt(prompt string, dna domain.DNAContext, hubContext string) string {
	values := dna.CoreValues
	if len(values) == 0 {
		values = defaultPromptValues
	}

	var b strings.Builder
	b.WriteString("\nYou are generating content for an organization with the following CorePersonaDNA™:\n\n")
	fmt.Fprintf(&b, "Leadership Style: %s\n", orDefault(dna.LeadershipStyle, "Visionary"))
	fmt.Fprintf(&b, "Communication Tone: %s\n", orDefault(dna.CommunicationTone, "Professional"))
	fmt.Fprintf(&b, "Core Values: %s\n", strings.Join(values, ", "))
	fmt.Fprintf(&b, "Decision Making: %s\n", orDefault(dna.DecisionMaking, "Data-driven"))
	fmt.Fprintf(&b, "Cultural Emphasis: %s\n\n", orDefault(dna.CulturalEmphasis, "Collaborative"))
	fmt.Fprintf(&b, "Generate content for the %s that:\n", hubContext)
	b.WriteString("1. Reflects the leader's authentic voice and style\n")
	b.WriteString("2. Aligns with the organizational values\n")
	b.WriteString("3. Maintains consistency with the cultural emphasis\n")
	b.WriteString("4. Uses the appropriate communication tone\n\n")
	fmt.Fprintf(&b, "User Request: %s\n\n", prompt)
	b.WriteString("Generate content that is DNA-aligned and authentic to this organization's unique identity.\n")
	return b.String()
}

// BuildImagePrompt agrega el estilo de liderazgo y los valores al pedido de imagen.
func BuildImagePrompt(prompt string, dna domain.DNAContext) string {
	values := dna.CoreValues
	if len(values) == 0 {
		values = defaultImageValues
	}
	return fmt.Sprintf("%s. Style should reflect: %s leadership with %s values",
		prompt, orDefault(dna.LeadershipStyle, "professional"), strings.Join(values, ", "))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
