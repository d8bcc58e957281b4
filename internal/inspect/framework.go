package inspect

import (
	"os"
	"path/filepath"
	"strings"
)

// Amplify configuration files checked by ExtractFrameworkFacts.
const (
	AmplifyYAML = "amplify.yml"
	BackendFile = "amplify/backend.ts"
)

// agentMarkers are checked in order against the backend definition; each
// match appends its label once.
var agentMarkers = []struct {
	marker string
	label  string
}{
	{"productionAgentBuilder", "Production Agent"},
	{"maintenanceAgentBuilder", "Maintenance Agent"},
	{"regulatoryAgentBuilder", "Regulatory Agent"},
	{"petrophysicsAgentBuilder", "Petrophysics Agent"},
}

// FrameworkFacts describes the Amplify build and backend configuration.
type FrameworkFacts struct {
	AmplifyYAMLExists bool
	BackendExists     bool
	AmplifyYAML       string
	Backend           string

	// Agents lists agent labels found in the backend, in check order.
	Agents []string
}

// ExtractFrameworkFacts checks for amplify.yml and amplify/backend.ts under
// root and detects agent builders in the backend text.
func ExtractFrameworkFacts(root string) FrameworkFacts {
	var facts FrameworkFacts

	yml := filepath.Join(root, AmplifyYAML)
	if exists(yml) {
		facts.AmplifyYAMLExists = true
		facts.AmplifyYAML = ReadText(yml)
	}

	backend := filepath.Join(root, filepath.FromSlash(BackendFile))
	if exists(backend) {
		facts.BackendExists = true
		facts.Backend = ReadText(backend)
		facts.Agents = DetectAgents(facts.Backend)
	}
	return facts
}

// DetectAgents returns the label of every agent marker contained in text.
func DetectAgents(text string) []string {
	var agents []string
	for _, m := range agentMarkers {
		if strings.Contains(text, m.marker) {
			agents = append(agents, m.label)
		}
	}
	return agents
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
