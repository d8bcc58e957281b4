package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// ManifestFile is the package manifest read from the root.
const ManifestFile = "package.json"

// awsTokens mark a dependency as AWS related when found in its name.
var awsTokens = []string{"aws", "amplify", "bedrock", "cdk"}

// ManifestStatus tags the outcome of reading the package manifest.
type ManifestStatus int

const (
	// ManifestAbsent means no manifest exists; every field is empty.
	ManifestAbsent ManifestStatus = iota
	// ManifestParsed means the manifest was read and decoded.
	ManifestParsed
	// ManifestInvalid means the manifest could not be read or decoded;
	// only Err is set.
	ManifestInvalid
)

// PackageFacts holds package manifest metadata.
type PackageFacts struct {
	Status ManifestStatus
	Err    string

	Name            string
	Version         string
	Dependencies    map[string]string
	DevDependencies map[string]string
	Scripts         map[string]string

	// AWSDependencies is the subset of Dependencies whose name contains an
	// AWS vendor token.
	AWSDependencies map[string]string
}

type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// ExtractPackageFacts reads package.json under root. A missing manifest
// yields the zero PackageFacts; a malformed one yields only an error message.
func ExtractPackageFacts(root string) PackageFacts {
	path := filepath.Join(root, ManifestFile)
	if _, err := os.Stat(path); err != nil {
		return PackageFacts{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PackageFacts{Status: ManifestInvalid, Err: err.Error()}
	}
	var m packageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return PackageFacts{Status: ManifestInvalid, Err: err.Error()}
	}

	facts := PackageFacts{
		Status:          ManifestParsed,
		Name:            orUnknown(m.Name),
		Version:         orUnknown(m.Version),
		Dependencies:    orEmpty(m.Dependencies),
		DevDependencies: orEmpty(m.DevDependencies),
		Scripts:         orEmpty(m.Scripts),
		AWSDependencies: map[string]string{},
	}
	for name, version := range facts.Dependencies {
		if IsAWSRelated(name) {
			facts.AWSDependencies[name] = version
		}
	}
	return facts
}

// IsAWSRelated reports whether a dependency name contains any AWS token,
// ignoring case.
func IsAWSRelated(name string) bool {
	low := strings.ToLower(name)
	for _, tok := range awsTokens {
		if strings.Contains(low, tok) {
			return true
		}
	}
	return false
}

// DisplayName returns the project name, or "Unknown" when none was parsed.
func (p PackageFacts) DisplayName() string {
	return orUnknown(p.Name)
}

// DisplayVersion returns the project version, or "Unknown".
func (p PackageFacts) DisplayVersion() string {
	return orUnknown(p.Version)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
