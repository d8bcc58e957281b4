package inspect

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// InfraDir is the subdirectory scanned for infrastructure code.
const InfraDir = "amplify"

// infraExt is the only suffix scanned beneath InfraDir.
const infraExt = ".ts"

// serviceKeywords are matched case-insensitively against file content.
var serviceKeywords = []string{
	"bedrock", "lambda", "s3", "rds", "athena", "glue",
	"cognito", "appsync", "cloudformation", "iam", "vpc",
	"ec2", "stepfunctions", "secretsmanager", "dynamodb",
}

var (
	stackMarkers  = []string{"createStack", "Stack"}
	lambdaMarkers = []string{"lambda.Function", "new Function"}
)

// InfraFacts holds AWS resource hints found in the infrastructure code.
type InfraFacts struct {
	// Services is sorted and free of duplicates.
	Services []string

	// Stacks and LambdaFiles are root-relative paths in visit order.
	Stacks      []string
	LambdaFiles []string
}

// ExtractInfraFacts scans every .ts file beneath amplify/ that passes Filter.
// A missing amplify/ directory yields empty facts.
func (in *Inspector) ExtractInfraFacts() InfraFacts {
	var facts InfraFacts
	found := make(map[string]bool)

	base := filepath.Join(in.Root, InfraDir)
	if !exists(base) {
		facts.Services = []string{}
		return facts
	}

	_ = filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped; the walk goes on.
			if d != nil && d.IsDir() && p != base {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if p != base && ExcludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), infraExt) || !in.Filter(p) {
			return nil
		}

		content := ReadText(p)
		rel, ok := in.relPath(p)
		if !ok {
			rel = filepath.ToSlash(p)
		}

		low := strings.ToLower(content)
		for _, svc := range serviceKeywords {
			if strings.Contains(low, svc) {
				found[svc] = true
			}
		}
		if containsAny(content, stackMarkers) {
			facts.Stacks = append(facts.Stacks, rel)
		}
		if containsAny(content, lambdaMarkers) {
			facts.LambdaFiles = append(facts.LambdaFiles, rel)
		}
		return nil
	})

	facts.Services = make([]string, 0, len(found))
	for svc := range found {
		facts.Services = append(facts.Services, svc)
	}
	sort.Strings(facts.Services)
	return facts
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
