package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PruneWorkflowJobs removes the named jobs from a GitHub Actions
// workflow document and returns the rewritten document together with
// the number of jobs that remain. Node-level editing keeps comments
// and the order of everything outside the jobs mapping.
func PruneWorkflowJobs(data []byte, names ...string) ([]byte, int, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, 0, fmt.Errorf("%w: empty workflow document", ErrInvalidManifest)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, 0, fmt.Errorf("%w: workflow root is not a mapping", ErrInvalidManifest)
	}

	jobs := mappingValue(root, "jobs")
	if jobs == nil || jobs.Kind != yaml.MappingNode {
		return nil, 0, ErrNoJobs
	}

	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	filtered := make([]*yaml.Node, 0, len(jobs.Content))
	for i := 0; i+1 < len(jobs.Content); i += 2 {
		if drop[jobs.Content[i].Value] {
			continue
		}
		filtered = append(filtered, jobs.Content[i], jobs.Content[i+1])
	}
	jobs.Content = filtered
	remaining := len(filtered) / 2

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, 0, fmt.Errorf("failed to encode workflow: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to encode workflow: %w", err)
	}

	return buf.Bytes(), remaining, nil
}

// JobNames lists the job keys of a workflow document in order. Callers
// use it to skip documents that do not mention a job before rewriting.
func JobNames(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty workflow document", ErrInvalidManifest)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: workflow root is not a mapping", ErrInvalidManifest)
	}

	jobs := mappingValue(root, "jobs")
	if jobs == nil || jobs.Kind != yaml.MappingNode {
		return nil, ErrNoJobs
	}

	names := make([]string, 0, len(jobs.Content)/2)
	for i := 0; i+1 < len(jobs.Content); i += 2 {
		names = append(names, jobs.Content[i].Value)
	}
	return names, nil
}

// mappingValue returns the value node for a key in a mapping node
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
