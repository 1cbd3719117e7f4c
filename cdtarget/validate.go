package cdtarget

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Errors []string `json:"errs"`
}

func (ve *ValidationError) errorf(f string, v ...interface{}) {
	ve.Errors = append(ve.Errors, fmt.Sprintf(f, v...))
}

func (ve *ValidationError) Empty() bool {
	if ve == nil {
		return true
	}
	return len(ve.Errors) == 0
}

func (ve *ValidationError) Error() string {
	return strings.Join(ve.Errors, "\n")
}

// Validate reports every problem that would make d unsafe to render: duplicate
// ids, unknown relation types, dangling references and n-ary relations without
// activities. It returns nil when there are none.
func (d Diagram) Validate() error {
	ve := &ValidationError{}

	nodes := make(map[string]struct{}, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			ve.errorf("nodes[%d]: missing id", i)
			continue
		}
		if _, ok := nodes[n.ID]; ok {
			ve.errorf("nodes[%d]: duplicate node id %q", i, n.ID)
		}
		nodes[n.ID] = struct{}{}
	}

	relations := make(map[string]struct{}, len(d.Relations))
	for i, r := range d.Relations {
		if r.ID == "" {
			ve.errorf("relations[%d]: missing id", i)
		} else if _, ok := relations[r.ID]; ok {
			ve.errorf("relations[%d]: duplicate relation id %q", i, r.ID)
		}
		relations[r.ID] = struct{}{}

		if !r.Type.Known() {
			ve.errorf("relations[%d]: unknown relation type %q", i, r.Type)
		}

		if r.IsNary() {
			if len(r.Activities) == 0 {
				ve.errorf("relations[%d]: %s relation %q has no activities", i, r.Type, r.ID)
			}
			for _, id := range r.Activities {
				if _, ok := nodes[id]; !ok {
					ve.errorf("relations[%d]: activity %q does not exist", i, id)
				}
			}
			continue
		}
		if _, ok := nodes[r.SourceID]; !ok {
			ve.errorf("relations[%d]: source %q does not exist", i, r.SourceID)
		}
		if _, ok := nodes[r.TargetID]; !ok {
			ve.errorf("relations[%d]: target %q does not exist", i, r.TargetID)
		}
	}

	if ve.Empty() {
		return nil
	}
	return ve
}
