// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Stage names the pipeline step at which a record failed.
type Stage string

const (
	StageClassify Stage = "classify"
	StageRender   Stage = "render"
	StageWrite    Stage = "write"
)

// RecordFailure describes one record that was excluded from output because
// of a reportable error. Other records are unaffected.
type RecordFailure struct {
	ID       string   `json:"id" yaml:"id"`
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`
	Stage    Stage    `json:"stage" yaml:"stage"`
	Reason   string   `json:"reason" yaml:"reason"`
}
