package query

import (
	"fmt"

	"github.com/marmos91/mountinfo/pkg/mounts"
)

// Outcome is the verdict of Evaluate for one record.
type Outcome int

const (
	// Accept means the record passed every filter.
	Accept Outcome = iota
	// RejectSilently means a user filter excluded the record.
	RejectSilently
	// RejectArtifact means the record is the platform's bootstrap mount.
	RejectArtifact
)

func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case RejectSilently:
		return "reject"
	case RejectArtifact:
		return "artifact"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Stage identifies a step of the evaluation order.
type Stage int

const (
	StageArtifact Stage = iota + 1
	StageNodeInclude
	StageNodeExclude
	StageFSTypeInclude
	StageFSTypeExclude
	StageOptionsInclude
	StageOptionsExclude
	StageTargets
	StageSelect
)

var stageNames = map[Stage]string{
	StageArtifact:       "artifact",
	StageNodeInclude:    "node",
	StageNodeExclude:    "skip-node",
	StageFSTypeInclude:  "fstype",
	StageFSTypeExclude:  "skip-fstype",
	StageOptionsInclude: "options",
	StageOptionsExclude: "skip-options",
	StageTargets:        "targets",
	StageSelect:         "select",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Stages lists every stage in evaluation order.
func Stages() []Stage {
	return []Stage{
		StageArtifact,
		StageNodeInclude,
		StageNodeExclude,
		StageFSTypeInclude,
		StageFSTypeExclude,
		StageOptionsInclude,
		StageOptionsExclude,
		StageTargets,
		StageSelect,
	}
}

// Decision is the result of evaluating one record.
type Decision struct {
	Outcome Outcome
	// Stage is the step that decided the record: the rejecting stage, or
	// StageSelect for accepted records.
	Stage Stage
	// Value is the selected field. Set only when Outcome is Accept.
	Value string
}

func reject(s Stage) Decision {
	return Decision{Outcome: RejectSilently, Stage: s}
}

// Evaluate decides whether r is reported and, if so, which value.
//
// Checks run in a fixed order and stop at the first rejection:
//
//  1. platform artifact (rootfs on Linux), regardless of user filters
//  2. node include, 3. node exclude
//  4. fstype include, 5. fstype exclude
//  6. options include, 7. options exclude
//  8. explicit targets (exact string match)
//  9. field selection
func Evaluate(f *Filter, r mounts.Record) Decision {
	if mounts.IsPlatformArtifact(r.FSType) {
		return Decision{Outcome: RejectArtifact, Stage: StageArtifact}
	}

	if f.NodeInclude != nil && !f.NodeInclude.MatchString(r.Source) {
		return reject(StageNodeInclude)
	}
	if f.NodeExclude != nil && f.NodeExclude.MatchString(r.Source) {
		return reject(StageNodeExclude)
	}

	if f.FSTypeInclude != nil && !f.FSTypeInclude.MatchString(r.FSType) {
		return reject(StageFSTypeInclude)
	}
	if f.FSTypeExclude != nil && f.FSTypeExclude.MatchString(r.FSType) {
		return reject(StageFSTypeExclude)
	}

	if f.OptionsInclude != nil && !f.OptionsInclude.MatchString(r.Options) {
		return reject(StageOptionsInclude)
	}
	if f.OptionsExclude != nil && f.OptionsExclude.MatchString(r.Options) {
		return reject(StageOptionsExclude)
	}

	if len(f.Targets) > 0 && !f.hasTarget(r.Target) {
		return reject(StageTargets)
	}

	v, ok := f.Select.Of(r)
	if !ok {
		return reject(StageSelect)
	}
	return Decision{Outcome: Accept, Stage: StageSelect, Value: v}
}
