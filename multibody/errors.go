package multibody

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dynbody/artibody/joint"
)

// SingularConfiguration reports that a node's articulated-inertia DOF matrix
// D = H*P*Ht was not invertible during calcP, per RigidBodyNodeSpec::calcP
//. The offending node's level and H are
// exposed for diagnostics, since a caller may want to reparameterize,
// perturb, or abort.
type SingularConfiguration struct {
	NodeIndex int
	Level     int
	H         joint.HMatrix
	cause     error
}

func (e *SingularConfiguration) Error() string {
	return fmt.Sprintf("multibody: singular D at node %d (level %d): %v", e.NodeIndex, e.Level, e.cause)
}

func (e *SingularConfiguration) Unwrap() error { return e.cause }

func newSingularConfiguration(nodeIndex, level int, h joint.HMatrix, cause error) error {
	return &SingularConfiguration{NodeIndex: nodeIndex, Level: level, H: h, cause: errors.WithStack(cause)}
}

// PreconditionViolated reports ill-formed assembly: a child indexed before
// its parent, an unknown joint type, or a reversed joint (currently
// unsupported). Fatal; not recoverable at the core level.
type PreconditionViolated struct {
	msg string
}

func (e *PreconditionViolated) Error() string { return "multibody: precondition violated: " + e.msg }

func newPreconditionViolated(format string, args ...interface{}) error {
	return errors.WithStack(&PreconditionViolated{msg: fmt.Sprintf(format, args...)})
}
