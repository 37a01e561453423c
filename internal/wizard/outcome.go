package wizard

// Outcome is the result signal for container operations that can be refused
// without being errors: precondition denials, unknown records, illegal
// transitions and intentional no-ops. The original behavior here was "fail
// quietly, let the caller decide"; Outcome keeps that policy observable.
type Outcome int

const (
	// OutcomeOK means the operation applied.
	OutcomeOK Outcome = iota
	// OutcomeNotFound means the referenced record or entity does not exist;
	// state is left unchanged.
	OutcomeNotFound
	// OutcomeDenied means a precondition check refused the mutation (e.g.
	// changing the application type after lock).
	OutcomeDenied
	// OutcomeInvalid means a lifecycle rule rejected the operation (e.g. an
	// illegal status transition).
	OutcomeInvalid
	// OutcomeSkipped means the operation intentionally no-opped, such as
	// persisting a container with no application identity.
	OutcomeSkipped
	// OutcomeError means the operation failed in the storage layer; it is
	// always accompanied by a non-nil error.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeDenied:
		return "denied"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}
