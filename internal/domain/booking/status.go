package booking

// Status identifies an appointment's lifecycle state. The recognized set is
// closed and versioned with this package; any other label (including the
// empty string) is unrecognized. Matching is exact and case-sensitive
// because labels are machine identifiers, not user-facing text.
type Status string

const (
	StatusAgendada          Status = "agendada"
	StatusConfirmada        Status = "confirmada"
	StatusRealizada         Status = "realizada"
	StatusCancelada         Status = "cancelada"
	StatusCanceladaPaciente Status = "cancelada_paciente"
	StatusCanceladaDentista Status = "cancelada_dentista"
	StatusFaltou            Status = "faltou"
)

// StatusCategory is the semantic category a status belongs to. Blocking and
// Freed are disjoint; Unknown is everything else.
type StatusCategory int

const (
	CategoryUnknown StatusCategory = iota
	CategoryBlocking
	CategoryFreed
)

func (c StatusCategory) String() string {
	switch c {
	case CategoryBlocking:
		return "blocking"
	case CategoryFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Category classifies the status. An unrecognized label is CategoryUnknown:
// it must not silently free the slot, and must not silently block it either.
// Callers that need a binary decision apply their own policy on top.
func (s Status) Category() StatusCategory {
	switch s {
	case StatusAgendada, StatusConfirmada, StatusRealizada:
		return CategoryBlocking
	case StatusCancelada, StatusCanceladaPaciente, StatusCanceladaDentista, StatusFaltou:
		return CategoryFreed
	default:
		return CategoryUnknown
	}
}

// IsBlocking reports whether an appointment in this status occupies its time
// window for conflict purposes.
func (s Status) IsBlocking() bool { return s.Category() == CategoryBlocking }

// IsFreed reports whether the status is a resolved cancellation or no-show
// whose time window is available for reuse.
func (s Status) IsFreed() bool { return s.Category() == CategoryFreed }

// BlockingStatuses returns the blocking set in stable enumeration order.
func BlockingStatuses() []Status {
	return []Status{StatusAgendada, StatusConfirmada, StatusRealizada}
}

// FreedStatuses returns the freed set (cancellation variants plus no-show)
// in stable enumeration order.
func FreedStatuses() []Status {
	return []Status{StatusCancelada, StatusCanceladaPaciente, StatusCanceladaDentista, StatusFaltou}
}

// VerifyStatusConfig checks the recognized status sets at startup. A server
// must refuse to answer availability queries if this fails: empty or
// overlapping sets would make every conflict verdict meaningless.
func VerifyStatusConfig() error {
	blocking := BlockingStatuses()
	freed := FreedStatuses()
	if len(blocking) == 0 {
		return &ConfigurationError{Reason: "blocking status set is empty"}
	}
	if len(freed) == 0 {
		return &ConfigurationError{Reason: "freed status set is empty"}
	}
	for _, b := range blocking {
		for _, f := range freed {
			if b == f {
				return &ConfigurationError{Reason: "status " + string(b) + " is both blocking and freed"}
			}
		}
	}
	return nil
}
