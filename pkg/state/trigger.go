package state

// TriggerType is the mode under which a VM execution was invoked (glossary:
// "Trigger"). Application and ApplicationR variants are the only ones
// permitted to mutate storage (spec §4.3); Verification is read-only.
type TriggerType byte

const (
	// TriggerVerification is a read-only signature check.
	TriggerVerification TriggerType = 0x00
	// TriggerApplication is a full state-mutating run.
	TriggerApplication TriggerType = 0x10
	// TriggerApplicationR is the system-level ("R") variant of
	// Application, e.g. OnPersist/PostPersist native-contract hooks.
	TriggerApplicationR TriggerType = 0x11
)

// IsApplication reports whether the trigger is one of the two Application
// variants, the gate spec §4.3 requires for any storage mutation.
func (t TriggerType) IsApplication() bool {
	return t == TriggerApplication || t == TriggerApplicationR
}

func (t TriggerType) String() string {
	switch t {
	case TriggerVerification:
		return "Verification"
	case TriggerApplication:
		return "Application"
	case TriggerApplicationR:
		return "ApplicationR"
	default:
		return "Unknown"
	}
}
