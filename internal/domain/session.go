package domain

// InputSlot names which collection the next free-text message belongs to
type InputSlot string

const (
	SlotJournal   InputSlot = "journal"
	SlotChecklist InputSlot = "checklist"
)

// SessionPhase represents user's current interaction phase
type SessionPhase string

const (
	PhaseIdle          SessionPhase = "idle"
	PhaseAwaitingInput SessionPhase = "awaiting_input"
	PhaseInQuiz        SessionPhase = "in_quiz"
)

// SessionState holds transient per-conversation state. A session is
// either idle, waiting for one free-text message, or stepping through
// the self-assessment quiz. The phases are mutually exclusive.
type SessionState struct {
	Phase SessionPhase

	// Slot is set only while Phase is PhaseAwaitingInput
	Slot InputSlot

	// QuizIndex and QuizScore are set only while Phase is PhaseInQuiz
	QuizIndex int
	QuizScore int
}

// IdleSession returns the default session state
func IdleSession() SessionState {
	return SessionState{Phase: PhaseIdle}
}

// AwaitInput returns a session waiting for free text for the given slot
func AwaitInput(slot InputSlot) SessionState {
	return SessionState{Phase: PhaseAwaitingInput, Slot: slot}
}

// QuizSession returns a session positioned at the given quiz question
// with the running score accumulated so far
func QuizSession(index, score int) SessionState {
	return SessionState{Phase: PhaseInQuiz, QuizIndex: index, QuizScore: score}
}
