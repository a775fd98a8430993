package quiz

import (
	"fmt"
	"os"
)

// Mode governs whether an answer can change after a confirmed check.
type Mode int

const (
	// ModeStrict locks the selection once a check is confirmed.
	ModeStrict Mode = iota
	// ModeLearning allows re-selection after a confirmed check; doing so
	// un-commits the previous result.
	ModeLearning
)

func (m Mode) String() string {
	if m == ModeLearning {
		return "learning"
	}
	return "strict"
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict", "":
		return ModeStrict, nil
	case "learning":
		return ModeLearning, nil
	default:
		return ModeStrict, fmt.Errorf("unknown mode %q: must be strict or learning", s)
	}
}

// Role is the user's subscription role. It gates explanation visibility.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleDemo       Role = "demo"
	RoleSubscriber Role = "subscriber"
	RoleAdmin      Role = "admin"
)

// ParseRole parses a role name.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleDemo, RoleSubscriber, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleGuest, nil
	default:
		return RoleGuest, fmt.Errorf("unknown role %q", s)
	}
}

// Config holds the switches the question state machine consumes.
type Config struct {
	// Mode selects strict or learning behavior.
	Mode Mode

	// Role is the user role seeded into the session store.
	Role Role

	// AnswerMemory seeds the selection from the session store when a
	// question loads. When false a question always loads unanswered.
	AnswerMemory bool
}

// DefaultConfig returns the standard configuration: strict mode, guest
// role, answer memory on.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeStrict,
		Role:         RoleGuest,
		AnswerMemory: true,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if m := os.Getenv("QUIZDECK_MODE"); m != "" {
		mode, err := ParseMode(m)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if r := os.Getenv("QUIZDECK_ROLE"); r != "" {
		role, err := ParseRole(r)
		if err != nil {
			return cfg, err
		}
		cfg.Role = role
	}
	if v := os.Getenv("QUIZDECK_ANSWER_MEMORY"); v == "0" || v == "false" {
		cfg.AnswerMemory = false
	}

	return cfg, nil
}
